package domain

// UserCredential is a placeholder login record. The password is stored as given.
type UserCredential struct {
	Username string
	Password string
}
