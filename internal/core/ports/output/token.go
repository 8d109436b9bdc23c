package ports

// TokenIssuer hands out session tokens after a successful login.
type TokenIssuer interface {
	Issue(username string) (string, error)
}
