package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

// PlaceholderTokenIssuer returns a random opaque string. Tokens carry no
// expiry or signature and nothing verifies them.
type PlaceholderTokenIssuer struct{}

func (PlaceholderTokenIssuer) Issue(string) (string, error) {
	return "placeholder-" + uuid.NewString(), nil
}

// SessionService is the register/login placeholder. It is not a security boundary.
type SessionService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
}

func NewSessionService(users ports.UserRepository, tokens ports.TokenIssuer) *SessionService {
	if tokens == nil {
		tokens = PlaceholderTokenIssuer{}
	}
	return &SessionService{users: users, tokens: tokens}
}

func (s *SessionService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingCredentials
	}

	err := s.users.Create(ctx, &domain.UserCredential{Username: username, Password: password})
	if err != nil {
		return err
	}

	log.WithField("username", username).Info("user registered")
	return nil
}

func (s *SessionService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.Get(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if user.Password != password {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(username)
}
