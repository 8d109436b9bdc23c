package memory

import (
	"context"
	"sync"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

type userRepo struct {
	mu    sync.RWMutex
	users map[string]domain.UserCredential
}

// NewUserRepository creates an in-memory credential map keyed by exact username.
func NewUserRepository() ports.UserRepository {
	return &userRepo{users: make(map[string]domain.UserCredential)}
}

func (r *userRepo) Create(_ context.Context, user *domain.UserCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUserExists
	}
	r.users[user.Username] = *user
	return nil
}

func (r *userRepo) Get(_ context.Context, username string) (*domain.UserCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}
