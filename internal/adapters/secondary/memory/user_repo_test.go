package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-price-service/internal/core/domain"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.UserCredential{Username: "alice", Password: "pw"}))

	u, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "pw", u.Password)
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.UserCredential{Username: "alice", Password: "pw"}))
	err := repo.Create(ctx, &domain.UserCredential{Username: "alice", Password: "pw2"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	u, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "pw", u.Password)
}

func TestUserRepo_CaseSensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.UserCredential{Username: "alice", Password: "pw"}))
	require.NoError(t, repo.Create(ctx, &domain.UserCredential{Username: "Alice", Password: "pw"}))

	_, err := repo.Get(ctx, "ALICE")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
