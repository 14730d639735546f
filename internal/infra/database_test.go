package infra

import (
	"context"
	"testing"

	"github.com/ahmadraza103/IMS/internal/model"
	"github.com/ahmadraza103/IMS/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedUsers_CreatesBothDemoAccounts(t *testing.T) {
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	repo := repository.NewUserRepository(db)

	require.NoError(t, SeedUsers(context.Background(), repo))

	admin, err := repo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	user, err := repo.FindByUsername(context.Background(), "user")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("user123")))
}

func TestSeedUsers_Idempotent(t *testing.T) {
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	repo := repository.NewUserRepository(db)

	require.NoError(t, SeedUsers(context.Background(), repo))
	require.NoError(t, SeedUsers(context.Background(), repo))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
