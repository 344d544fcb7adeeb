package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaveJKP/mini-project-backend/internal/database/models"
	"github.com/SaveJKP/mini-project-backend/internal/database/repositories"
)

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewUserRepository(testDB)

	user := createTestUser(t, "create@users.test")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.GetByEmail(ctx, "create@users.test")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Test User", found.FullName)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewUserRepository(testDB)

	createTestUser(t, "dup@users.test")

	err := repo.Create(ctx, &models.User{Email: "dup@users.test", Password: "x"})
	require.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	var count int
	require.NoError(t, testDB.QueryRow(`SELECT count(*) FROM users WHERE email = 'dup@users.test'`).Scan(&count))
	assert.Equal(t, 1, count, "failed registration must not create a user")
}

func TestUserRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewUserRepository(testDB)

	_, err := repo.GetByEmail(ctx, "nobody@users.test")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
