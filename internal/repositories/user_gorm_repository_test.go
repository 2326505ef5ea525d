package repositories_test

import (
	"testing"

	"toko/internal/models"
	"toko/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMUserRepository_CRUD(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	user := &models.User{Name: "John Doe", Email: "john@example.com", Password: "hash", IsActive: true}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	byEmail, err := repo.GetByEmail("john@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byEmail.IsActive = false
	require.NoError(t, repo.Update(byEmail))
	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.False(t, byID.IsActive)

	assert.Error(t, repo.Create(&models.User{Name: "Dup", Email: "john@example.com"}))

	users, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, repo.Delete(user.ID))
	_, err = repo.GetByID(user.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	_, err = repo.GetByEmail("john@example.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestInMemoryUserRepository(t *testing.T) {
	repo := repositories.NewInMemoryUserRepository()

	user := &models.User{Name: "Jane", Email: "jane@example.com"}
	require.NoError(t, repo.Create(user))

	found, err := repo.GetByEmail("JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, repo.Delete(user.ID))
	assert.ErrorIs(t, repo.Delete(user.ID), repositories.ErrUserNotFound)
}
