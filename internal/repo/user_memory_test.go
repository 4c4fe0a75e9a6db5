package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wingscafe/inventory/internal/models"
	"github.com/wingscafe/inventory/internal/repo"
)

func TestCreateUserRejectsDuplicates(t *testing.T) {
	r := repo.NewInMemoryUserRepository()

	_, err := r.CreateUser(models.User{Username: "admin", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = r.CreateUser(models.User{Username: "admin", PasswordHash: "other"})
	assert.ErrorIs(t, err, repo.ErrDuplicateUsername)
}

func TestUpdateUsername(t *testing.T) {
	r := repo.NewInMemoryUserRepository()

	first, err := r.CreateUser(models.User{Username: "first", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = r.CreateUser(models.User{Username: "second", PasswordHash: "h"})
	require.NoError(t, err)

	renamed, err := r.UpdateUsername(first.ID, "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", renamed.Username)

	_, err = r.UpdateUsername(first.ID, "second")
	assert.ErrorIs(t, err, repo.ErrDuplicateUsername)

	_, err = r.UpdateUsername(999, "ghost")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}

func TestGetAllStripsPasswordHashes(t *testing.T) {
	r := repo.NewInMemoryUserRepository()

	_, err := r.CreateUser(models.User{Username: "admin", PasswordHash: "hash"})
	require.NoError(t, err)

	users, err := r.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)
}

func TestDeleteUser(t *testing.T) {
	r := repo.NewInMemoryUserRepository()

	u, err := r.CreateUser(models.User{Username: "temp", PasswordHash: "h"})
	require.NoError(t, err)

	require.NoError(t, r.DeleteUser(u.ID))
	assert.ErrorIs(t, r.DeleteUser(u.ID), repo.ErrUserNotFound)
}
