package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wingscafe/inventory/internal/models"
	"github.com/wingscafe/inventory/internal/repo"
)

func newRepoWithProduct(t *testing.T, quantity int) (*repo.InMemoryProductRepository, models.Product) {
	t.Helper()
	r := repo.NewInMemoryProductRepository()
	p, err := r.Create(models.Product{Name: "Coffee", Price: 4.5, Quantity: quantity})
	require.NoError(t, err)
	return r, p
}

func TestAdjustQuantity(t *testing.T) {
	r, p := newRepoWithProduct(t, 10)

	updated, err := r.AdjustQuantity(p.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)

	updated, err = r.AdjustQuantity(p.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity)
}

func TestAdjustQuantityFloor(t *testing.T) {
	r, p := newRepoWithProduct(t, 3)

	_, err := r.AdjustQuantity(p.ID, -4)
	assert.ErrorIs(t, err, repo.ErrInvalidQuantityChange)

	// A refused change must not touch the stored quantity.
	current, err := r.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, current.Quantity)

	// Draining to exactly zero is allowed.
	updated, err := r.AdjustQuantity(p.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
}

func TestAdjustQuantityUnknownProduct(t *testing.T) {
	r := repo.NewInMemoryProductRepository()

	_, err := r.AdjustQuantity(42, 1)
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
}

func TestUpdatePreservesImageURL(t *testing.T) {
	r, p := newRepoWithProduct(t, 1)

	_, err := r.SetImageURL(p.ID, "/uploads/123-coffee.png")
	require.NoError(t, err)

	updated, err := r.Update(models.Product{ID: p.ID, Name: "Espresso", Price: 5, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/123-coffee.png", updated.ImageURL)
}

func TestSetImageURLReturnsOldURL(t *testing.T) {
	r, p := newRepoWithProduct(t, 1)

	old, err := r.SetImageURL(p.ID, "/uploads/1-a.png")
	require.NoError(t, err)
	assert.Empty(t, old)

	old, err = r.SetImageURL(p.ID, "/uploads/2-b.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1-a.png", old)
}

func TestDeleteUnknownProduct(t *testing.T) {
	r := repo.NewInMemoryProductRepository()
	assert.ErrorIs(t, r.Delete(7), repo.ErrProductNotFound)
}

func TestGetByName(t *testing.T) {
	r, p := newRepoWithProduct(t, 1)

	found, err := r.GetByName("Coffee")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = r.GetByName("Tea")
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
}
