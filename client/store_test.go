package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wingscafe/inventory/client"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store := client.NewStore(path)
	require.NoError(t, store.Load())

	store.SetProducts([]client.Product{{ID: 1, Name: "Coffee", Price: 4.5, Quantity: 10}})
	store.SetUsers([]client.Account{{ID: 1, Username: "admin"}})
	store.SetCurrentUser("admin")
	require.NoError(t, store.Save())

	reloaded := client.NewStore(path)
	require.NoError(t, reloaded.Load())

	products := reloaded.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Coffee", products[0].Name)
	assert.Equal(t, 10, products[0].Quantity)

	users := reloaded.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "admin", reloaded.CurrentUser())
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := client.NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, store.Load())
	assert.Empty(t, store.Products())
	assert.Empty(t, store.CurrentUser())
}

func TestStoreNeverPersistsPasswords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store := client.NewStore(path)
	store.SetUsers([]client.Account{{ID: 1, Username: "admin"}})
	require.NoError(t, store.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
}

func TestClearCurrentUser(t *testing.T) {
	store := client.NewStore(filepath.Join(t.TempDir(), "state.json"))
	store.SetCurrentUser("admin")
	store.ClearCurrentUser()
	assert.Empty(t, store.CurrentUser())
}
