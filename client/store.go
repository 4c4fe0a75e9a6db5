package client

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/wingscafe/inventory/internal/models"
)

// state is what gets persisted between runs: the last-fetched lists and the
// logged-in username. It mirrors what the web UI kept in browser storage,
// minus any credential material.
type state struct {
	Products    []models.Product `json:"products"`
	Users       []Account        `json:"users"`
	CurrentUser string           `json:"current_user,omitempty"`
}

// Store holds the client-side session state with an explicit load/save
// lifecycle. It is the single owner of that state; nothing else reads or
// writes the file.
type Store struct {
	path string

	mu sync.Mutex
	st state
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the state file. A missing file leaves the store empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.st = state{}
			return nil
		}
		return err
	}
	return json.Unmarshal(data, &s.st)
}

func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Products
}

func (s *Store) SetProducts(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Products = products
}

func (s *Store) Users() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Users
}

func (s *Store) SetUsers(users []Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Users = users
}

func (s *Store) CurrentUser() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.CurrentUser
}

func (s *Store) SetCurrentUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.CurrentUser = username
}

func (s *Store) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.CurrentUser = ""
}
