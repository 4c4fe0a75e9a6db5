package client

import (
	"context"
	"errors"
	"fmt"
)

// Session ties the API client to the local store and carries the view-layer
// behaviors of the web UI: list refresh with offline fallback, the
// upsert-by-name product form and the login state.
type Session struct {
	api   *Client
	store *Store
}

func NewSession(api *Client, store *Store) *Session {
	return &Session{api: api, store: store}
}

func (s *Session) Store() *Store {
	return s.store
}

func (s *Session) API() *Client {
	return s.api
}

// RefreshProducts fetches the product list and caches it. When the API is
// unreachable the last cached list is returned so the views keep working.
func (s *Session) RefreshProducts(ctx context.Context) ([]Product, bool, error) {
	products, err := s.api.Products(ctx)
	if err != nil {
		cached := s.store.Products()
		if len(cached) > 0 {
			return cached, false, nil
		}
		return nil, false, err
	}
	s.store.SetProducts(products)
	return products, true, s.store.Save()
}

func (s *Session) RefreshUsers(ctx context.Context) ([]Account, error) {
	users, err := s.api.Users(ctx)
	if err != nil {
		if cached := s.store.Users(); len(cached) > 0 {
			return cached, nil
		}
		return nil, err
	}
	s.store.SetUsers(users)
	return users, s.store.Save()
}

// SubmitProduct implements the management form's upsert-by-name: a product
// whose name already exists has the entered quantity added to its stock and
// the remaining fields replaced; otherwise a new product is created. The
// returned bool reports whether a new product was created.
func (s *Session) SubmitProduct(ctx context.Context, form ProductForm) (Product, bool, error) {
	products, err := s.api.Products(ctx)
	if err != nil {
		return Product{}, false, err
	}

	for _, existing := range products {
		if existing.Name != form.Name {
			continue
		}
		merged, err := s.api.AdjustQuantity(ctx, existing.ID, form.Quantity)
		if err != nil {
			return Product{}, false, err
		}
		form.Quantity = merged.Quantity
		updated, err := s.api.UpdateProduct(ctx, existing.ID, form)
		if err != nil {
			return Product{}, false, err
		}
		return updated, false, s.cacheProduct(updated)
	}

	created, err := s.api.CreateProduct(ctx, form)
	if err != nil {
		return Product{}, false, err
	}
	return created, true, s.cacheProduct(created)
}

// AddStock increases a product's quantity by qty.
func (s *Session) AddStock(ctx context.Context, id, qty int) (Product, error) {
	if qty <= 0 {
		return Product{}, fmt.Errorf("quantity to add must be positive")
	}
	return s.adjust(ctx, id, qty)
}

// DeductStock decreases a product's quantity by qty. The server refuses
// deductions larger than the current stock.
func (s *Session) DeductStock(ctx context.Context, id, qty int) (Product, error) {
	if qty <= 0 {
		return Product{}, fmt.Errorf("quantity to deduct must be positive")
	}
	return s.adjust(ctx, id, -qty)
}

func (s *Session) adjust(ctx context.Context, id, delta int) (Product, error) {
	product, err := s.api.AdjustQuantity(ctx, id, delta)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return Product{}, fmt.Errorf("insufficient stock: %w", err)
		}
		return Product{}, err
	}
	return product, s.cacheProduct(product)
}

// Login verifies credentials through the API and records the current user.
func (s *Session) Login(ctx context.Context, username, password string) (Account, error) {
	account, err := s.api.Login(ctx, username, password)
	if err != nil {
		return Account{}, err
	}
	s.store.SetCurrentUser(account.Username)
	return account, s.store.Save()
}

func (s *Session) Logout() error {
	s.store.ClearCurrentUser()
	return s.store.Save()
}

// Signup creates the account through the API; there is no client-local
// account list to append to.
func (s *Session) Signup(ctx context.Context, username, password string) (Account, error) {
	account, err := s.api.CreateUser(ctx, username, password)
	if err != nil {
		return Account{}, err
	}
	if _, err := s.RefreshUsers(ctx); err != nil {
		return account, err
	}
	return account, nil
}

func (s *Session) cacheProduct(p Product) error {
	products := s.store.Products()
	replaced := false
	for i, cached := range products {
		if cached.ID == p.ID {
			products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, p)
	}
	s.store.SetProducts(products)
	return s.store.Save()
}
