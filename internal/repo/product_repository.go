package repo

import (
	"errors"

	"github.com/wingscafe/inventory/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	// SetQuantity replaces the stored quantity with an absolute value.
	SetQuantity(id, quantity int) (models.Product, error)
	// AdjustQuantity applies a signed delta atomically, refusing any change
	// that would drive the quantity below zero.
	AdjustQuantity(id, delta int) (models.Product, error)
	// SetImageURL records the relative URL of the product image and returns
	// the URL it replaced.
	SetImageURL(id int, imageURL string) (string, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidQuantityChange is returned when an adjustment would make the
// quantity negative.
var ErrInvalidQuantityChange = errors.New("quantity cannot become negative")
