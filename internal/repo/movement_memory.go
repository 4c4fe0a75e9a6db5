package repo

import (
	"time"

	"github.com/wingscafe/inventory/internal/models"
)

type InMemoryMovementRepository struct {
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log inserts a new stock movement.
func (r *InMemoryMovementRepository) Log(productID, delta int) error {
	movement := models.Movement{
		ID:        len(r.movements) + 1,
		ProductID: productID,
		Delta:     delta,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	r.movements = append(r.movements, movement)
	return nil
}

// GetByProductID returns all movements for a specific product, newest first.
func (r *InMemoryMovementRepository) GetByProductID(productID int) ([]models.Movement, error) {
	var filtered []models.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			filtered = append(filtered, r.movements[i])
		}
	}
	return filtered, nil
}

func (r *InMemoryMovementRepository) Clear() {
	r.movements = []models.Movement{}
}
