package repo

import (
	"github.com/wingscafe/inventory/internal/models"
)

type MovementRepository interface {
	Log(productID, delta int) error
	GetByProductID(productID int) ([]models.Movement, error)
}
