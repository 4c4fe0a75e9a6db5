package handlers

import (
	"github.com/wingscafe/inventory/internal/imagestore"
	repo "github.com/wingscafe/inventory/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	movementRepo repo.MovementRepository
	metricsRepo  repo.MetricsRepository

	imageStore *imagestore.Store
	bcryptCost = bcrypt.DefaultCost
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetImageStore(s *imagestore.Store) {
	imageStore = s
}

func SetBcryptCost(cost int) {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		bcryptCost = cost
	}
}
