package repo

type InMemoryMetricsRepository struct {
	productRepo  ProductRepository
	userRepo     UserRepository
	movementRepo MovementRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	userRepo UserRepository,
	movementRepo MovementRepository,
) {
	i.productRepo = productRepo
	i.userRepo = userRepo
	i.movementRepo = movementRepo
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)
	for _, p := range products {
		m.TotalQuantity += p.Quantity
		m.StockValue += p.Price * float64(p.Quantity)
		if p.Quantity == 0 {
			m.OutOfStockCount++
		}
		movements, err := i.movementRepo.GetByProductID(p.ID)
		if err != nil {
			return m, err
		}
		m.TotalMovements += len(movements)
	}

	users, err := i.userRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalUsers = len(users)

	return m, nil
}
