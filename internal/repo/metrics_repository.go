package repo

// Metrics aggregates the numbers the dashboard shows above the product table.
type Metrics struct {
	TotalProducts   int     `json:"total_products"`
	TotalUsers      int     `json:"total_users"`
	TotalQuantity   int     `json:"total_quantity"`
	StockValue      float64 `json:"stock_value"`
	TotalMovements  int     `json:"total_movements"`
	OutOfStockCount int     `json:"out_of_stock_count"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
