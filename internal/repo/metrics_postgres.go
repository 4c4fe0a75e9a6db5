package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity), 0),
		       COALESCE(SUM(price * quantity), 0),
		       COUNT(*) FILTER (WHERE quantity = 0)
		FROM products
	`).Scan(&m.TotalProducts, &m.TotalQuantity, &m.StockValue, &m.OutOfStockCount)
	if err != nil {
		return Metrics{}, err
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&m.TotalUsers); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movements`).Scan(&m.TotalMovements); err != nil {
		return Metrics{}, err
	}

	return m, nil
}
