package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wingscafe/inventory/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, description, category, price, quantity, image_url) VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Quantity, p.ImageURL).Scan(&p.ID)
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, description, category, price, quantity, COALESCE(image_url, '') FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity, &p.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, name, description, category, price, quantity, COALESCE(image_url, '') FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity, &p.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetByName(name string) (models.Product, error) {
	query := `SELECT id, name, description, category, price, quantity, COALESCE(image_url, '') FROM products WHERE name = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, name).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity, &p.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, category = $3, price = $4, quantity = $5 WHERE id = $6`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Quantity, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) SetQuantity(id, quantity int) (models.Product, error) {
	query := `
		UPDATE products
		SET quantity = $1
		WHERE id = $2
		RETURNING id, name, description, category, price, quantity, COALESCE(image_url, '')
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, quantity, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity, &p.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// AdjustQuantity runs the increment and the non-negative check in a single
// statement so two concurrent deductions cannot race the stock below zero.
func (r *PostgresProductRepository) AdjustQuantity(id, delta int) (models.Product, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $1
		WHERE id = $2 AND quantity + $1 >= 0
		RETURNING id, name, description, category, price, quantity, COALESCE(image_url, '')
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, delta, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity, &p.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		// Zero rows means either an unknown product or a refused deduction.
		if _, getErr := r.GetByID(id); getErr != nil {
			return models.Product{}, getErr
		}
		return models.Product{}, ErrInvalidQuantityChange
	}
	return p, err
}

func (r *PostgresProductRepository) SetImageURL(id int, imageURL string) (string, error) {
	query := `
		UPDATE products
		SET image_url = $1
		FROM (SELECT id, COALESCE(image_url, '') AS old_url FROM products WHERE id = $2) prev
		WHERE products.id = prev.id
		RETURNING prev.old_url
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var oldURL string
	err := r.db.QueryRowContext(ctx, query, imageURL, id).Scan(&oldURL)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrProductNotFound
	}
	return oldURL, err
}
