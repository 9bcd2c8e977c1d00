package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/shopspring/decimal"
)

// maxPrice is the first value that no longer fits DECIMAL(12,2).
var maxPrice = decimal.New(1, 10)

const productColumns = `id, name, description, price, image_url, category,
	stock_quantity, is_available, created_at, updated_at`

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var price decimal.Decimal
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&price,
		&p.ImageURL,
		&p.Category,
		&p.StockQuantity,
		&p.IsAvailable,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Price = fromDecimal(price)
	return &p, nil
}

// ListProducts returns every product grouped by category, unavailable ones first in each group.
func (s *Store) ListProducts(ctx context.Context) ([]*models.Product, error) {
	query := "SELECT " + productColumns + " FROM products ORDER BY category ASC, is_available ASC, id ASC"

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, s.fail("list products", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, s.fail("scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("iterate products", err)
	}
	return products, nil
}

// GetProduct returns one product or ErrNotFound.
func (s *Store) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = ?"

	product, err := scanProduct(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, s.fail("get product", err)
	}
	return product, nil
}

// CreateProduct validates and stores a new product.
func (s *Store) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	// 1. --- Validate Input ---
	if err := s.check(input); err != nil {
		return nil, err
	}
	// gt=0 lets +Inf through.
	if math.IsInf(input.Price, 0) || math.IsNaN(input.Price) {
		return nil, &ValidationError{Fields: map[string]string{"price": "must be a finite number"}}
	}

	price := toDecimal(input.Price)
	if !price.IsPositive() {
		return nil, &ValidationError{Fields: map[string]string{"price": "must be at least 0.01"}}
	}
	if !price.LessThan(maxPrice) {
		return nil, &ValidationError{Fields: map[string]string{"price": "must be less than " + maxPrice.String()}}
	}

	// 2. --- Build Record ---
	now := s.now()
	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         fromDecimal(price),
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		StockQuantity: *input.StockQuantity,
		IsAvailable:   boolOr(input.IsAvailable, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 3. --- Insert Row ---
	query := `
		INSERT INTO products
		(name, description, price, image_url, category, stock_quantity, is_available, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		product.Name,
		product.Description,
		price,
		product.ImageURL,
		product.Category,
		product.StockQuantity,
		product.IsAvailable,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return nil, s.fail("create product", err)
	}

	// 4. --- Attach New ID ---
	id, err := result.LastInsertId()
	if err != nil {
		return nil, s.fail("create product", fmt.Errorf("get new product id: %w", err))
	}
	product.ID = id
	return product, nil
}
