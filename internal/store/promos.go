package store

import (
	"context"
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/shopspring/decimal"
)

const promoColumns = `id, title, description, image_url, discount_percentage,
	start_date, end_date, is_active, created_at, updated_at`

func scanPromo(row rowScanner) (*models.Promo, error) {
	var p models.Promo
	var discount decimal.NullDecimal
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&discount,
		&p.StartDate,
		&p.EndDate,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.DiscountPercentage = fromNullDecimal(discount)
	return &p, nil
}

// ListPromos returns every promo, active ones first and newest first within each group.
func (s *Store) ListPromos(ctx context.Context) ([]*models.Promo, error) {
	query := "SELECT " + promoColumns + " FROM promos ORDER BY is_active DESC, created_at DESC, id DESC"

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, s.fail("list promos", err)
	}
	defer rows.Close()

	promos := make([]*models.Promo, 0)
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, s.fail("scan promo", err)
		}
		promos = append(promos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("iterate promos", err)
	}
	return promos, nil
}

// CreatePromo validates and stores a new promo.
func (s *Store) CreatePromo(ctx context.Context, input models.CreatePromoInput) (*models.Promo, error) {
	// 1. --- Validate Input ---
	if err := s.check(input); err != nil {
		return nil, err
	}

	// 2. --- Build Record ---
	now := s.now()
	discount := toNullDecimal(input.DiscountPercentage)
	promo := &models.Promo{
		Title:              input.Title,
		Description:        input.Description,
		ImageURL:           input.ImageURL,
		DiscountPercentage: fromNullDecimal(discount),
		StartDate:          input.StartDate.UTC(),
		EndDate:            input.EndDate.UTC(),
		IsActive:           boolOr(input.IsActive, true),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// 3. --- Insert Row ---
	query := `
		INSERT INTO promos
		(title, description, image_url, discount_percentage, start_date, end_date, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		promo.Title,
		promo.Description,
		promo.ImageURL,
		discount,
		promo.StartDate,
		promo.EndDate,
		promo.IsActive,
		promo.CreatedAt,
		promo.UpdatedAt,
	)
	if err != nil {
		return nil, s.fail("create promo", err)
	}

	// 4. --- Attach New ID ---
	id, err := result.LastInsertId()
	if err != nil {
		return nil, s.fail("create promo", fmt.Errorf("get new promo id: %w", err))
	}
	promo.ID = id
	return promo, nil
}
