package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/models"
)

const serviceBookingColumns = `id, customer_name, customer_email, customer_phone, service_type,
	vehicle_type, preferred_date, preferred_time, notes, status, created_at, updated_at`

func scanServiceBooking(row rowScanner) (*models.ServiceBooking, error) {
	var b models.ServiceBooking
	if err := row.Scan(
		&b.ID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.ServiceType,
		&b.VehicleType,
		&b.PreferredDate,
		&b.PreferredTime,
		&b.Notes,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListServiceBookings returns bookings by preferred date, most recent requests first on the same date.
func (s *Store) ListServiceBookings(ctx context.Context) ([]*models.ServiceBooking, error) {
	query := "SELECT " + serviceBookingColumns + " FROM service_bookings ORDER BY preferred_date ASC, created_at DESC, id DESC"

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, s.fail("list service bookings", err)
	}
	defer rows.Close()

	bookings := make([]*models.ServiceBooking, 0)
	for rows.Next() {
		b, err := scanServiceBooking(rows)
		if err != nil {
			return nil, s.fail("scan service booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("iterate service bookings", err)
	}
	return bookings, nil
}

// CreateServiceBooking stores a booking request in the pending state.
func (s *Store) CreateServiceBooking(ctx context.Context, input models.CreateServiceBookingInput) (*models.ServiceBooking, error) {
	// 1. --- Validate Input ---
	if err := s.check(input); err != nil {
		return nil, err
	}

	// 2. --- Build Record ---
	now := s.now()
	booking := &models.ServiceBooking{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		ServiceType:   input.ServiceType,
		VehicleType:   input.VehicleType,
		PreferredDate: input.PreferredDate.UTC(),
		PreferredTime: input.PreferredTime,
		Notes:         input.Notes,
		Status:        models.BookingPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 3. --- Insert Row ---
	query := `
		INSERT INTO service_bookings
		(customer_name, customer_email, customer_phone, service_type, vehicle_type,
		preferred_date, preferred_time, notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.ServiceType,
		booking.VehicleType,
		booking.PreferredDate,
		booking.PreferredTime,
		booking.Notes,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return nil, s.fail("create service booking", err)
	}

	// 4. --- Attach New ID ---
	id, err := result.LastInsertId()
	if err != nil {
		return nil, s.fail("create service booking", fmt.Errorf("get new booking id: %w", err))
	}
	booking.ID = id
	return booking, nil
}

// UpdateServiceBookingStatus moves a booking to a new status if the transition is allowed.
// The UPDATE is guarded on the current status, so two moderators racing on the same
// booking cannot both succeed.
func (s *Store) UpdateServiceBookingStatus(ctx context.Context, id int64, input models.UpdateBookingStatusInput) (*models.ServiceBooking, error) {
	// 1. --- Validate Input ---
	if err := s.check(input); err != nil {
		return nil, err
	}

	// 2. --- Check Transition ---
	booking, err := s.getServiceBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, input.Status) {
		return nil, fmt.Errorf("booking %d from %s to %s: %w", id, booking.Status, input.Status, ErrInvalidTransition)
	}

	// 3. --- Guarded Update ---
	now := s.now()
	result, err := s.DB.ExecContext(ctx,
		"UPDATE service_bookings SET status = ?, updated_at = ? WHERE id = ? AND status = ?",
		input.Status, now, id, booking.Status,
	)
	if err != nil {
		return nil, s.fail("update booking status", err)
	}
	if err := s.expectRow(result, "update booking status"); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Someone else changed the status between our read and write.
			return nil, fmt.Errorf("booking %d changed concurrently: %w", id, ErrInvalidTransition)
		}
		return nil, err
	}

	booking.Status = input.Status
	booking.UpdatedAt = now
	return booking, nil
}

func (s *Store) getServiceBooking(ctx context.Context, id int64) (*models.ServiceBooking, error) {
	query := "SELECT " + serviceBookingColumns + " FROM service_bookings WHERE id = ?"

	booking, err := scanServiceBooking(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, s.fail("get service booking", err)
	}
	return booking, nil
}
