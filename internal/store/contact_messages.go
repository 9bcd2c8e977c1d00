package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/models"
)

const contactMessageColumns = "id, name, email, phone, subject, message, is_read, created_at"

func scanContactMessage(row rowScanner) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Subject,
		&m.Message,
		&m.IsRead,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateContactMessage stores a message from the contact form as unread.
func (s *Store) CreateContactMessage(ctx context.Context, input models.CreateContactMessageInput) (*models.ContactMessage, error) {
	// 1. --- Validate Input ---
	if err := s.check(input); err != nil {
		return nil, err
	}

	// 2. --- Build Record ---
	msg := &models.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		IsRead:    false,
		CreatedAt: s.now(),
	}

	// 3. --- Insert Row ---
	query := `
		INSERT INTO contact_messages
		(name, email, phone, subject, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
		msg.IsRead,
		msg.CreatedAt,
	)
	if err != nil {
		return nil, s.fail("create contact message", err)
	}

	// 4. --- Attach New ID ---
	id, err := result.LastInsertId()
	if err != nil {
		return nil, s.fail("create contact message", fmt.Errorf("get new message id: %w", err))
	}
	msg.ID = id
	return msg, nil
}

// ListContactMessages returns the inbox with unread and newest messages first.
func (s *Store) ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	query := "SELECT " + contactMessageColumns + " FROM contact_messages ORDER BY is_read ASC, created_at DESC, id DESC"

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, s.fail("list contact messages", err)
	}
	defer rows.Close()

	messages := make([]*models.ContactMessage, 0)
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, s.fail("scan contact message", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("iterate contact messages", err)
	}
	return messages, nil
}

// MarkContactMessageRead flags a message as handled.
func (s *Store) MarkContactMessageRead(ctx context.Context, id int64) (*models.ContactMessage, error) {
	result, err := s.DB.ExecContext(ctx, "UPDATE contact_messages SET is_read = ? WHERE id = ?", true, id)
	if err != nil {
		return nil, s.fail("mark contact message read", err)
	}
	if err := s.expectRow(result, "mark contact message read"); err != nil {
		return nil, fmt.Errorf("contact message %d: %w", id, err)
	}

	query := "SELECT " + contactMessageColumns + " FROM contact_messages WHERE id = ?"
	msg, err := scanContactMessage(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("contact message %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, s.fail("get contact message", err)
	}
	return msg, nil
}
