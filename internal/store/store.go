// Package store is the request layer: one method per operation, each validating its
// input and issuing a single statement against one table.
package store

import (
	"database/sql"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Store runs every read and write the API exposes.
type Store struct {
	DB     *sql.DB
	Logger *slog.Logger

	validate *validator.Validate
	now      func() time.Time
}

// New wires a Store around an open pool. A nil logger falls back to slog.Default().
func New(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		DB:       db,
		Logger:   logger,
		validate: newValidator(),
		now:      defaultNow,
	}
}

// DATETIME(3) keeps milliseconds, so timestamps are truncated to match what is stored.
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// newValidator reads the same `binding` tags gin uses and reports json field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(JSONFieldName)
	return v
}

// JSONFieldName names a struct field the way it appears on the wire.
func JSONFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func (s *Store) check(input interface{}) error {
	if err := s.validate.Struct(input); err != nil {
		return NewValidationError(err)
	}
	return nil
}

// fail logs a database failure and hands the error back unchanged.
func (s *Store) fail(op string, err error) error {
	s.Logger.Error("database operation failed", "op", op, "error", err)
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
