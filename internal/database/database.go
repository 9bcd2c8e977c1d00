package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// OpenDB creates the shared MySQL connection pool for the given DSN.
// parseTime is forced on so DATETIME columns scan into time.Time, and clientFoundRows
// makes RowsAffected count matched rows rather than changed ones.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	if cfg.Loc == nil || cfg.Loc == time.Local {
		cfg.Loc = time.UTC
	}

	return OpenDBWithDSN(ctx, cfg.FormatDSN())
}

// OpenDBWithDSN opens and configures a pool for an already formatted DSN.
func OpenDBWithDSN(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	Configure(db)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		slog.Error("error connecting to database", "error", err)
		return nil, err
	}

	slog.Info("database connection pool established")
	return db, nil
}

// Configure applies the pool limits used in every environment.
func Configure(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
}
