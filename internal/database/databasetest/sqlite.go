// Package databasetest provides throwaway SQLite databases carrying the production schema.
package databasetest

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/01moynul/autoshop-golang/internal/database"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns a migrated in-memory database that is closed when t finishes.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s-%s?mode=memory&cache=shared", name, uuid.NewString())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	db, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// One connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)

	if err := database.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
