package database

import (
	"database/sql"
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every model that owns a table, in creation order.
func Tables() []interface{} {
	return []interface{}{
		&models.Promo{},
		&models.Product{},
		&models.Article{},
		&models.Comment{},
		&models.ContactMessage{},
		&models.ServiceBooking{},
	}
}

// Migrate creates or upgrades the schema over an existing MySQL pool.
func Migrate(db *sql.DB) error {
	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open gorm over mysql pool: %w", err)
	}
	return AutoMigrate(gdb)
}

// AutoMigrate runs gorm's AutoMigrate for all tables on any dialect.
func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Tables()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
