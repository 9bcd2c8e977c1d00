package models

import "time"

// Product is the model for the 'products' table.
type Product struct {
	ID            int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description   *string   `json:"description" db:"description" gorm:"type:text"`
	Price         float64   `json:"price" db:"price" gorm:"type:decimal(12,2);not null"`
	ImageURL      string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	Category      string    `json:"category" db:"category" gorm:"type:varchar(100);not null;index"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity" gorm:"not null;default:0"`
	IsAvailable   bool      `json:"is_available" db:"is_available" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// CreateProductInput defines the accepted shape for a new product.
type CreateProductInput struct {
	Name          string  `json:"name" yaml:"name" binding:"required"`
	Description   *string `json:"description" yaml:"description"`
	Price         float64 `json:"price" yaml:"price" binding:"required,gt=0"`
	ImageURL      string  `json:"image_url" yaml:"image_url" binding:"required,url"`
	Category      string  `json:"category" yaml:"category" binding:"required"`
	StockQuantity *int    `json:"stock_quantity" yaml:"stock_quantity" binding:"required,gte=0"`
	IsAvailable   *bool   `json:"is_available" yaml:"is_available"` // nil means true
}
