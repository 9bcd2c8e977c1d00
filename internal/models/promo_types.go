package models

import "time"

// Promo is the model for the 'promos' table.
// DiscountPercentage is stored as DECIMAL(5,2) and converted to a float at the store boundary.
type Promo struct {
	ID                 int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title              string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description        *string   `json:"description" db:"description" gorm:"type:text"`
	ImageURL           string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	DiscountPercentage *float64  `json:"discount_percentage" db:"discount_percentage" gorm:"type:decimal(5,2)"`
	StartDate          time.Time `json:"start_date" db:"start_date" gorm:"not null"`
	EndDate            time.Time `json:"end_date" db:"end_date" gorm:"not null"`
	IsActive           bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	CreatedAt          time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// CreatePromoInput defines the accepted shape for a new promo.
type CreatePromoInput struct {
	Title              string    `json:"title" yaml:"title" binding:"required"`
	Description        *string   `json:"description" yaml:"description"`
	ImageURL           string    `json:"image_url" yaml:"image_url" binding:"required,url"`
	DiscountPercentage *float64  `json:"discount_percentage" yaml:"discount_percentage" binding:"omitempty,gte=0,lte=100"`
	StartDate          time.Time `json:"start_date" yaml:"start_date" binding:"required"`
	EndDate            time.Time `json:"end_date" yaml:"end_date" binding:"required"`
	IsActive           *bool     `json:"is_active" yaml:"is_active"` // nil means true
}
