package models

import "time"

// Booking statuses. A booking starts as pending.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// ServiceBooking is the model for the 'service_bookings' table.
type ServiceBooking struct {
	ID            int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName  string    `json:"customer_name" db:"customer_name" gorm:"type:varchar(255);not null"`
	CustomerEmail string    `json:"customer_email" db:"customer_email" gorm:"type:varchar(255);not null"`
	CustomerPhone string    `json:"customer_phone" db:"customer_phone" gorm:"type:varchar(50);not null"`
	ServiceType   string    `json:"service_type" db:"service_type" gorm:"type:varchar(100);not null"`
	VehicleType   *string   `json:"vehicle_type" db:"vehicle_type" gorm:"type:varchar(100)"`
	PreferredDate time.Time `json:"preferred_date" db:"preferred_date" gorm:"not null;index"`
	PreferredTime string    `json:"preferred_time" db:"preferred_time" gorm:"type:varchar(20);not null"`
	Notes         *string   `json:"notes" db:"notes" gorm:"type:text"`
	Status        string    `json:"status" db:"status" gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// CreateServiceBookingInput defines the accepted shape for a booking request.
type CreateServiceBookingInput struct {
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	ServiceType   string    `json:"service_type" binding:"required"`
	VehicleType   *string   `json:"vehicle_type"`
	PreferredDate time.Time `json:"preferred_date" binding:"required"`
	PreferredTime string    `json:"preferred_time" binding:"required"`
	Notes         *string   `json:"notes"`
}

// UpdateBookingStatusInput is used by moderators to move a booking along.
type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
