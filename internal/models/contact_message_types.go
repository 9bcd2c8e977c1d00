package models

import "time"

// ContactMessage is the model for the 'contact_messages' table.
type ContactMessage struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" db:"email" gorm:"type:varchar(255);not null"`
	Phone     *string   `json:"phone" db:"phone" gorm:"type:varchar(50)"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" db:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

// CreateContactMessageInput defines the accepted shape for a contact form submission.
type CreateContactMessageInput struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject" binding:"required"`
	Message string  `json:"message" binding:"required"`
}
