package models

import "time"

// Comment is the model for the 'comments' table.
// New comments are hidden from readers until a moderator approves them.
type Comment struct {
	ID          int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ArticleID   int64     `json:"article_id" db:"article_id" gorm:"not null;index"`
	AuthorName  string    `json:"author_name" db:"author_name" gorm:"type:varchar(255);not null"`
	AuthorEmail string    `json:"author_email" db:"author_email" gorm:"type:varchar(255);not null"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	IsApproved  bool      `json:"is_approved" db:"is_approved" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

// CreateCommentInput defines the accepted shape for a new comment.
type CreateCommentInput struct {
	ArticleID   int64  `json:"article_id" binding:"required"`
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"required,email"`
	Content     string `json:"content" binding:"required"`
}
