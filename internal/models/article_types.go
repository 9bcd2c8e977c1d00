package models

import "time"

// Article is the model for the 'articles' table.
// LikeCount and ViewCount only ever move up, one step per like or view.
type Article struct {
	ID          int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt     *string   `json:"excerpt" db:"excerpt" gorm:"type:text"`
	ImageURL    *string   `json:"image_url" db:"image_url" gorm:"type:text"`
	Category    string    `json:"category" db:"category" gorm:"type:varchar(100);not null"`
	Author      string    `json:"author" db:"author" gorm:"type:varchar(255);not null"`
	LikeCount   int       `json:"like_count" db:"like_count" gorm:"not null;default:0"`
	ViewCount   int       `json:"view_count" db:"view_count" gorm:"not null;default:0"`
	IsPublished bool      `json:"is_published" db:"is_published" gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// CreateArticleInput defines the accepted shape for a new article.
type CreateArticleInput struct {
	Title       string  `json:"title" yaml:"title" binding:"required"`
	Content     string  `json:"content" yaml:"content" binding:"required"`
	Excerpt     *string `json:"excerpt" yaml:"excerpt"`
	ImageURL    *string `json:"image_url" yaml:"image_url" binding:"omitempty,url"`
	Category    string  `json:"category" yaml:"category" binding:"required"`
	Author      string  `json:"author" yaml:"author" binding:"required"`
	IsPublished *bool   `json:"is_published" yaml:"is_published"` // nil means true
}
