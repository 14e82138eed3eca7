package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a published blog entry. AuthorID is always taken from the
// authenticated identity, never from a request body.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"not null" json:"content"`
	AuthorID  uint           `gorm:"not null;index" json:"authorId"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
