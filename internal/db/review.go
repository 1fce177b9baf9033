package db

import (
	"time"

	"gorm.io/gorm"
)

// Rating bounds for reviews.
const (
	RatingMin = 1
	RatingMax = 5
)

// Review is a user testimonial. Only the comment follows the
// localized triple pattern.
type Review struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Username string
	Avatar   string
	Rating   int `gorm:"not null;default:5"`

	Comment   string `gorm:"type:text;not null"`
	CommentEn string `gorm:"type:text"`
	CommentFr string `gorm:"type:text"`

	Verified    bool
	Published   bool
	PublishedAt time.Time
}
