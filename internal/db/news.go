package db

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewsArticle is a flat, localized news entry with optional media.
type NewsArticle struct {
	gorm.Model
	Title     string `gorm:"not null"`
	TitleEn   string
	TitleFr   string
	Excerpt   string `gorm:"type:text;not null"`
	ExcerptEn string `gorm:"type:text"`
	ExcerptFr string `gorm:"type:text"`
	Content   string `gorm:"type:text"`
	ContentEn string `gorm:"type:text"`
	ContentFr string `gorm:"type:text"`

	Category   string `gorm:"not null"`
	CategoryEn string
	CategoryFr string

	Icon           string `gorm:"not null;default:Zap"`
	Image          string
	Images         datatypes.JSON
	VideoURL       string
	VideoThumbnail string

	Featured     bool
	Published    bool
	PublishedAt  time.Time
	ExternalLink string
	Slug         string `gorm:"uniqueIndex;not null"`
}
