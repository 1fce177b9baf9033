package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Content block formats.
const (
	ContentTypeText     = "text"
	ContentTypeHTML     = "html"
	ContentTypeMarkdown = "markdown"
)

// Content is a discrete, ordered content block inside a Section.
type Content struct {
	gorm.Model
	SectionID uint `gorm:"index;not null"`

	Title         string
	TitleEn       string
	TitleFr       string
	Subtitle      string
	SubtitleEn    string
	SubtitleFr    string
	Description   string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionFr string `gorm:"type:text"`
	Content       string `gorm:"type:text"`
	ContentEn     string `gorm:"type:text"`
	ContentFr     string `gorm:"type:text"`

	ContentType string `gorm:"not null;default:text"`
	ContentData datatypes.JSON
	Order       int
	Published   bool
}

// ValidContentType reports whether t is one of the supported block formats.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeText, ContentTypeHTML, ContentTypeMarkdown:
		return true
	}
	return false
}
