package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Section types understood by the public site layout.
const (
	SectionTypeHeader    = "header"
	SectionTypeFooter    = "footer"
	SectionTypeContent   = "content"
	SectionTypeHero      = "herosection"
	SectionTypeAbout     = "about"
	SectionTypeWhyChoose = "why_choose_ngomna"
	SectionTypeCarousel  = "carousel"
	SectionTypeNews      = "news"
	SectionTypeReviews   = "reviews"
	SectionTypeFAQs      = "faqs"
	SectionTypeDownload  = "download"
)

// Section is an ordered sub-unit of a Page layout. It carries its own
// localized copy plus multimedia pointers, and owns nested content
// blocks, features, carousel items and media associations.
type Section struct {
	gorm.Model
	PageID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	SectionType string `gorm:"not null"`
	Order       int
	Published   bool

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

	BackgroundImage string
	PrimaryImage    string
	VideoURL        string
	VideoThumbnail  string
	CustomData      datatypes.JSON

	Contents      []Content      `gorm:"foreignKey:SectionID"`
	Features      []Feature      `gorm:"foreignKey:SectionID"`
	CarouselItems []CarouselItem `gorm:"foreignKey:SectionID"`
	MediaLinks    []SectionMedia `gorm:"foreignKey:SectionID"`
}

// ValidSectionType reports whether t is one of the supported section types.
func ValidSectionType(t string) bool {
	switch t {
	case SectionTypeHeader, SectionTypeFooter, SectionTypeContent,
		SectionTypeHero, SectionTypeAbout, SectionTypeWhyChoose,
		SectionTypeCarousel, SectionTypeNews, SectionTypeReviews,
		SectionTypeFAQs, SectionTypeDownload:
		return true
	}
	return false
}
