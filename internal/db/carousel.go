package db

import "gorm.io/gorm"

// CarouselItem is one localized slide owned by a carousel section.
type CarouselItem struct {
	gorm.Model
	SectionID uint `gorm:"index;not null"`

	Title         string `gorm:"not null"`
	TitleEn       string
	TitleFr       string
	Description   string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionFr string `gorm:"type:text"`

	Image          string
	VideoURL       string
	VideoThumbnail string
	Link           string
	Order          int
	Published      bool
}
