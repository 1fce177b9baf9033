package db

import "gorm.io/gorm"

// Feature is a highlighted capability shown inside a section. Icon and
// color are presentation tokens interpreted by the rendering frontend;
// the backend stores them opaquely.
type Feature struct {
	gorm.Model
	SectionID uint `gorm:"index;not null"`

	Title         string `gorm:"not null"`
	TitleEn       string
	TitleFr       string
	Description   string `gorm:"type:text;not null"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionFr string `gorm:"type:text"`

	Icon      string `gorm:"not null"`
	IconImage string
	Image     string
	Color     string `gorm:"not null;default:'from-gray-500 to-gray-600'"`
	Order     int
	Published bool
}
