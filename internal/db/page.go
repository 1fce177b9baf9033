package db

import "gorm.io/gorm"

// Page types understood by the public site.
const (
	PageTypeHome        = "home"
	PageTypeService     = "service"
	PageTypeInformation = "information"
	PageTypeStatic      = "static"
)

// Page represents a top-level addressable unit of the public site,
// such as the home page or a service page.
type Page struct {
	gorm.Model
	Name            string `gorm:"not null"`
	Slug            string `gorm:"uniqueIndex;not null"`
	URL             string `gorm:"uniqueIndex;not null"`
	PageType        string `gorm:"not null"`
	Published       bool
	MetaTitle       string
	MetaDescription string `gorm:"type:text"`

	Sections  []Section  `gorm:"foreignKey:PageID"`
	MenuItems []MenuItem `gorm:"foreignKey:PageID"`
	Links     []Link     `gorm:"foreignKey:PageID"`
}

// ValidPageType reports whether t is one of the supported page types.
func ValidPageType(t string) bool {
	switch t {
	case PageTypeHome, PageTypeService, PageTypeInformation, PageTypeStatic:
		return true
	}
	return false
}
