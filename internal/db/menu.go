package db

import "gorm.io/gorm"

// Menu placements on the public site.
const (
	MenuTypeHeader  = "header"
	MenuTypeFooter  = "footer"
	MenuTypeSidebar = "sidebar"
)

// Link kinds.
const (
	LinkTypeInternal = "internal"
	LinkTypeExternal = "external"
	LinkTypeDownload = "download"
)

// Menu is a named navigation container rendered in the header,
// footer or sidebar.
type Menu struct {
	gorm.Model
	Title     string `gorm:"uniqueIndex;not null"`
	MenuType  string `gorm:"not null;default:header"`
	Published bool

	Items []MenuItem `gorm:"foreignKey:MenuID"`
	Links []Link     `gorm:"foreignKey:MenuID"`
}

// MenuItem is one localized navigation entry. When it points at a Page
// its URL is derived from the label and kept consistent with the
// Page and Link rows of the same triad.
type MenuItem struct {
	gorm.Model
	MenuID    uint   `gorm:"index;not null"`
	Label     string `gorm:"not null"`
	LabelEn   string
	LabelFr   string
	URL       string
	Order     int
	Published bool

	PageID *uint
	Page   *Page
}

// Link is a localized hyperlink owned by a menu, optionally backed by a Page.
type Link struct {
	gorm.Model
	MenuID    uint   `gorm:"index;not null"`
	Label     string `gorm:"not null"`
	LabelEn   string
	LabelFr   string
	URL       string `gorm:"not null"`
	LinkType  string `gorm:"not null;default:internal"`
	Order     int
	Published bool

	PageID *uint
	Page   *Page
}

// ValidMenuType reports whether t is one of the supported menu placements.
func ValidMenuType(t string) bool {
	switch t {
	case MenuTypeHeader, MenuTypeFooter, MenuTypeSidebar:
		return true
	}
	return false
}
