package db

import "gorm.io/gorm"

// Media kinds derived from the upload MIME type.
const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeAudio    = "audio"
	MediaTypeDocument = "document"
)

// Roles a media asset can play inside a section.
const (
	MediaRolePrimary    = "primary"
	MediaRoleBackground = "background"
	MediaRoleGallery    = "gallery"
	MediaRoleThumbnail  = "thumbnail"
	MediaRoleIcon       = "icon"
)

// Media is a stored binary asset with localized descriptive metadata.
// It is shared: the same row may serve several sections through
// SectionMedia associations.
type Media struct {
	gorm.Model
	Filename     string `gorm:"not null"`
	OriginalName string `gorm:"not null"`
	Mimetype     string `gorm:"not null"`
	Size         int64  `gorm:"not null"`
	Path         string `gorm:"not null"`
	URL          string `gorm:"not null"`

	Alt       string
	AltEn     string
	AltFr     string
	Caption   string `gorm:"type:text"`
	CaptionEn string `gorm:"type:text"`
	CaptionFr string `gorm:"type:text"`

	MediaType string `gorm:"not null;default:image"`
	Category  string
	Width     int
	Height    int
	Published bool
}

// SectionMedia records how a Media asset is used within one Section:
// its role, its position, and an optional localized description.
type SectionMedia struct {
	gorm.Model
	SectionID uint `gorm:"index;not null"`
	MediaID   uint `gorm:"index;not null"`
	Media     Media

	MediaRole     string `gorm:"not null;default:primary"`
	Order         int
	Description   string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionFr string `gorm:"type:text"`
}

// ValidMediaRole reports whether r is one of the supported media roles.
func ValidMediaRole(r string) bool {
	switch r {
	case MediaRolePrimary, MediaRoleBackground, MediaRoleGallery,
		MediaRoleThumbnail, MediaRoleIcon:
		return true
	}
	return false
}
