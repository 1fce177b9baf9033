package handler

import (
	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/auth"
	"github.com/ngomna/cms/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	auth        auth.Authenticator
	resolver    *service.ContentResolver
	pages       *service.PageService
	sections    *service.SectionService
	menus       *service.MenuService
	media       *service.MediaService
	collections *service.CollectionService
	maxUpload   int64
}

// NewAPI constructs a handler set with shared services. maxUploadBytes
// caps multipart uploads and falls back to the 50 MB default when not
// positive.
func NewAPI(gdb *gorm.DB, authenticator auth.Authenticator, uploadDir, uploadURL string, maxUploadBytes int64) *API {
	if maxUploadBytes <= 0 {
		maxUploadBytes = service.DefaultMaxUploadBytes
	}
	return &API{
		db:          gdb,
		auth:        authenticator,
		resolver:    service.NewContentResolver(gdb),
		pages:       service.NewPageService(gdb),
		sections:    service.NewSectionService(gdb),
		menus:       service.NewMenuService(gdb),
		media:       service.NewMediaService(gdb, uploadDir, uploadURL, maxUploadBytes),
		collections: service.NewCollectionService(gdb),
		maxUpload:   maxUploadBytes,
	}
}
