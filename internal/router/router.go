package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/auth"
	"github.com/ngomna/cms/internal/handler"
)

// Options carries the wiring a router needs beyond the database handle.
type Options struct {
	Authenticator  auth.Authenticator
	SessionSecret  string
	UploadDir      string
	UploadURLPath  string
	MaxUploadBytes int64
}

// SetupRouter configures the Gin engine: public content API, media
// file serving and the session-guarded admin API.
func SetupRouter(gdb *gorm.DB, opts Options) *gin.Engine {
	r := gin.Default()

	secret := opts.SessionSecret
	if secret == "" {
		secret = "ngomna-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("ngomna_session", store))

	authenticator := opts.Authenticator
	if authenticator == nil {
		authenticator = auth.NewDBAuthenticator(gdb)
	}

	api := handler.NewAPI(gdb, authenticator, opts.UploadDir, opts.UploadURLPath, opts.MaxUploadBytes)

	if opts.UploadDir != "" && opts.UploadURLPath != "" {
		r.Static(opts.UploadURLPath, opts.UploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public content API
	public := r.Group("/api")
	{
		public.GET("/pages/:slug", api.GetPage)
		public.GET("/sections/type/:sectionType", api.GetSectionsByType)
		public.GET("/sections/:id", api.GetSection)
		public.GET("/news", api.GetNews)
		public.GET("/reviews", api.GetReviews)
		public.GET("/faqs", api.GetFAQs)
		public.GET("/carousel", api.GetCarousel)
		public.GET("/menus/:menuType", api.GetMenu)
		public.GET("/media/:id", api.GetMedia)
	}

	// Admin API
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		guarded := admin.Group("/api")
		guarded.Use(handler.AuthRequired())
		{
			guarded.GET("/pages", api.ListPages)
			guarded.GET("/pages/:id", api.GetPageAdmin)
			guarded.POST("/pages", api.CreatePage)
			guarded.PUT("/pages/:id", api.UpdatePage)
			guarded.DELETE("/pages/:id", api.DeletePage)

			guarded.GET("/pages/:id/sections", api.ListSections)
			guarded.POST("/pages/:id/sections", api.CreateSection)
			guarded.PUT("/sections/:id", api.UpdateSection)
			guarded.DELETE("/sections/:id", api.DeleteSection)

			guarded.POST("/sections/:id/contents", api.CreateContent)
			guarded.PUT("/contents/:id", api.UpdateContent)
			guarded.DELETE("/contents/:id", api.DeleteContent)

			guarded.POST("/sections/:id/features", api.CreateFeature)
			guarded.PUT("/features/:id", api.UpdateFeature)
			guarded.DELETE("/features/:id", api.DeleteFeature)

			guarded.POST("/sections/:id/carousel", api.CreateCarouselItem)
			guarded.PUT("/carousel/:id", api.UpdateCarouselItem)
			guarded.DELETE("/carousel/:id", api.DeleteCarouselItem)

			guarded.POST("/media", api.UploadMedia)
			guarded.GET("/media", api.ListMedia)
			guarded.PUT("/media/:id", api.UpdateMedia)
			guarded.DELETE("/media/:id", api.DeleteMedia)
			guarded.POST("/sections/:id/media", api.AttachMedia)
			guarded.DELETE("/sections/:id/media/:mediaId", api.DetachMedia)

			guarded.GET("/menus", api.ListMenus)
			guarded.POST("/menus", api.CreateMenu)
			guarded.DELETE("/menus/:id", api.DeleteMenu)
			guarded.GET("/menus/:id/items", api.ListMenuItems)
			guarded.GET("/menus/:id/links", api.ListMenuLinks)
			guarded.POST("/menus/:id/entries", api.AddMenuEntry)
			guarded.PUT("/menu-items/:id", api.RenameMenuItem)
			guarded.PUT("/menu-items/:id/placement", api.UpdateMenuEntry)
			guarded.PUT("/menu-items/label/:label", api.RenameMenuItemByLabel)
			guarded.DELETE("/menu-items/label/:label", api.DeleteMenuItemByLabel)
			guarded.PUT("/links/:id", api.RenameLink)
			guarded.DELETE("/links/label/:label", api.DeleteLinkByLabel)

			guarded.POST("/news", api.CreateNews)
			guarded.PUT("/news/:id", api.UpdateNews)
			guarded.DELETE("/news/:id", api.DeleteNews)

			guarded.POST("/reviews", api.CreateReview)
			guarded.PUT("/reviews/:id", api.UpdateReview)
			guarded.DELETE("/reviews/:id", api.DeleteReview)

			guarded.POST("/faqs", api.CreateFAQ)
			guarded.PUT("/faqs/:id", api.UpdateFAQ)
			guarded.DELETE("/faqs/:id", api.DeleteFAQ)
		}
	}

	return r
}
