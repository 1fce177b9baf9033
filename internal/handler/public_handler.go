package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ngomna/cms/internal/db"
	"github.com/ngomna/cms/internal/service"
)

// GetPage serves the resolved, localized tree of one published page.
func (a *API) GetPage(c *gin.Context) {
	tree, err := a.resolver.ResolvePage(c.Param("slug"), requestLanguage(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

// GetSection serves one resolved published section.
func (a *API) GetSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	view, err := a.resolver.ResolveSection(id, requestLanguage(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetSectionsByType serves every published section of one layout type,
// optionally scoped to a page via the pageId query parameter.
func (a *API) GetSectionsByType(c *gin.Context) {
	sectionType := c.Param("sectionType")
	if !db.ValidSectionType(sectionType) {
		respondError(c, http.StatusBadRequest, "unknown section type")
		return
	}

	var pageID uint
	if raw := c.Query("pageId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid pageId")
			return
		}
		pageID = uint(parsed)
	}

	views, err := a.resolver.ListSectionsByType(sectionType, pageID, requestLanguage(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": views})
}

// GetNews serves published news articles, featured first.
func (a *API) GetNews(c *gin.Context) {
	filter := service.NewsFilter{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}
	items, err := a.resolver.ListNews(requestLanguage(c), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": items})
}

// GetReviews serves published testimonials.
func (a *API) GetReviews(c *gin.Context) {
	views, err := a.resolver.ListReviews(requestLanguage(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": views})
}

// GetFAQs serves published FAQ entries in display order.
func (a *API) GetFAQs(c *gin.Context) {
	views, err := a.resolver.ListFAQs(requestLanguage(c), c.Query("category"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": views})
}

// GetCarousel serves published carousel slides in display order.
func (a *API) GetCarousel(c *gin.Context) {
	views, err := a.resolver.ListCarousel(requestLanguage(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": views})
}

// GetMenu serves the published menu for a placement (header, footer,
// sidebar) with its ordered entries.
func (a *API) GetMenu(c *gin.Context) {
	menuType := c.Param("menuType")
	if !db.ValidMenuType(menuType) {
		respondError(c, http.StatusBadRequest, "unknown menu type")
		return
	}

	view, err := a.resolver.ResolveMenu(menuType, requestLanguage(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
