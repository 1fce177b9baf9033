package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngomna/cms/internal/service"
)

type pagePayload struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	URL             string `json:"url"`
	PageType        string `json:"pageType"`
	Published       *bool  `json:"published"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

func (p pagePayload) toInput() service.PageInput {
	return service.PageInput{
		Name:            p.Name,
		Slug:            p.Slug,
		URL:             p.URL,
		PageType:        p.PageType,
		Published:       p.Published,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
	}
}

// ListPages returns every page for the admin dashboard, drafts included.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetPageAdmin returns one page regardless of publish state.
func (a *API) GetPageAdmin(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := a.pages.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreatePage creates a page.
func (a *API) CreatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	page, err := a.pages.Create(payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

// UpdatePage updates a page.
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	page, err := a.pages.Update(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeletePage deletes a page and cascades to its sections.
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.pages.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
