package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ngomna/cms/internal/service"
)

// UploadMedia accepts a multipart upload with localized metadata
// fields and stores it through the media service.
func (a *API) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, a.maxUpload+1))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}

	var published *bool
	if raw := c.PostForm("published"); raw != "" {
		value := raw == "true"
		published = &value
	}

	media, err := a.media.Upload(service.UploadInput{
		Data:         data,
		OriginalName: file.Filename,
		Mimetype:     file.Header.Get("Content-Type"),
		Alt: service.LocalizedText{
			Default: c.PostForm("alt"),
			En:      c.PostForm("altEn"),
			Fr:      c.PostForm("altFr"),
		},
		Caption: service.LocalizedText{
			Default: c.PostForm("caption"),
			En:      c.PostForm("captionEn"),
			Fr:      c.PostForm("captionFr"),
		},
		Category:  c.PostForm("category"),
		Published: published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

// ListMedia returns media rows matching the query filters, paginated.
func (a *API) ListMedia(c *gin.Context) {
	filter := service.MediaFilter{
		MediaType: c.Query("mediaType"),
		Category:  c.Query("category"),
	}
	if raw := c.Query("published"); raw != "" {
		value := raw == "true"
		filter.Published = &value
	}
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filter.Page = parsed
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filter.PerPage = parsed
		}
	}

	result, err := a.media.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"media": result.Items,
		"pagination": gin.H{
			"currentPage":  result.Page,
			"totalPages":   result.TotalPages,
			"totalItems":   result.Total,
			"itemsPerPage": result.PerPage,
		},
	})
}

// GetMedia returns one media row.
func (a *API) GetMedia(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	media, err := a.media.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

type mediaPayload struct {
	Alt       string `json:"alt"`
	AltEn     string `json:"altEn"`
	AltFr     string `json:"altFr"`
	Caption   string `json:"caption"`
	CaptionEn string `json:"captionEn"`
	CaptionFr string `json:"captionFr"`
	Category  string `json:"category"`
	Published *bool  `json:"published"`
}

// UpdateMedia updates media metadata.
func (a *API) UpdateMedia(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload mediaPayload
	if !bindJSON(c, &payload, "invalid media payload") {
		return
	}

	media, err := a.media.Update(id, service.MediaInput{
		Alt:       service.LocalizedText{Default: payload.Alt, En: payload.AltEn, Fr: payload.AltFr},
		Caption:   service.LocalizedText{Default: payload.Caption, En: payload.CaptionEn, Fr: payload.CaptionFr},
		Category:  payload.Category,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

// DeleteMedia removes a media row, its section associations and the
// stored file.
func (a *API) DeleteMedia(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.media.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type attachPayload struct {
	MediaID   uint   `json:"mediaId"`
	MediaRole string `json:"mediaRole"`
	Order     int    `json:"order"`
}

// AttachMedia associates a media asset with a section.
func (a *API) AttachMedia(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload attachPayload
	if !bindJSON(c, &payload, "invalid attach payload") {
		return
	}

	link, err := a.sections.AttachMedia(sectionID, payload.MediaID, payload.MediaRole, payload.Order)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// DetachMedia removes a section/media association.
func (a *API) DetachMedia(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	mediaID, err := parseUintParam(c, "mediaId")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.sections.DetachMedia(sectionID, mediaID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
