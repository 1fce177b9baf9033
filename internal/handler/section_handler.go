package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ngomna/cms/internal/service"
)

type sectionPayload struct {
	Name        string `json:"name"`
	SectionType string `json:"sectionType"`
	Order       int    `json:"order"`
	Published   *bool  `json:"published"`

	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	TitleFr       string `json:"titleFr"`
	Subtitle      string `json:"subtitle"`
	SubtitleEn    string `json:"subtitleEn"`
	SubtitleFr    string `json:"subtitleFr"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionFr string `json:"descriptionFr"`
	Content       string `json:"content"`
	ContentEn     string `json:"contentEn"`
	ContentFr     string `json:"contentFr"`

	BackgroundImage string         `json:"backgroundImage"`
	PrimaryImage    string         `json:"primaryImage"`
	VideoURL        string         `json:"videoUrl"`
	VideoThumbnail  string         `json:"videoThumbnail"`
	CustomData      datatypes.JSON `json:"customData"`
}

func (p sectionPayload) toInput() service.SectionInput {
	return service.SectionInput{
		Name:            p.Name,
		SectionType:     p.SectionType,
		Order:           p.Order,
		Published:       p.Published,
		Title:           service.LocalizedText{Default: p.Title, En: p.TitleEn, Fr: p.TitleFr},
		Subtitle:        service.LocalizedText{Default: p.Subtitle, En: p.SubtitleEn, Fr: p.SubtitleFr},
		Description:     service.LocalizedText{Default: p.Description, En: p.DescriptionEn, Fr: p.DescriptionFr},
		Content:         service.LocalizedText{Default: p.Content, En: p.ContentEn, Fr: p.ContentFr},
		BackgroundImage: p.BackgroundImage,
		PrimaryImage:    p.PrimaryImage,
		VideoURL:        p.VideoURL,
		VideoThumbnail:  p.VideoThumbnail,
		CustomData:      p.CustomData,
	}
}

type contentPayload struct {
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	TitleFr       string `json:"titleFr"`
	Subtitle      string `json:"subtitle"`
	SubtitleEn    string `json:"subtitleEn"`
	SubtitleFr    string `json:"subtitleFr"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionFr string `json:"descriptionFr"`
	Content       string `json:"content"`
	ContentEn     string `json:"contentEn"`
	ContentFr     string `json:"contentFr"`

	ContentType string         `json:"contentType"`
	ContentData datatypes.JSON `json:"contentData"`
	Order       int            `json:"order"`
	Published   *bool          `json:"published"`
}

func (p contentPayload) toInput() service.ContentInput {
	return service.ContentInput{
		Title:       service.LocalizedText{Default: p.Title, En: p.TitleEn, Fr: p.TitleFr},
		Subtitle:    service.LocalizedText{Default: p.Subtitle, En: p.SubtitleEn, Fr: p.SubtitleFr},
		Description: service.LocalizedText{Default: p.Description, En: p.DescriptionEn, Fr: p.DescriptionFr},
		Content:     service.LocalizedText{Default: p.Content, En: p.ContentEn, Fr: p.ContentFr},
		ContentType: p.ContentType,
		ContentData: p.ContentData,
		Order:       p.Order,
		Published:   p.Published,
	}
}

type featurePayload struct {
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	TitleFr       string `json:"titleFr"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionFr string `json:"descriptionFr"`

	Icon      string `json:"icon"`
	IconImage string `json:"iconImage"`
	Image     string `json:"image"`
	Color     string `json:"color"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

func (p featurePayload) toInput() service.FeatureInput {
	return service.FeatureInput{
		Title:       service.LocalizedText{Default: p.Title, En: p.TitleEn, Fr: p.TitleFr},
		Description: service.LocalizedText{Default: p.Description, En: p.DescriptionEn, Fr: p.DescriptionFr},
		Icon:        p.Icon,
		IconImage:   p.IconImage,
		Image:       p.Image,
		Color:       p.Color,
		Order:       p.Order,
		Published:   p.Published,
	}
}

type carouselPayload struct {
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	TitleFr       string `json:"titleFr"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionFr string `json:"descriptionFr"`

	Image          string `json:"image"`
	VideoURL       string `json:"videoUrl"`
	VideoThumbnail string `json:"videoThumbnail"`
	Link           string `json:"link"`
	Order          int    `json:"order"`
	Published      *bool  `json:"published"`
}

func (p carouselPayload) toInput() service.CarouselItemInput {
	return service.CarouselItemInput{
		Title:          service.LocalizedText{Default: p.Title, En: p.TitleEn, Fr: p.TitleFr},
		Description:    service.LocalizedText{Default: p.Description, En: p.DescriptionEn, Fr: p.DescriptionFr},
		Image:          p.Image,
		VideoURL:       p.VideoURL,
		VideoThumbnail: p.VideoThumbnail,
		Link:           p.Link,
		Order:          p.Order,
		Published:      p.Published,
	}
}

// ListSections returns every section of a page, drafts included.
func (a *API) ListSections(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sections, err := a.sections.ListByPage(pageID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// CreateSection creates a section under a page.
func (a *API) CreateSection(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload sectionPayload
	if !bindJSON(c, &payload, "invalid section payload") {
		return
	}

	section, err := a.sections.Create(pageID, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateSection updates a section.
func (a *API) UpdateSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload sectionPayload
	if !bindJSON(c, &payload, "invalid section payload") {
		return
	}

	section, err := a.sections.Update(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

// DeleteSection deletes a section and its owned blocks.
func (a *API) DeleteSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.sections.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateContent adds a content block to a section.
func (a *API) CreateContent(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload contentPayload
	if !bindJSON(c, &payload, "invalid content payload") {
		return
	}

	block, err := a.sections.CreateContent(sectionID, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// UpdateContent updates a content block.
func (a *API) UpdateContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload contentPayload
	if !bindJSON(c, &payload, "invalid content payload") {
		return
	}

	block, err := a.sections.UpdateContent(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// DeleteContent removes a content block.
func (a *API) DeleteContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.sections.DeleteContent(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateFeature adds a feature to a section.
func (a *API) CreateFeature(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload featurePayload
	if !bindJSON(c, &payload, "invalid feature payload") {
		return
	}

	feature, err := a.sections.CreateFeature(sectionID, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feature)
}

// UpdateFeature updates a feature.
func (a *API) UpdateFeature(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload featurePayload
	if !bindJSON(c, &payload, "invalid feature payload") {
		return
	}

	feature, err := a.sections.UpdateFeature(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feature)
}

// DeleteFeature removes a feature.
func (a *API) DeleteFeature(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.sections.DeleteFeature(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCarouselItem adds a slide to a section.
func (a *API) CreateCarouselItem(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload carouselPayload
	if !bindJSON(c, &payload, "invalid carousel payload") {
		return
	}

	item, err := a.sections.CreateCarouselItem(sectionID, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateCarouselItem applies changes to a slide.
func (a *API) UpdateCarouselItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload carouselPayload
	if !bindJSON(c, &payload, "invalid carousel payload") {
		return
	}

	item, err := a.sections.UpdateCarouselItem(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteCarouselItem removes a slide.
func (a *API) DeleteCarouselItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.sections.DeleteCarouselItem(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
