package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ngomna/cms/internal/service"
)

type newsPayload struct {
	Title      string `json:"title"`
	TitleEn    string `json:"titleEn"`
	TitleFr    string `json:"titleFr"`
	Excerpt    string `json:"excerpt"`
	ExcerptEn  string `json:"excerptEn"`
	ExcerptFr  string `json:"excerptFr"`
	Content    string `json:"content"`
	ContentEn  string `json:"contentEn"`
	ContentFr  string `json:"contentFr"`
	Category   string `json:"category"`
	CategoryEn string `json:"categoryEn"`
	CategoryFr string `json:"categoryFr"`

	Icon           string         `json:"icon"`
	Image          string         `json:"image"`
	Images         datatypes.JSON `json:"images"`
	VideoURL       string         `json:"videoUrl"`
	VideoThumbnail string         `json:"videoThumbnail"`
	ExternalLink   string         `json:"externalLink"`
	Slug           string         `json:"slug"`

	Featured    *bool      `json:"featured"`
	Published   *bool      `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (p newsPayload) toInput() service.NewsInput {
	return service.NewsInput{
		Title:          service.LocalizedText{Default: p.Title, En: p.TitleEn, Fr: p.TitleFr},
		Excerpt:        service.LocalizedText{Default: p.Excerpt, En: p.ExcerptEn, Fr: p.ExcerptFr},
		Content:        service.LocalizedText{Default: p.Content, En: p.ContentEn, Fr: p.ContentFr},
		Category:       service.LocalizedText{Default: p.Category, En: p.CategoryEn, Fr: p.CategoryFr},
		Icon:           p.Icon,
		Image:          p.Image,
		Images:         p.Images,
		VideoURL:       p.VideoURL,
		VideoThumbnail: p.VideoThumbnail,
		ExternalLink:   p.ExternalLink,
		Slug:           p.Slug,
		Featured:       p.Featured,
		Published:      p.Published,
		PublishedAt:    p.PublishedAt,
	}
}

type reviewPayload struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CommentEn string `json:"commentEn"`
	CommentFr string `json:"commentFr"`
	Verified  *bool  `json:"verified"`
	Published *bool  `json:"published"`
}

func (p reviewPayload) toInput() service.ReviewInput {
	return service.ReviewInput{
		Name:      p.Name,
		Username:  p.Username,
		Avatar:    p.Avatar,
		Rating:    p.Rating,
		Comment:   service.LocalizedText{Default: p.Comment, En: p.CommentEn, Fr: p.CommentFr},
		Verified:  p.Verified,
		Published: p.Published,
	}
}

type faqPayload struct {
	Question   string `json:"question"`
	QuestionEn string `json:"questionEn"`
	QuestionFr string `json:"questionFr"`
	Answer     string `json:"answer"`
	AnswerEn   string `json:"answerEn"`
	AnswerFr   string `json:"answerFr"`
	Category   string `json:"category"`
	Order      int    `json:"order"`
	Published  *bool  `json:"published"`
}

func (p faqPayload) toInput() service.FAQInput {
	return service.FAQInput{
		Question:  service.LocalizedText{Default: p.Question, En: p.QuestionEn, Fr: p.QuestionFr},
		Answer:    service.LocalizedText{Default: p.Answer, En: p.AnswerEn, Fr: p.AnswerFr},
		Category:  p.Category,
		Order:     p.Order,
		Published: p.Published,
	}
}

// CreateNews creates a news article.
func (a *API) CreateNews(c *gin.Context) {
	var payload newsPayload
	if !bindJSON(c, &payload, "invalid news payload") {
		return
	}

	article, err := a.collections.CreateNews(payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// UpdateNews updates a news article.
func (a *API) UpdateNews(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload newsPayload
	if !bindJSON(c, &payload, "invalid news payload") {
		return
	}

	article, err := a.collections.UpdateNews(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteNews removes a news article.
func (a *API) DeleteNews(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.collections.DeleteNews(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateReview creates a review.
func (a *API) CreateReview(c *gin.Context) {
	var payload reviewPayload
	if !bindJSON(c, &payload, "invalid review payload") {
		return
	}

	review, err := a.collections.CreateReview(payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// UpdateReview updates a review.
func (a *API) UpdateReview(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload reviewPayload
	if !bindJSON(c, &payload, "invalid review payload") {
		return
	}

	review, err := a.collections.UpdateReview(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review.
func (a *API) DeleteReview(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.collections.DeleteReview(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateFAQ creates a FAQ entry.
func (a *API) CreateFAQ(c *gin.Context) {
	var payload faqPayload
	if !bindJSON(c, &payload, "invalid faq payload") {
		return
	}

	faq, err := a.collections.CreateFAQ(payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ updates a FAQ entry.
func (a *API) UpdateFAQ(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload faqPayload
	if !bindJSON(c, &payload, "invalid faq payload") {
		return
	}

	faq, err := a.collections.UpdateFAQ(id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, faq)
}

// DeleteFAQ removes a FAQ entry.
func (a *API) DeleteFAQ(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.collections.DeleteFAQ(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
