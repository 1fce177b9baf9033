package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/db"
)

// CollectionService manages the flat content collections: news
// articles, reviews and FAQ entries.
type CollectionService struct {
	db *gorm.DB
}

// NewCollectionService returns a new CollectionService instance.
func NewCollectionService(gdb *gorm.DB) *CollectionService {
	return &CollectionService{db: gdb}
}

// NewsInput carries the fields of one news article.
type NewsInput struct {
	Title    LocalizedText
	Excerpt  LocalizedText
	Content  LocalizedText
	Category LocalizedText

	Icon           string
	Image          string
	Images         datatypes.JSON
	VideoURL       string
	VideoThumbnail string
	ExternalLink   string
	Slug           string

	Featured    *bool
	Published   *bool
	PublishedAt *time.Time
}

// ReviewInput carries the fields of one review.
type ReviewInput struct {
	Name      string
	Username  string
	Avatar    string
	Rating    int
	Comment   LocalizedText
	Verified  *bool
	Published *bool
}

// FAQInput carries the fields of one FAQ entry.
type FAQInput struct {
	Question  LocalizedText
	Answer    LocalizedText
	Category  string
	Order     int
	Published *bool
}

// CreateNews inserts a news article. The slug defaults to a
// slugification of the title; duplicates surface as conflicts.
func (s *CollectionService) CreateNews(input NewsInput) (*db.NewsArticle, error) {
	title := strings.TrimSpace(input.Title.Default)
	if title == "" {
		return nil, validationError("title", "is required")
	}
	if strings.TrimSpace(input.Excerpt.Default) == "" {
		return nil, validationError("excerpt", "is required")
	}
	category := strings.TrimSpace(input.Category.Default)
	if category == "" {
		return nil, validationError("category", "is required")
	}

	slug := Slugify(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = "Zap"
	}
	publishedAt := time.Now()
	if input.PublishedAt != nil {
		publishedAt = *input.PublishedAt
	}

	article := db.NewsArticle{
		Title:          title,
		TitleEn:        input.Title.En,
		TitleFr:        input.Title.Fr,
		Excerpt:        input.Excerpt.Default,
		ExcerptEn:      input.Excerpt.En,
		ExcerptFr:      input.Excerpt.Fr,
		Content:        input.Content.Default,
		ContentEn:      input.Content.En,
		ContentFr:      input.Content.Fr,
		Category:       category,
		CategoryEn:     input.Category.En,
		CategoryFr:     input.Category.Fr,
		Icon:           icon,
		Image:          strings.TrimSpace(input.Image),
		Images:         input.Images,
		VideoURL:       strings.TrimSpace(input.VideoURL),
		VideoThumbnail: strings.TrimSpace(input.VideoThumbnail),
		Featured:       input.Featured != nil && *input.Featured,
		Published:      input.Published == nil || *input.Published,
		PublishedAt:    publishedAt,
		ExternalLink:   strings.TrimSpace(input.ExternalLink),
		Slug:           slug,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &article, nil
}

// UpdateNews overwrites a news article.
func (s *CollectionService) UpdateNews(id uint, input NewsInput) (*db.NewsArticle, error) {
	var article db.NewsArticle
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	if title := strings.TrimSpace(input.Title.Default); title != "" {
		article.Title = title
	}
	if excerpt := strings.TrimSpace(input.Excerpt.Default); excerpt != "" {
		article.Excerpt = excerpt
	}
	if category := strings.TrimSpace(input.Category.Default); category != "" {
		article.Category = category
	}
	if slug := Slugify(input.Slug); slug != "" {
		article.Slug = slug
	}
	if icon := strings.TrimSpace(input.Icon); icon != "" {
		article.Icon = icon
	}
	article.TitleEn = input.Title.En
	article.TitleFr = input.Title.Fr
	article.ExcerptEn = input.Excerpt.En
	article.ExcerptFr = input.Excerpt.Fr
	article.Content = input.Content.Default
	article.ContentEn = input.Content.En
	article.ContentFr = input.Content.Fr
	article.CategoryEn = input.Category.En
	article.CategoryFr = input.Category.Fr
	article.Image = strings.TrimSpace(input.Image)
	if len(input.Images) > 0 {
		article.Images = input.Images
	}
	article.VideoURL = strings.TrimSpace(input.VideoURL)
	article.VideoThumbnail = strings.TrimSpace(input.VideoThumbnail)
	article.ExternalLink = strings.TrimSpace(input.ExternalLink)
	if input.Featured != nil {
		article.Featured = *input.Featured
	}
	if input.Published != nil {
		article.Published = *input.Published
	}
	if input.PublishedAt != nil {
		article.PublishedAt = *input.PublishedAt
	}

	if err := s.db.Save(&article).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &article, nil
}

// DeleteNews removes a news article.
func (s *CollectionService) DeleteNews(id uint) error {
	result := s.db.Delete(&db.NewsArticle{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// CreateReview inserts a review. Ratings outside [1,5] are rejected.
func (s *CollectionService) CreateReview(input ReviewInput) (*db.Review, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("name", "is required")
	}
	if strings.TrimSpace(input.Comment.Default) == "" {
		return nil, validationError("comment", "is required")
	}
	if input.Rating < db.RatingMin || input.Rating > db.RatingMax {
		return nil, validationError("rating", "must be between 1 and 5")
	}

	review := db.Review{
		Name:        name,
		Username:    strings.TrimSpace(input.Username),
		Avatar:      strings.TrimSpace(input.Avatar),
		Rating:      input.Rating,
		Comment:     input.Comment.Default,
		CommentEn:   input.Comment.En,
		CommentFr:   input.Comment.Fr,
		Verified:    input.Verified != nil && *input.Verified,
		Published:   input.Published == nil || *input.Published,
		PublishedAt: time.Now(),
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview overwrites a review.
func (s *CollectionService) UpdateReview(id uint, input ReviewInput) (*db.Review, error) {
	var review db.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if input.Rating != 0 {
		if input.Rating < db.RatingMin || input.Rating > db.RatingMax {
			return nil, validationError("rating", "must be between 1 and 5")
		}
		review.Rating = input.Rating
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		review.Name = name
	}
	if comment := strings.TrimSpace(input.Comment.Default); comment != "" {
		review.Comment = comment
	}
	review.Username = strings.TrimSpace(input.Username)
	review.Avatar = strings.TrimSpace(input.Avatar)
	review.CommentEn = input.Comment.En
	review.CommentFr = input.Comment.Fr
	if input.Verified != nil {
		review.Verified = *input.Verified
	}
	if input.Published != nil {
		review.Published = *input.Published
	}

	if err := s.db.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review.
func (s *CollectionService) DeleteReview(id uint) error {
	result := s.db.Delete(&db.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// CreateFAQ inserts a FAQ entry.
func (s *CollectionService) CreateFAQ(input FAQInput) (*db.FAQ, error) {
	if strings.TrimSpace(input.Question.Default) == "" {
		return nil, validationError("question", "is required")
	}
	if strings.TrimSpace(input.Answer.Default) == "" {
		return nil, validationError("answer", "is required")
	}

	faq := db.FAQ{
		Question:   input.Question.Default,
		QuestionEn: input.Question.En,
		QuestionFr: input.Question.Fr,
		Answer:     input.Answer.Default,
		AnswerEn:   input.Answer.En,
		AnswerFr:   input.Answer.Fr,
		Category:   strings.TrimSpace(input.Category),
		Order:      input.Order,
		Published:  input.Published == nil || *input.Published,
	}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

// UpdateFAQ overwrites a FAQ entry.
func (s *CollectionService) UpdateFAQ(id uint, input FAQInput) (*db.FAQ, error) {
	var faq db.FAQ
	if err := s.db.First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFAQNotFound
		}
		return nil, err
	}

	if question := strings.TrimSpace(input.Question.Default); question != "" {
		faq.Question = question
	}
	if answer := strings.TrimSpace(input.Answer.Default); answer != "" {
		faq.Answer = answer
	}
	faq.QuestionEn = input.Question.En
	faq.QuestionFr = input.Question.Fr
	faq.AnswerEn = input.Answer.En
	faq.AnswerFr = input.Answer.Fr
	faq.Category = strings.TrimSpace(input.Category)
	faq.Order = input.Order
	if input.Published != nil {
		faq.Published = *input.Published
	}

	if err := s.db.Save(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

// DeleteFAQ removes a FAQ entry.
func (s *CollectionService) DeleteFAQ(id uint) error {
	result := s.db.Delete(&db.FAQ{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}
