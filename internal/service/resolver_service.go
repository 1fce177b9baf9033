package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/db"
	"github.com/ngomna/cms/internal/locale"
)

// ContentResolver assembles read-only, localized, ordered content trees
// from the normalized schema. It never mutates fetched rows and never
// fails on empty results: missing translations fall back and empty
// collections resolve to empty lists.
type ContentResolver struct {
	db *gorm.DB
}

// NewContentResolver returns a resolver bound to a storage handle.
func NewContentResolver(gdb *gorm.DB) *ContentResolver {
	return &ContentResolver{db: gdb}
}

// PageTree is a fully resolved page: localized, publish-filtered and
// ordered, ready to hand to a rendering client.
type PageTree struct {
	ID              uint          `json:"id"`
	Name            string        `json:"name"`
	Slug            string        `json:"slug"`
	URL             string        `json:"url"`
	PageType        string        `json:"pageType"`
	MetaTitle       string        `json:"metaTitle"`
	MetaDescription string        `json:"metaDescription"`
	Language        string        `json:"language"`
	Sections        []SectionView `json:"sections"`
}

// SectionView is one resolved section with its nested blocks.
type SectionView struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	SectionType     string             `json:"sectionType"`
	Order           int                `json:"order"`
	Title           string             `json:"title"`
	Subtitle        string             `json:"subtitle"`
	Description     string             `json:"description"`
	Content         string             `json:"content"`
	BackgroundImage string             `json:"backgroundImage"`
	PrimaryImage    string             `json:"primaryImage"`
	VideoURL        string             `json:"videoUrl"`
	VideoThumbnail  string             `json:"videoThumbnail"`
	CustomData      json.RawMessage    `json:"customData,omitempty"`
	Contents        []ContentView      `json:"contents"`
	Features        []FeatureView      `json:"features"`
	CarouselItems   []CarouselItemView `json:"carouselItems"`
	Media           []MediaView        `json:"media"`
}

// ContentView is a resolved content block. Body carries the localized
// source text; HTML carries the rendered, sanitized form for html and
// markdown blocks.
type ContentView struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Description string          `json:"description"`
	Body        string          `json:"body"`
	HTML        string          `json:"html"`
	ContentType string          `json:"contentType"`
	ContentData json.RawMessage `json:"contentData,omitempty"`
	Order       int             `json:"order"`
}

// FeatureView is a resolved feature. Icon and color are opaque
// presentation tokens.
type FeatureView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconImage   string `json:"iconImage"`
	Image       string `json:"image"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
}

// CarouselItemView is a resolved carousel slide.
type CarouselItemView struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	VideoURL       string `json:"videoUrl"`
	VideoThumbnail string `json:"videoThumbnail"`
	Link           string `json:"link"`
	Order          int    `json:"order"`
}

// MediaView joins a shared media asset with its role inside one section.
type MediaView struct {
	ID          uint   `json:"id"`
	URL         string `json:"url"`
	Mimetype    string `json:"mimetype"`
	MediaType   string `json:"mediaType"`
	Role        string `json:"role"`
	Order       int    `json:"order"`
	Alt         string `json:"alt"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// NewsItemView is a resolved news article.
type NewsItemView struct {
	ID             uint            `json:"id"`
	Title          string          `json:"title"`
	Excerpt        string          `json:"excerpt"`
	Content        string          `json:"content"`
	Category       string          `json:"category"`
	Icon           string          `json:"icon"`
	Image          string          `json:"image"`
	Images         json.RawMessage `json:"images,omitempty"`
	VideoURL       string          `json:"videoUrl"`
	VideoThumbnail string          `json:"videoThumbnail"`
	Featured       bool            `json:"featured"`
	Date           time.Time       `json:"date"`
	Link           string          `json:"link"`
	Slug           string          `json:"slug"`
}

// ReviewView is a resolved testimonial.
type ReviewView struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Verified bool      `json:"verified"`
	Date     time.Time `json:"date"`
}

// FAQView is a resolved question/answer pair.
type FAQView struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// MenuView is a resolved navigation menu with its published entries.
type MenuView struct {
	ID       uint           `json:"id"`
	Title    string         `json:"title"`
	MenuType string         `json:"menuType"`
	Items    []MenuItemView `json:"items"`
	Links    []LinkView     `json:"links"`
}

// MenuItemView is one resolved navigation entry.
type MenuItemView struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// LinkView is one resolved menu link.
type LinkView struct {
	ID       uint   `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	LinkType string `json:"linkType"`
	Order    int    `json:"order"`
}

// publishedByOrder scopes a query to published rows in display order,
// ids breaking ties deterministically.
func publishedByOrder(tx *gorm.DB) *gorm.DB {
	return tx.Where("published = ?", true).Order(`"order" asc`).Order("id asc")
}

// joinByOrder sorts section/media join rows; publish state lives on the
// media side and is filtered there.
func joinByOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order(`"order" asc`).Order("id asc")
}

// ResolvePage assembles the full localized tree for a published page.
// The whole tree is eager-loaded in one logical call.
func (r *ContentResolver) ResolvePage(slug, language string) (*PageTree, error) {
	var page db.Page
	err := r.db.
		Where("slug = ? AND published = ?", slug, true).
		Preload("Sections", publishedByOrder).
		Preload("Sections.Contents", publishedByOrder).
		Preload("Sections.Features", publishedByOrder).
		Preload("Sections.CarouselItems", publishedByOrder).
		Preload("Sections.MediaLinks", joinByOrder).
		Preload("Sections.MediaLinks.Media", "published = ?", true).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	tree := &PageTree{
		ID:              page.ID,
		Name:            page.Name,
		Slug:            page.Slug,
		URL:             page.URL,
		PageType:        page.PageType,
		MetaTitle:       page.MetaTitle,
		MetaDescription: page.MetaDescription,
		Language:        language,
		Sections:        make([]SectionView, 0, len(page.Sections)),
	}
	for i := range page.Sections {
		tree.Sections = append(tree.Sections, resolveSection(&page.Sections[i], language))
	}
	return tree, nil
}

// ResolveSection resolves a single published section with its nested
// blocks and media.
func (r *ContentResolver) ResolveSection(id uint, language string) (*SectionView, error) {
	var section db.Section
	err := r.db.
		Where("published = ?", true).
		Preload("Contents", publishedByOrder).
		Preload("Features", publishedByOrder).
		Preload("CarouselItems", publishedByOrder).
		Preload("MediaLinks", joinByOrder).
		Preload("MediaLinks.Media", "published = ?", true).
		First(&section, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	view := resolveSection(&section, language)
	return &view, nil
}

// ListSectionsByType resolves every published section of one layout
// type, optionally limited to a single page.
func (r *ContentResolver) ListSectionsByType(sectionType string, pageID uint, language string) ([]SectionView, error) {
	query := r.db.
		Where("section_type = ?", sectionType).
		Preload("Contents", publishedByOrder).
		Preload("Features", publishedByOrder).
		Preload("CarouselItems", publishedByOrder).
		Preload("MediaLinks", joinByOrder).
		Preload("MediaLinks.Media", "published = ?", true)
	if pageID != 0 {
		query = query.Where("page_id = ?", pageID)
	}

	var sections []db.Section
	if err := publishedByOrder(query).Find(&sections).Error; err != nil {
		return nil, err
	}

	views := make([]SectionView, 0, len(sections))
	for i := range sections {
		views = append(views, resolveSection(&sections[i], language))
	}
	return views, nil
}

// NewsFilter narrows the published news listing.
type NewsFilter struct {
	Category     string
	FeaturedOnly bool
}

// ListNews returns published news articles, featured first, newest first.
func (r *ContentResolver) ListNews(language string, filter NewsFilter) ([]NewsItemView, error) {
	query := r.db.Where("published = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}

	var articles []db.NewsArticle
	if err := query.
		Order("featured desc").
		Order("published_at desc").
		Order("id asc").
		Find(&articles).Error; err != nil {
		return nil, err
	}

	items := make([]NewsItemView, 0, len(articles))
	for _, a := range articles {
		items = append(items, NewsItemView{
			ID:             a.ID,
			Title:          locale.Resolve(language, a.Title, a.TitleEn, a.TitleFr),
			Excerpt:        locale.Resolve(language, a.Excerpt, a.ExcerptEn, a.ExcerptFr),
			Content:        locale.Resolve(language, a.Content, a.ContentEn, a.ContentFr),
			Category:       locale.Resolve(language, a.Category, a.CategoryEn, a.CategoryFr),
			Icon:           a.Icon,
			Image:          a.Image,
			Images:         validatedJSON(a.Images),
			VideoURL:       a.VideoURL,
			VideoThumbnail: a.VideoThumbnail,
			Featured:       a.Featured,
			Date:           a.PublishedAt,
			Link:           a.ExternalLink,
			Slug:           a.Slug,
		})
	}
	return items, nil
}

// ListReviews returns published testimonials, newest first.
func (r *ContentResolver) ListReviews(language string) ([]ReviewView, error) {
	var reviews []db.Review
	if err := r.db.
		Where("published = ?", true).
		Order("published_at desc").
		Order("id asc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	views := make([]ReviewView, 0, len(reviews))
	for _, rv := range reviews {
		views = append(views, ReviewView{
			ID:       rv.ID,
			Name:     rv.Name,
			Username: rv.Username,
			Avatar:   rv.Avatar,
			Rating:   rv.Rating,
			Comment:  locale.Resolve(language, rv.Comment, rv.CommentEn, rv.CommentFr),
			Verified: rv.Verified,
			Date:     rv.PublishedAt,
		})
	}
	return views, nil
}

// ListFAQs returns published FAQ entries in display order, optionally
// limited to one category.
func (r *ContentResolver) ListFAQs(language, category string) ([]FAQView, error) {
	query := r.db
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var faqs []db.FAQ
	if err := publishedByOrder(query).Find(&faqs).Error; err != nil {
		return nil, err
	}

	views := make([]FAQView, 0, len(faqs))
	for _, f := range faqs {
		views = append(views, FAQView{
			ID:       f.ID,
			Question: locale.Resolve(language, f.Question, f.QuestionEn, f.QuestionFr),
			Answer:   locale.Resolve(language, f.Answer, f.AnswerEn, f.AnswerFr),
			Category: f.Category,
			Order:    f.Order,
		})
	}
	return views, nil
}

// ListCarousel returns every published carousel slide in display order.
func (r *ContentResolver) ListCarousel(language string) ([]CarouselItemView, error) {
	var items []db.CarouselItem
	if err := publishedByOrder(r.db).Find(&items).Error; err != nil {
		return nil, err
	}

	views := make([]CarouselItemView, 0, len(items))
	for _, item := range items {
		views = append(views, CarouselItemView{
			ID:             item.ID,
			Title:          locale.Resolve(language, item.Title, item.TitleEn, item.TitleFr),
			Description:    locale.Resolve(language, item.Description, item.DescriptionEn, item.DescriptionFr),
			Image:          item.Image,
			VideoURL:       item.VideoURL,
			VideoThumbnail: item.VideoThumbnail,
			Link:           item.Link,
			Order:          item.Order,
		})
	}
	return views, nil
}

// ResolveMenu returns the published menu for a placement with its
// ordered entries, or NotFound when no such menu exists.
func (r *ContentResolver) ResolveMenu(menuType, language string) (*MenuView, error) {
	var menu db.Menu
	err := r.db.
		Where("menu_type = ? AND published = ?", menuType, true).
		Preload("Items", publishedByOrder).
		Preload("Links", publishedByOrder).
		First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	view := &MenuView{
		ID:       menu.ID,
		Title:    menu.Title,
		MenuType: menu.MenuType,
		Items:    make([]MenuItemView, 0, len(menu.Items)),
		Links:    make([]LinkView, 0, len(menu.Links)),
	}
	for _, item := range menu.Items {
		view.Items = append(view.Items, MenuItemView{
			ID:    item.ID,
			Label: locale.Resolve(language, item.Label, item.LabelEn, item.LabelFr),
			URL:   item.URL,
			Order: item.Order,
		})
	}
	for _, link := range menu.Links {
		view.Links = append(view.Links, LinkView{
			ID:       link.ID,
			Label:    locale.Resolve(language, link.Label, link.LabelEn, link.LabelFr),
			URL:      link.URL,
			LinkType: link.LinkType,
			Order:    link.Order,
		})
	}
	return view, nil
}

func resolveSection(section *db.Section, language string) SectionView {
	view := SectionView{
		ID:              section.ID,
		Name:            section.Name,
		SectionType:     section.SectionType,
		Order:           section.Order,
		Title:           locale.Resolve(language, section.Title, section.TitleEn, section.TitleFr),
		Subtitle:        locale.Resolve(language, section.Subtitle, section.SubtitleEn, section.SubtitleFr),
		Description:     locale.Resolve(language, section.Description, section.DescriptionEn, section.DescriptionFr),
		Content:         locale.Resolve(language, section.Content, section.ContentEn, section.ContentFr),
		BackgroundImage: section.BackgroundImage,
		PrimaryImage:    section.PrimaryImage,
		VideoURL:        section.VideoURL,
		VideoThumbnail:  section.VideoThumbnail,
		CustomData:      validatedJSON(section.CustomData),
		Contents:        make([]ContentView, 0, len(section.Contents)),
		Features:        make([]FeatureView, 0, len(section.Features)),
		CarouselItems:   make([]CarouselItemView, 0, len(section.CarouselItems)),
		Media:           make([]MediaView, 0, len(section.MediaLinks)),
	}

	for _, block := range section.Contents {
		body := locale.Resolve(language, block.Content, block.ContentEn, block.ContentFr)
		view.Contents = append(view.Contents, ContentView{
			ID:          block.ID,
			Title:       locale.Resolve(language, block.Title, block.TitleEn, block.TitleFr),
			Subtitle:    locale.Resolve(language, block.Subtitle, block.SubtitleEn, block.SubtitleFr),
			Description: locale.Resolve(language, block.Description, block.DescriptionEn, block.DescriptionFr),
			Body:        body,
			HTML:        renderContent(block.ContentType, body),
			ContentType: block.ContentType,
			ContentData: validatedJSON(block.ContentData),
			Order:       block.Order,
		})
	}

	for _, feature := range section.Features {
		view.Features = append(view.Features, FeatureView{
			ID:          feature.ID,
			Title:       locale.Resolve(language, feature.Title, feature.TitleEn, feature.TitleFr),
			Description: locale.Resolve(language, feature.Description, feature.DescriptionEn, feature.DescriptionFr),
			Icon:        feature.Icon,
			IconImage:   feature.IconImage,
			Image:       feature.Image,
			Color:       feature.Color,
			Order:       feature.Order,
		})
	}

	for _, item := range section.CarouselItems {
		view.CarouselItems = append(view.CarouselItems, CarouselItemView{
			ID:             item.ID,
			Title:          locale.Resolve(language, item.Title, item.TitleEn, item.TitleFr),
			Description:    locale.Resolve(language, item.Description, item.DescriptionEn, item.DescriptionFr),
			Image:          item.Image,
			VideoURL:       item.VideoURL,
			VideoThumbnail: item.VideoThumbnail,
			Link:           item.Link,
			Order:          item.Order,
		})
	}

	for _, ml := range section.MediaLinks {
		// The media preload filters unpublished assets; their join rows
		// stay behind with an empty Media and are skipped here.
		if ml.Media.ID == 0 {
			continue
		}
		view.Media = append(view.Media, MediaView{
			ID:          ml.Media.ID,
			URL:         ml.Media.URL,
			Mimetype:    ml.Media.Mimetype,
			MediaType:   ml.Media.MediaType,
			Role:        ml.MediaRole,
			Order:       ml.Order,
			Alt:         locale.Resolve(language, ml.Media.Alt, ml.Media.AltEn, ml.Media.AltFr),
			Caption:     locale.Resolve(language, ml.Media.Caption, ml.Media.CaptionEn, ml.Media.CaptionFr),
			Description: locale.Resolve(language, ml.Description, ml.DescriptionEn, ml.DescriptionFr),
			Width:       ml.Media.Width,
			Height:      ml.Media.Height,
		})
	}

	return view
}
