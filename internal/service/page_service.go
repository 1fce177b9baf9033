package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/db"
)

// PageService handles page CRUD for the admin surface.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// PageInput carries the fields accepted when creating or updating a page.
type PageInput struct {
	Name            string
	Slug            string
	URL             string
	PageType        string
	Published       *bool
	MetaTitle       string
	MetaDescription string
}

// ListAll returns every page, drafts included, for the admin dashboard.
func (s *PageService) ListAll() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("created_at desc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Get fetches one page by id, drafts included.
func (s *PageService) Get(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Create inserts a new page. The URL defaults to /<slug> and the page
// type to service. Duplicate slugs or URLs surface as conflicts.
func (s *PageService) Create(input PageInput) (*db.Page, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("name", "is required")
	}

	slug := Slugify(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, validationError("slug", "is required")
	}

	url := strings.TrimSpace(input.URL)
	if url == "" {
		url = "/" + slug
	}

	pageType := strings.TrimSpace(input.PageType)
	if pageType == "" {
		pageType = db.PageTypeService
	}
	if !db.ValidPageType(pageType) {
		return nil, validationError("pageType", "is not a supported page type")
	}

	page := db.Page{
		Name:            name,
		Slug:            slug,
		URL:             url,
		PageType:        pageType,
		Published:       input.Published == nil || *input.Published,
		MetaTitle:       strings.TrimSpace(input.MetaTitle),
		MetaDescription: strings.TrimSpace(input.MetaDescription),
	}
	if err := s.db.Create(&page).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &page, nil
}

// Update modifies an existing page.
func (s *PageService) Update(id uint, input PageInput) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		page.Name = name
	}
	if slug := Slugify(input.Slug); slug != "" {
		page.Slug = slug
	}
	if url := strings.TrimSpace(input.URL); url != "" {
		page.URL = url
	}
	if pageType := strings.TrimSpace(input.PageType); pageType != "" {
		if !db.ValidPageType(pageType) {
			return nil, validationError("pageType", "is not a supported page type")
		}
		page.PageType = pageType
	}
	if input.Published != nil {
		page.Published = *input.Published
	}
	page.MetaTitle = strings.TrimSpace(input.MetaTitle)
	page.MetaDescription = strings.TrimSpace(input.MetaDescription)

	if err := s.db.Save(&page).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &page, nil
}

// Delete removes a page and cascades to its sections and their owned
// blocks and media associations. Shared media rows stay. Navigation
// rows pointing at the page are detached, not deleted. The whole
// cascade is one transaction: either everything goes or nothing does.
func (s *PageService) Delete(id uint) error {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.MenuItem{}).Where("page_id = ?", page.ID).Update("page_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&db.Link{}).Where("page_id = ?", page.ID).Update("page_id", nil).Error; err != nil {
			return err
		}
		return deletePageCascade(tx, page.ID)
	})
}

// deletePageCascade removes a page row together with its sections and
// their owned blocks, slides and media associations. Shared media rows
// stay. Navigation rows are the caller's responsibility.
func deletePageCascade(tx *gorm.DB, pageID uint) error {
	sectionIDs := tx.Model(&db.Section{}).Select("id").Where("page_id = ?", pageID)

	if err := tx.Where("section_id IN (?)", sectionIDs).Delete(&db.Content{}).Error; err != nil {
		return err
	}
	if err := tx.Where("section_id IN (?)", sectionIDs).Delete(&db.Feature{}).Error; err != nil {
		return err
	}
	if err := tx.Where("section_id IN (?)", sectionIDs).Delete(&db.CarouselItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("section_id IN (?)", sectionIDs).Delete(&db.SectionMedia{}).Error; err != nil {
		return err
	}
	if err := tx.Where("page_id = ?", pageID).Delete(&db.Section{}).Error; err != nil {
		return err
	}
	return tx.Delete(&db.Page{}, pageID).Error
}
