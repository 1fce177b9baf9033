package service

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/db"
)

// SectionService manages sections and the blocks nested inside them.
type SectionService struct {
	db *gorm.DB
}

// NewSectionService returns a new SectionService instance.
func NewSectionService(gdb *gorm.DB) *SectionService {
	return &SectionService{db: gdb}
}

// LocalizedText bundles a default value with its optional language
// overrides, mirroring the {field, fieldEn, fieldFr} column triple.
type LocalizedText struct {
	Default string
	En      string
	Fr      string
}

// SectionInput carries the fields accepted when creating or updating a section.
type SectionInput struct {
	Name        string
	SectionType string
	Order       int
	Published   *bool

	Title       LocalizedText
	Subtitle    LocalizedText
	Description LocalizedText
	Content     LocalizedText

	BackgroundImage string
	PrimaryImage    string
	VideoURL        string
	VideoThumbnail  string
	CustomData      datatypes.JSON
}

// ContentInput carries the fields of one content block.
type ContentInput struct {
	Title       LocalizedText
	Subtitle    LocalizedText
	Description LocalizedText
	Content     LocalizedText
	ContentType string
	ContentData datatypes.JSON
	Order       int
	Published   *bool
}

// FeatureInput carries the fields of one feature entry.
type FeatureInput struct {
	Title       LocalizedText
	Description LocalizedText
	Icon        string
	IconImage   string
	Image       string
	Color       string
	Order       int
	Published   *bool
}

// CarouselItemInput carries the fields of one carousel slide.
type CarouselItemInput struct {
	Title          LocalizedText
	Description    LocalizedText
	Image          string
	VideoURL       string
	VideoThumbnail string
	Link           string
	Order          int
	Published      *bool
}

// ListByPage returns every section of a page, drafts included, in
// display order.
func (s *SectionService) ListByPage(pageID uint) ([]db.Section, error) {
	var sections []db.Section
	if err := s.db.
		Where("page_id = ?", pageID).
		Order(`"order" asc`).Order("id asc").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// Get fetches one section by id, drafts included.
func (s *SectionService) Get(id uint) (*db.Section, error) {
	var section db.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// Create inserts a section under a page.
func (s *SectionService) Create(pageID uint, input SectionInput) (*db.Section, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("name", "is required")
	}
	sectionType := strings.TrimSpace(input.SectionType)
	if !db.ValidSectionType(sectionType) {
		return nil, validationError("sectionType", "is not a supported section type")
	}
	if err := requireJSONObject("customData", input.CustomData); err != nil {
		return nil, err
	}

	var page db.Page
	if err := s.db.First(&page, pageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	section := db.Section{
		PageID:          page.ID,
		Name:            name,
		SectionType:     sectionType,
		Order:           input.Order,
		Published:       input.Published == nil || *input.Published,
		Title:           input.Title.Default,
		TitleEn:         input.Title.En,
		TitleFr:         input.Title.Fr,
		Subtitle:        input.Subtitle.Default,
		SubtitleEn:      input.Subtitle.En,
		SubtitleFr:      input.Subtitle.Fr,
		Description:     input.Description.Default,
		DescriptionEn:   input.Description.En,
		DescriptionFr:   input.Description.Fr,
		Content:         input.Content.Default,
		ContentEn:       input.Content.En,
		ContentFr:       input.Content.Fr,
		BackgroundImage: strings.TrimSpace(input.BackgroundImage),
		PrimaryImage:    strings.TrimSpace(input.PrimaryImage),
		VideoURL:        strings.TrimSpace(input.VideoURL),
		VideoThumbnail:  strings.TrimSpace(input.VideoThumbnail),
		CustomData:      input.CustomData,
	}
	if err := s.db.Create(&section).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &section, nil
}

// Update overwrites a section's editable fields.
func (s *SectionService) Update(id uint, input SectionInput) (*db.Section, error) {
	var section db.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		section.Name = name
	}
	if sectionType := strings.TrimSpace(input.SectionType); sectionType != "" {
		if !db.ValidSectionType(sectionType) {
			return nil, validationError("sectionType", "is not a supported section type")
		}
		section.SectionType = sectionType
	}
	if err := requireJSONObject("customData", input.CustomData); err != nil {
		return nil, err
	}

	section.Order = input.Order
	if input.Published != nil {
		section.Published = *input.Published
	}
	section.Title = input.Title.Default
	section.TitleEn = input.Title.En
	section.TitleFr = input.Title.Fr
	section.Subtitle = input.Subtitle.Default
	section.SubtitleEn = input.Subtitle.En
	section.SubtitleFr = input.Subtitle.Fr
	section.Description = input.Description.Default
	section.DescriptionEn = input.Description.En
	section.DescriptionFr = input.Description.Fr
	section.Content = input.Content.Default
	section.ContentEn = input.Content.En
	section.ContentFr = input.Content.Fr
	section.BackgroundImage = strings.TrimSpace(input.BackgroundImage)
	section.PrimaryImage = strings.TrimSpace(input.PrimaryImage)
	section.VideoURL = strings.TrimSpace(input.VideoURL)
	section.VideoThumbnail = strings.TrimSpace(input.VideoThumbnail)
	if len(input.CustomData) > 0 {
		section.CustomData = input.CustomData
	}

	if err := s.db.Save(&section).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &section, nil
}

// Delete removes a section and its owned blocks and media associations
// in one transaction. Referenced media rows stay.
func (s *SectionService) Delete(id uint) error {
	var section db.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", section.ID).Delete(&db.Content{}).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", section.ID).Delete(&db.Feature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", section.ID).Delete(&db.CarouselItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", section.ID).Delete(&db.SectionMedia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&section).Error
	})
}

// AttachMedia associates a media asset with a section under a role and
// position. Attaching the same pair again updates the existing row.
func (s *SectionService) AttachMedia(sectionID, mediaID uint, role string, order int) (*db.SectionMedia, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		role = db.MediaRolePrimary
	}
	if !db.ValidMediaRole(role) {
		return nil, validationError("mediaRole", "is not a supported media role")
	}

	var section db.Section
	if err := s.db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	var media db.Media
	if err := s.db.First(&media, mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}

	var link db.SectionMedia
	err := s.db.Where("section_id = ? AND media_id = ? AND media_role = ?", sectionID, mediaID, role).First(&link).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		link = db.SectionMedia{
			SectionID: section.ID,
			MediaID:   media.ID,
			MediaRole: role,
			Order:     order,
		}
		if err := s.db.Create(&link).Error; err != nil {
			return nil, translateDBError(err)
		}
		return &link, nil
	}

	link.Order = order
	if err := s.db.Save(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// DetachMedia removes a section/media association. The media row itself
// is untouched.
func (s *SectionService) DetachMedia(sectionID, mediaID uint) error {
	result := s.db.Where("section_id = ? AND media_id = ?", sectionID, mediaID).Delete(&db.SectionMedia{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

// CreateContent inserts a content block under a section.
func (s *SectionService) CreateContent(sectionID uint, input ContentInput) (*db.Content, error) {
	contentType := strings.TrimSpace(input.ContentType)
	if contentType == "" {
		contentType = db.ContentTypeText
	}
	if !db.ValidContentType(contentType) {
		return nil, validationError("contentType", "is not a supported content type")
	}
	if err := requireJSONObject("contentData", input.ContentData); err != nil {
		return nil, err
	}

	var section db.Section
	if err := s.db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	block := db.Content{
		SectionID:     section.ID,
		Title:         input.Title.Default,
		TitleEn:       input.Title.En,
		TitleFr:       input.Title.Fr,
		Subtitle:      input.Subtitle.Default,
		SubtitleEn:    input.Subtitle.En,
		SubtitleFr:    input.Subtitle.Fr,
		Description:   input.Description.Default,
		DescriptionEn: input.Description.En,
		DescriptionFr: input.Description.Fr,
		Content:       input.Content.Default,
		ContentEn:     input.Content.En,
		ContentFr:     input.Content.Fr,
		ContentType:   contentType,
		ContentData:   input.ContentData,
		Order:         input.Order,
		Published:     input.Published == nil || *input.Published,
	}
	if err := s.db.Create(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

// UpdateContent overwrites a content block.
func (s *SectionService) UpdateContent(id uint, input ContentInput) (*db.Content, error) {
	var block db.Content
	if err := s.db.First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if contentType := strings.TrimSpace(input.ContentType); contentType != "" {
		if !db.ValidContentType(contentType) {
			return nil, validationError("contentType", "is not a supported content type")
		}
		block.ContentType = contentType
	}
	if err := requireJSONObject("contentData", input.ContentData); err != nil {
		return nil, err
	}

	block.Title = input.Title.Default
	block.TitleEn = input.Title.En
	block.TitleFr = input.Title.Fr
	block.Subtitle = input.Subtitle.Default
	block.SubtitleEn = input.Subtitle.En
	block.SubtitleFr = input.Subtitle.Fr
	block.Description = input.Description.Default
	block.DescriptionEn = input.Description.En
	block.DescriptionFr = input.Description.Fr
	block.Content = input.Content.Default
	block.ContentEn = input.Content.En
	block.ContentFr = input.Content.Fr
	if len(input.ContentData) > 0 {
		block.ContentData = input.ContentData
	}
	block.Order = input.Order
	if input.Published != nil {
		block.Published = *input.Published
	}

	if err := s.db.Save(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

// DeleteContent removes a content block.
func (s *SectionService) DeleteContent(id uint) error {
	result := s.db.Delete(&db.Content{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

// CreateFeature inserts a feature under a section. Icon and color are
// opaque presentation tokens and only need to be non-empty.
func (s *SectionService) CreateFeature(sectionID uint, input FeatureInput) (*db.Feature, error) {
	if strings.TrimSpace(input.Title.Default) == "" {
		return nil, validationError("title", "is required")
	}
	if strings.TrimSpace(input.Description.Default) == "" {
		return nil, validationError("description", "is required")
	}
	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		return nil, validationError("icon", "is required")
	}
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = "from-gray-500 to-gray-600"
	}

	var section db.Section
	if err := s.db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	feature := db.Feature{
		SectionID:     section.ID,
		Title:         input.Title.Default,
		TitleEn:       input.Title.En,
		TitleFr:       input.Title.Fr,
		Description:   input.Description.Default,
		DescriptionEn: input.Description.En,
		DescriptionFr: input.Description.Fr,
		Icon:          icon,
		IconImage:     strings.TrimSpace(input.IconImage),
		Image:         strings.TrimSpace(input.Image),
		Color:         color,
		Order:         input.Order,
		Published:     input.Published == nil || *input.Published,
	}
	if err := s.db.Create(&feature).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

// UpdateFeature overwrites a feature entry.
func (s *SectionService) UpdateFeature(id uint, input FeatureInput) (*db.Feature, error) {
	var feature db.Feature
	if err := s.db.First(&feature, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeatureNotFound
		}
		return nil, err
	}

	if title := strings.TrimSpace(input.Title.Default); title != "" {
		feature.Title = title
	}
	if description := strings.TrimSpace(input.Description.Default); description != "" {
		feature.Description = description
	}
	if icon := strings.TrimSpace(input.Icon); icon != "" {
		feature.Icon = icon
	}
	if color := strings.TrimSpace(input.Color); color != "" {
		feature.Color = color
	}
	feature.TitleEn = input.Title.En
	feature.TitleFr = input.Title.Fr
	feature.DescriptionEn = input.Description.En
	feature.DescriptionFr = input.Description.Fr
	feature.IconImage = strings.TrimSpace(input.IconImage)
	feature.Image = strings.TrimSpace(input.Image)
	feature.Order = input.Order
	if input.Published != nil {
		feature.Published = *input.Published
	}

	if err := s.db.Save(&feature).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

// DeleteFeature removes a feature entry.
func (s *SectionService) DeleteFeature(id uint) error {
	result := s.db.Delete(&db.Feature{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeatureNotFound
	}
	return nil
}

// CreateCarouselItem inserts a slide under a section.
func (s *SectionService) CreateCarouselItem(sectionID uint, input CarouselItemInput) (*db.CarouselItem, error) {
	if strings.TrimSpace(input.Title.Default) == "" {
		return nil, validationError("title", "is required")
	}

	var section db.Section
	if err := s.db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	item := db.CarouselItem{
		SectionID:      section.ID,
		Title:          input.Title.Default,
		TitleEn:        input.Title.En,
		TitleFr:        input.Title.Fr,
		Description:    input.Description.Default,
		DescriptionEn:  input.Description.En,
		DescriptionFr:  input.Description.Fr,
		Image:          strings.TrimSpace(input.Image),
		VideoURL:       strings.TrimSpace(input.VideoURL),
		VideoThumbnail: strings.TrimSpace(input.VideoThumbnail),
		Link:           strings.TrimSpace(input.Link),
		Order:          input.Order,
		Published:      input.Published == nil || *input.Published,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCarouselItem applies changes to a slide.
func (s *SectionService) UpdateCarouselItem(id uint, input CarouselItemInput) (*db.CarouselItem, error) {
	var item db.CarouselItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarouselNotFound
		}
		return nil, err
	}

	if title := strings.TrimSpace(input.Title.Default); title != "" {
		item.Title = title
	}
	if description := strings.TrimSpace(input.Description.Default); description != "" {
		item.Description = description
	}
	item.TitleEn = input.Title.En
	item.TitleFr = input.Title.Fr
	item.DescriptionEn = input.Description.En
	item.DescriptionFr = input.Description.Fr
	item.Image = strings.TrimSpace(input.Image)
	item.VideoURL = strings.TrimSpace(input.VideoURL)
	item.VideoThumbnail = strings.TrimSpace(input.VideoThumbnail)
	item.Link = strings.TrimSpace(input.Link)
	item.Order = input.Order
	if input.Published != nil {
		item.Published = *input.Published
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteCarouselItem removes a slide.
func (s *SectionService) DeleteCarouselItem(id uint) error {
	result := s.db.Delete(&db.CarouselItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCarouselNotFound
	}
	return nil
}
