package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"gorm.io/gorm"

	_ "golang.org/x/image/webp"

	"github.com/ngomna/cms/internal/db"
)

// DefaultMaxUploadBytes is the upload size ceiling (50 MB).
const DefaultMaxUploadBytes = 50 << 20

// allowedMimetypes is the upload allow-list. Anything else is rejected
// before a file or row is created.
var allowedMimetypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
	"audio/mpeg": true,
	"audio/wav":  true,
	"audio/ogg":  true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// MediaService stores uploaded binaries on disk and their metadata rows
// in the database.
type MediaService struct {
	db        *gorm.DB
	uploadDir string
	uploadURL string
	maxBytes  int64
}

// NewMediaService returns a media service writing files below uploadDir
// and serving them below uploadURL. maxBytes caps accepted uploads and
// falls back to DefaultMaxUploadBytes when not positive.
func NewMediaService(gdb *gorm.DB, uploadDir, uploadURL string, maxBytes int64) *MediaService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &MediaService{
		db:        gdb,
		uploadDir: uploadDir,
		uploadURL: strings.TrimRight(uploadURL, "/"),
		maxBytes:  maxBytes,
	}
}

// UploadInput carries one upload: the binary payload plus its
// descriptive metadata.
type UploadInput struct {
	Data         []byte
	OriginalName string
	Mimetype     string
	Alt          LocalizedText
	Caption      LocalizedText
	Category     string
	Published    *bool
}

// MediaFilter narrows admin media listings.
type MediaFilter struct {
	MediaType string
	Category  string
	Published *bool
	Page      int
	PerPage   int
}

// MediaListResult aggregates a paginated media listing.
type MediaListResult struct {
	Items      []db.Media
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// MediaInput carries editable media metadata.
type MediaInput struct {
	Alt       LocalizedText
	Caption   LocalizedText
	Category  string
	Published *bool
}

// MediaTypeForMimetype classifies a MIME type into a media kind by
// prefix; everything that is not image, video or audio is a document.
func MediaTypeForMimetype(mimetype string) string {
	switch {
	case strings.HasPrefix(mimetype, "image/"):
		return db.MediaTypeImage
	case strings.HasPrefix(mimetype, "video/"):
		return db.MediaTypeVideo
	case strings.HasPrefix(mimetype, "audio/"):
		return db.MediaTypeAudio
	default:
		return db.MediaTypeDocument
	}
}

// Upload validates, stores and records one binary asset. The stored
// filename is timestamp-plus-uuid so concurrent uploads never collide.
func (s *MediaService) Upload(input UploadInput) (*db.Media, error) {
	mimetype := strings.ToLower(strings.TrimSpace(input.Mimetype))
	if !allowedMimetypes[mimetype] {
		return nil, validationError("mimetype", "is not allowed")
	}
	if int64(len(input.Data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: upload exceeds %d bytes", ErrPayloadTooLarge, s.maxBytes)
	}
	if len(input.Data) == 0 {
		return nil, validationError("file", "is empty")
	}

	mediaType := MediaTypeForMimetype(mimetype)
	subDir := mediaSubDir(mediaType)

	fullDir := filepath.Join(s.uploadDir, subDir)
	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(input.OriginalName))
	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	relPath := filepath.ToSlash(filepath.Join(subDir, filename))

	if err := os.WriteFile(filepath.Join(fullDir, filename), input.Data, 0o644); err != nil {
		return nil, err
	}

	width, height := 0, 0
	if mediaType == db.MediaTypeImage {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(input.Data)); err == nil {
			width, height = cfg.Width, cfg.Height
		}
	}

	alt := input.Alt
	if strings.TrimSpace(alt.Default) == "" {
		alt.Default = input.OriginalName
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "general"
	}

	media := db.Media{
		Filename:     filename,
		OriginalName: input.OriginalName,
		Mimetype:     mimetype,
		Size:         int64(len(input.Data)),
		Path:         relPath,
		URL:          s.uploadURL + "/" + relPath,
		Alt:          alt.Default,
		AltEn:        alt.En,
		AltFr:        alt.Fr,
		Caption:      input.Caption.Default,
		CaptionEn:    input.Caption.En,
		CaptionFr:    input.Caption.Fr,
		MediaType:    mediaType,
		Category:     category,
		Width:        width,
		Height:       height,
		Published:    input.Published == nil || *input.Published,
	}
	if err := s.db.Create(&media).Error; err != nil {
		// Keep disk and database consistent when the insert fails.
		os.Remove(filepath.Join(fullDir, filename))
		return nil, err
	}
	return &media, nil
}

// List returns media rows matching the filter with pagination.
func (s *MediaService) List(filter MediaFilter) (MediaListResult, error) {
	result := MediaListResult{
		Page:    normalizePage(filter.Page),
		PerPage: normalizePerPage(filter.PerPage, 20),
	}

	query := s.db.Model(&db.Media{})
	if mediaType := strings.TrimSpace(filter.MediaType); mediaType != "" {
		query = query.Where("media_type = ?", mediaType)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}
	result.TotalPages = calculateTotalPages(result.Total, result.PerPage)
	offset := (result.Page - 1) * result.PerPage

	if err := query.
		Order("created_at desc").Order("id asc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&result.Items).Error; err != nil {
		return result, err
	}
	return result, nil
}

// Get fetches one media row by id.
func (s *MediaService) Get(id uint) (*db.Media, error) {
	var media db.Media
	if err := s.db.First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

// Update modifies media metadata; the stored binary is immutable.
func (s *MediaService) Update(id uint, input MediaInput) (*db.Media, error) {
	var media db.Media
	if err := s.db.First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}

	if alt := strings.TrimSpace(input.Alt.Default); alt != "" {
		media.Alt = alt
	}
	media.AltEn = input.Alt.En
	media.AltFr = input.Alt.Fr
	media.Caption = input.Caption.Default
	media.CaptionEn = input.Caption.En
	media.CaptionFr = input.Caption.Fr
	if category := strings.TrimSpace(input.Category); category != "" {
		media.Category = category
	}
	if input.Published != nil {
		media.Published = *input.Published
	}

	if err := s.db.Save(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// Delete removes the media row, its section associations and the
// stored file. An already-missing file is not an error.
func (s *MediaService) Delete(id uint) error {
	var media db.Media
	if err := s.db.First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("media_id = ?", media.ID).Delete(&db.SectionMedia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&media).Error
	})
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(media.Path))); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func mediaSubDir(mediaType string) string {
	switch mediaType {
	case db.MediaTypeImage:
		return "images"
	case db.MediaTypeVideo:
		return "videos"
	case db.MediaTypeAudio:
		return "audio"
	default:
		return "documents"
	}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePerPage(perPage, fallback int) int {
	if perPage <= 0 {
		return fallback
	}
	return perPage
}

func calculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
