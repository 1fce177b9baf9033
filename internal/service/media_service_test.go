package service

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ngomna/cms/internal/db"
)

func setupMediaServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func newTestMediaService(t *testing.T, gdb *gorm.DB) (*MediaService, string) {
	t.Helper()
	dir := t.TempDir()
	return NewMediaService(gdb, dir, "/uploads", 0), dir
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadStoresImageWithDimensions(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, dir := newTestMediaService(t, gdb)
	media, err := svc.Upload(UploadInput{
		Data:         pngBytes(t, 2, 3),
		OriginalName: "logo.png",
		Mimetype:     "image/png",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if media.MediaType != db.MediaTypeImage {
		t.Fatalf("expected image media type, got %q", media.MediaType)
	}
	if media.Width != 2 || media.Height != 3 {
		t.Fatalf("expected dimensions 2x3, got %dx%d", media.Width, media.Height)
	}
	if media.Alt != "logo.png" {
		t.Fatalf("expected alt defaulted to the original name, got %q", media.Alt)
	}
	if media.Category != "general" {
		t.Fatalf("expected default category, got %q", media.Category)
	}
	if !media.Published {
		t.Fatal("expected uploads to default to published")
	}
	if !strings.HasPrefix(media.Path, "images/") {
		t.Fatalf("expected path under images/, got %q", media.Path)
	}
	if !strings.HasPrefix(media.URL, "/uploads/images/") {
		t.Fatalf("expected url under /uploads/images/, got %q", media.URL)
	}
	if !strings.HasSuffix(media.Filename, ".png") {
		t.Fatalf("expected stored filename to keep the extension, got %q", media.Filename)
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(media.Path))); err != nil {
		t.Fatalf("expected stored file on disk: %v", err)
	}
}

func TestUploadRejectsDisallowedMimetype(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, dir := newTestMediaService(t, gdb)
	_, err := svc.Upload(UploadInput{
		Data:         []byte("PK\x03\x04"),
		OriginalName: "archive.zip",
		Mimetype:     "application/zip",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var count int64
	gdb.Model(&db.Media{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no media rows, found %d", count)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d entries", len(entries))
	}
}

func TestUploadRejectsOversizePayload(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc := NewMediaService(gdb, t.TempDir(), "/uploads", 1<<10)

	_, err := svc.Upload(UploadInput{
		Data:         make([]byte, (1<<10)+1),
		OriginalName: "big.png",
		Mimetype:     "image/png",
	})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected payload too large, got %v", err)
	}

	var count int64
	gdb.Model(&db.Media{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no media rows, found %d", count)
	}
}

func TestUploadRejectsEmptyPayload(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, _ := newTestMediaService(t, gdb)
	_, err := svc.Upload(UploadInput{OriginalName: "empty.png", Mimetype: "image/png"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMediaTypeForMimetype(t *testing.T) {
	tests := []struct {
		mimetype string
		expected string
	}{
		{mimetype: "image/png", expected: db.MediaTypeImage},
		{mimetype: "image/webp", expected: db.MediaTypeImage},
		{mimetype: "video/mp4", expected: db.MediaTypeVideo},
		{mimetype: "audio/mpeg", expected: db.MediaTypeAudio},
		{mimetype: "application/pdf", expected: db.MediaTypeDocument},
		{mimetype: "application/msword", expected: db.MediaTypeDocument},
	}

	for _, tt := range tests {
		t.Run(tt.mimetype, func(t *testing.T) {
			if got := MediaTypeForMimetype(tt.mimetype); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUploadRoutesVideoToVideoSubdir(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, _ := newTestMediaService(t, gdb)
	media, err := svc.Upload(UploadInput{
		Data:         []byte("not really a video"),
		OriginalName: "clip.mp4",
		Mimetype:     "video/mp4",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if media.MediaType != db.MediaTypeVideo {
		t.Fatalf("expected video media type, got %q", media.MediaType)
	}
	if !strings.HasPrefix(media.Path, "videos/") {
		t.Fatalf("expected path under videos/, got %q", media.Path)
	}
	if media.Width != 0 || media.Height != 0 {
		t.Fatalf("expected no dimensions for video, got %dx%d", media.Width, media.Height)
	}
}

func TestListMediaFiltersAndPaginates(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, _ := newTestMediaService(t, gdb)
	for i := 0; i < 3; i++ {
		if _, err := svc.Upload(UploadInput{
			Data:         pngBytes(t, 1, 1),
			OriginalName: "img.png",
			Mimetype:     "image/png",
		}); err != nil {
			t.Fatalf("failed to seed image: %v", err)
		}
	}
	if _, err := svc.Upload(UploadInput{
		Data:         []byte("clip"),
		OriginalName: "clip.mp4",
		Mimetype:     "video/mp4",
	}); err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}

	result, err := svc.List(MediaFilter{MediaType: db.MediaTypeImage, PerPage: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}
	if result.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", result.TotalPages)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items on the first page, got %d", len(result.Items))
	}

	second, err := svc.List(MediaFilter{MediaType: db.MediaTypeImage, PerPage: 2, Page: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(second.Items) != 1 {
		t.Fatalf("expected 1 item on the second page, got %d", len(second.Items))
	}
}

func TestUpdateMediaMetadata(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, _ := newTestMediaService(t, gdb)
	media, err := svc.Upload(UploadInput{
		Data:         pngBytes(t, 1, 1),
		OriginalName: "img.png",
		Mimetype:     "image/png",
	})
	if err != nil {
		t.Fatalf("failed to seed media: %v", err)
	}

	published := false
	updated, err := svc.Update(media.ID, MediaInput{
		Alt:       LocalizedText{Default: "App screenshot", Fr: "Capture d'écran"},
		Category:  "screenshots",
		Published: &published,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Alt != "App screenshot" || updated.AltFr != "Capture d'écran" {
		t.Fatalf("unexpected alt after update: %q / %q", updated.Alt, updated.AltFr)
	}
	if updated.Category != "screenshots" || updated.Published {
		t.Fatalf("unexpected metadata after update: %+v", updated)
	}
	if updated.Filename != media.Filename {
		t.Fatal("expected the stored binary to be immutable")
	}
}

func TestDeleteMediaRemovesRowAssociationsAndFile(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, dir := newTestMediaService(t, gdb)
	media, err := svc.Upload(UploadInput{
		Data:         pngBytes(t, 1, 1),
		OriginalName: "img.png",
		Mimetype:     "image/png",
	})
	if err != nil {
		t.Fatalf("failed to seed media: %v", err)
	}

	page := db.Page{Name: "Home", Slug: "home", URL: "/", PageType: db.PageTypeHome, Published: true}
	if err := gdb.Create(&page).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}
	section := db.Section{PageID: page.ID, Name: "Hero", SectionType: db.SectionTypeHero, Published: true}
	if err := gdb.Create(&section).Error; err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}
	link := db.SectionMedia{SectionID: section.ID, MediaID: media.ID, MediaRole: db.MediaRolePrimary}
	if err := gdb.Create(&link).Error; err != nil {
		t.Fatalf("failed to seed media link: %v", err)
	}

	if err := svc.Delete(media.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	var count int64
	gdb.Model(&db.Media{}).Where("id = ?", media.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected media row removed, found %d", count)
	}
	gdb.Model(&db.SectionMedia{}).Where("media_id = ?", media.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected associations removed, found %d", count)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(media.Path))); !os.IsNotExist(err) {
		t.Fatalf("expected stored file removed, got %v", err)
	}
}

func TestDeleteMediaToleratesMissingFile(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, dir := newTestMediaService(t, gdb)
	media, err := svc.Upload(UploadInput{
		Data:         pngBytes(t, 1, 1),
		OriginalName: "img.png",
		Mimetype:     "image/png",
	})
	if err != nil {
		t.Fatalf("failed to seed media: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, filepath.FromSlash(media.Path))); err != nil {
		t.Fatalf("failed to remove stored file: %v", err)
	}

	if err := svc.Delete(media.ID); err != nil {
		t.Fatalf("expected delete to tolerate a missing file, got %v", err)
	}
}

func TestDeleteMediaUnknownIDNotFound(t *testing.T) {
	gdb, cleanup := setupMediaServiceTestDB(t)
	defer cleanup()

	svc, _ := newTestMediaService(t, gdb)
	if err := svc.Delete(1234); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected media not found, got %v", err)
	}
}
