package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init opens the SQLite database and runs additive migrations for the
// content schema. databasePath falls back to ngomna.db when empty.
// Tables are never dropped or recreated here.
func Init(databasePath string) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "ngomna.db"
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate creates missing tables and columns and backfills rows left
// behind by older schema revisions.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&User{},
		&Page{},
		&Section{},
		&Content{},
		&Media{},
		&SectionMedia{},
		&Menu{},
		&MenuItem{},
		&Link{},
		&Feature{},
		&NewsArticle{},
		&Review{},
		&FAQ{},
		&CarouselItem{},
	); err != nil {
		return err
	}

	// Rows imported from the legacy schema carry no media type or
	// publication timestamp.
	if err := gdb.Model(&Media{}).
		Where("media_type = '' OR media_type IS NULL").
		Update("media_type", MediaTypeImage).Error; err != nil {
		return err
	}
	if err := gdb.Model(&NewsArticle{}).
		Where("published_at IS NULL OR published_at = ?", time.Time{}).
		Update("published_at", gorm.Expr("created_at")).Error; err != nil {
		return err
	}
	if err := gdb.Model(&Review{}).
		Where("published_at IS NULL OR published_at = ?", time.Time{}).
		Update("published_at", gorm.Expr("created_at")).Error; err != nil {
		return err
	}

	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
