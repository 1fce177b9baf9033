package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error taxonomy shared by every service. Handlers map these to HTTP
// statuses with errors.Is; entity-specific errors below wrap them so
// both granularities stay checkable.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrIntegrity       = errors.New("integrity failure")
)

var (
	ErrPageNotFound     = fmt.Errorf("page %w", ErrNotFound)
	ErrSectionNotFound  = fmt.Errorf("section %w", ErrNotFound)
	ErrContentNotFound  = fmt.Errorf("content block %w", ErrNotFound)
	ErrFeatureNotFound  = fmt.Errorf("feature %w", ErrNotFound)
	ErrCarouselNotFound = fmt.Errorf("carousel item %w", ErrNotFound)
	ErrMediaNotFound    = fmt.Errorf("media %w", ErrNotFound)
	ErrMenuNotFound     = fmt.Errorf("menu %w", ErrNotFound)
	ErrMenuItemNotFound = fmt.Errorf("menu item %w", ErrNotFound)
	ErrLinkNotFound     = fmt.Errorf("link %w", ErrNotFound)
	ErrNewsNotFound     = fmt.Errorf("news article %w", ErrNotFound)
	ErrReviewNotFound   = fmt.Errorf("review %w", ErrNotFound)
	ErrFAQNotFound      = fmt.Errorf("faq %w", ErrNotFound)
)

// validationError names the offending field.
func validationError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

// translateDBError maps storage errors onto the taxonomy. Unique index
// violations on slug/url/title become conflicts.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
