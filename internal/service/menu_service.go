package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ngomna/cms/internal/db"
)

// MenuService manages navigation menus and the MenuItem/Link/Page
// triads hanging off them. A triad's label and URLs are coupled: every
// label change regenerates the page URL and propagates it to all three
// rows inside one transaction, so concurrent edits either fully apply
// or not at all.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService returns a new MenuService instance.
func NewMenuService(gdb *gorm.DB) *MenuService {
	return &MenuService{db: gdb}
}

// Triad is the coupled MenuItem/Link/Page record set returned by the
// mutation operations.
type Triad struct {
	MenuItem *db.MenuItem `json:"menuItem,omitempty"`
	Link     *db.Link     `json:"link,omitempty"`
	Page     *db.Page     `json:"page,omitempty"`
}

// MenuInput carries the fields accepted when creating or updating a menu.
type MenuInput struct {
	Title     string
	MenuType  string
	Published *bool
}

// EntryInput carries localized overrides and placement for a menu
// entry. The default label is managed through SetLabel operations.
type EntryInput struct {
	LabelEn   string
	LabelFr   string
	Order     int
	Published *bool
}

// ListMenus returns every menu with its entries, drafts included.
func (s *MenuService) ListMenus() ([]db.Menu, error) {
	var menus []db.Menu
	if err := s.db.Preload("Items").Preload("Links").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// CreateMenu inserts a menu. Duplicate titles surface as conflicts.
func (s *MenuService) CreateMenu(input MenuInput) (*db.Menu, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title", "is required")
	}
	menuType := strings.TrimSpace(input.MenuType)
	if menuType == "" {
		menuType = db.MenuTypeHeader
	}
	if !db.ValidMenuType(menuType) {
		return nil, validationError("menuType", "is not a supported menu type")
	}

	menu := db.Menu{
		Title:     title,
		MenuType:  menuType,
		Published: input.Published == nil || *input.Published,
	}
	if err := s.db.Create(&menu).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &menu, nil
}

// DeleteMenu removes a menu together with its items and links in one
// transaction. Pages backing the entries are left in place.
func (s *MenuService) DeleteMenu(id uint) error {
	var menu db.Menu
	if err := s.db.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&db.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&db.Link{}).Error; err != nil {
			return err
		}
		return tx.Delete(&menu).Error
	})
}

// ListItems returns the items of one menu, drafts included.
func (s *MenuService) ListItems(menuID uint) ([]db.MenuItem, error) {
	var items []db.MenuItem
	if err := s.db.
		Where("menu_id = ?", menuID).
		Order(`"order" asc`).Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListLinks returns the links of one menu, drafts included.
func (s *MenuService) ListLinks(menuID uint) ([]db.Link, error) {
	var links []db.Link
	if err := s.db.
		Where("menu_id = ?", menuID).
		Order(`"order" asc`).Order("id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// AddEntry creates a full triad under a menu: a Page whose URL is
// derived from the label, plus the Link and MenuItem pointing at it.
// All three rows are created atomically.
func (s *MenuService) AddEntry(menuID uint, label string) (*Triad, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, validationError("label", "is required")
	}
	slug := Slugify(label)
	if slug == "" {
		return nil, validationError("label", "must contain at least one word")
	}

	var menu db.Menu
	if err := s.db.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	triad := &Triad{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		page := db.Page{
			Name:      label,
			Slug:      slug,
			URL:       "/" + slug,
			PageType:  db.PageTypeService,
			Published: true,
		}
		if err := tx.Create(&page).Error; err != nil {
			return err
		}

		link := db.Link{
			MenuID:   menu.ID,
			Label:    label,
			URL:      page.URL,
			LinkType: db.LinkTypeInternal,
			PageID:   &page.ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}

		item := db.MenuItem{
			MenuID: menu.ID,
			Label:  label,
			URL:    page.URL,
			PageID: &page.ID,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		triad.Page = &page
		triad.Link = &link
		triad.MenuItem = &item
		return nil
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return triad, nil
}

// SetMenuItemLabel renames a menu item and regenerates the triad URLs.
func (s *MenuService) SetMenuItemLabel(id uint, newLabel string) (*Triad, error) {
	var item db.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return s.renameTriad(&item, newLabel)
}

// SetMenuItemLabelByLabel renames a menu item addressed by its current
// label and regenerates the triad URLs.
func (s *MenuService) SetMenuItemLabelByLabel(oldLabel, newLabel string) (*Triad, error) {
	var item db.MenuItem
	if err := s.db.Where("label = ?", strings.TrimSpace(oldLabel)).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return s.renameTriad(&item, newLabel)
}

// SetLinkLabel renames a link and regenerates the triad URLs.
func (s *MenuService) SetLinkLabel(id uint, newLabel string) (*Triad, error) {
	var link db.Link
	if err := s.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	if link.PageID == nil {
		// Standalone link, nothing to propagate.
		newLabel = strings.TrimSpace(newLabel)
		if newLabel == "" {
			return nil, validationError("label", "is required")
		}
		link.Label = newLabel
		if err := s.db.Save(&link).Error; err != nil {
			return nil, err
		}
		return &Triad{Link: &link}, nil
	}

	var item db.MenuItem
	err := s.db.Where("page_id = ?", *link.PageID).First(&item).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.renameTriadRows(nil, &link, *link.PageID, newLabel)
	}
	return s.renameTriadRows(&item, &link, *link.PageID, newLabel)
}

// renameTriad propagates a menu item rename across its page and link.
func (s *MenuService) renameTriad(item *db.MenuItem, newLabel string) (*Triad, error) {
	if item.PageID == nil {
		newLabel = strings.TrimSpace(newLabel)
		if newLabel == "" {
			return nil, validationError("label", "is required")
		}
		item.Label = newLabel
		if err := s.db.Save(item).Error; err != nil {
			return nil, err
		}
		return &Triad{MenuItem: item}, nil
	}

	var link db.Link
	err := s.db.Where("page_id = ?", *item.PageID).First(&link).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.renameTriadRows(item, nil, *item.PageID, newLabel)
	}
	return s.renameTriadRows(item, &link, *item.PageID, newLabel)
}

// renameTriadRows applies the derived-state rule: the page URL is
// re-slugged from the new label and written to every triad row inside
// one transaction. A failure on any row rolls back all of them.
func (s *MenuService) renameTriadRows(item *db.MenuItem, link *db.Link, pageID uint, newLabel string) (*Triad, error) {
	newLabel = strings.TrimSpace(newLabel)
	if newLabel == "" {
		return nil, validationError("label", "is required")
	}
	slug := Slugify(newLabel)
	if slug == "" {
		return nil, validationError("label", "must contain at least one word")
	}

	triad := &Triad{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var page db.Page
		if err := tx.First(&page, pageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPageNotFound
			}
			return err
		}

		page.Name = newLabel
		page.Slug = slug
		page.URL = "/" + slug
		if err := tx.Save(&page).Error; err != nil {
			return err
		}

		if link != nil {
			link.Label = newLabel
			link.URL = page.URL
			if err := tx.Save(link).Error; err != nil {
				return err
			}
		}
		if item != nil {
			item.Label = newLabel
			item.URL = page.URL
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		triad.Page = &page
		triad.Link = link
		triad.MenuItem = item
		return nil
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return triad, nil
}

// UpdateEntry applies localized overrides and placement to a menu item
// without touching the derived label/URL coupling.
func (s *MenuService) UpdateEntry(id uint, input EntryInput) (*db.MenuItem, error) {
	var item db.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	item.LabelEn = strings.TrimSpace(input.LabelEn)
	item.LabelFr = strings.TrimSpace(input.LabelFr)
	item.Order = input.Order
	if input.Published != nil {
		item.Published = *input.Published
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMenuItemByLabel removes the menu item with that label together
// with its owned page, the page's sections and their blocks, and every
// navigation row still pointing at the page, atomically.
func (s *MenuService) DeleteMenuItemByLabel(label string) error {
	var item db.MenuItem
	if err := s.db.Where("label = ?", strings.TrimSpace(label)).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if item.PageID == nil {
			return tx.Delete(&item).Error
		}
		if err := tx.Where("page_id = ?", *item.PageID).Delete(&db.Link{}).Error; err != nil {
			return err
		}
		if err := tx.Where("page_id = ?", *item.PageID).Delete(&db.MenuItem{}).Error; err != nil {
			return err
		}
		return deletePageCascade(tx, *item.PageID)
	})
}

// DeleteLinkByLabel removes the link with that label together with its
// owned page, the page's sections and their blocks, and every
// navigation row still pointing at the page, atomically.
func (s *MenuService) DeleteLinkByLabel(label string) error {
	var link db.Link
	if err := s.db.Where("label = ?", strings.TrimSpace(label)).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLinkNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if link.PageID == nil {
			return tx.Delete(&link).Error
		}
		if err := tx.Where("page_id = ?", *link.PageID).Delete(&db.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("page_id = ?", *link.PageID).Delete(&db.Link{}).Error; err != nil {
			return err
		}
		return deletePageCascade(tx, *link.PageID)
	})
}
