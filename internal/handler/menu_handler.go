package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngomna/cms/internal/service"
)

type menuPayload struct {
	Title     string `json:"title"`
	MenuType  string `json:"menuType"`
	Published *bool  `json:"published"`
}

type labelPayload struct {
	Label string `json:"label"`
}

type entryPayload struct {
	LabelEn   string `json:"labelEn"`
	LabelFr   string `json:"labelFr"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

// ListMenus returns every menu with its entries.
func (a *API) ListMenus(c *gin.Context) {
	menus, err := a.menus.ListMenus()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// CreateMenu creates a menu.
func (a *API) CreateMenu(c *gin.Context) {
	var payload menuPayload
	if !bindJSON(c, &payload, "invalid menu payload") {
		return
	}

	menu, err := a.menus.CreateMenu(service.MenuInput{
		Title:     payload.Title,
		MenuType:  payload.MenuType,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, menu)
}

// DeleteMenu deletes a menu with its items and links.
func (a *API) DeleteMenu(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.menus.DeleteMenu(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMenuItems returns the items of one menu.
func (a *API) ListMenuItems(c *gin.Context) {
	menuID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := a.menus.ListItems(menuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ListMenuLinks returns the links of one menu.
func (a *API) ListMenuLinks(c *gin.Context) {
	menuID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	links, err := a.menus.ListLinks(menuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// AddMenuEntry creates a full MenuItem/Link/Page triad under a menu
// from a label; the page URL is derived from the label.
func (a *API) AddMenuEntry(c *gin.Context) {
	menuID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload labelPayload
	if !bindJSON(c, &payload, "invalid label payload") {
		return
	}

	triad, err := a.menus.AddEntry(menuID, payload.Label)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, triad)
}

// RenameMenuItem renames a menu item by id, regenerating the triad URLs.
func (a *API) RenameMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload labelPayload
	if !bindJSON(c, &payload, "invalid label payload") {
		return
	}

	triad, err := a.menus.SetMenuItemLabel(id, payload.Label)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, triad)
}

// RenameMenuItemByLabel renames a menu item addressed by its current label.
func (a *API) RenameMenuItemByLabel(c *gin.Context) {
	var payload labelPayload
	if !bindJSON(c, &payload, "invalid label payload") {
		return
	}

	triad, err := a.menus.SetMenuItemLabelByLabel(c.Param("label"), payload.Label)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, triad)
}

// RenameLink renames a link by id, regenerating the triad URLs.
func (a *API) RenameLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload labelPayload
	if !bindJSON(c, &payload, "invalid label payload") {
		return
	}

	triad, err := a.menus.SetLinkLabel(id, payload.Label)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, triad)
}

// UpdateMenuEntry applies localized overrides and placement to a menu item.
func (a *API) UpdateMenuEntry(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload entryPayload
	if !bindJSON(c, &payload, "invalid entry payload") {
		return
	}

	item, err := a.menus.UpdateEntry(id, service.EntryInput{
		LabelEn:   payload.LabelEn,
		LabelFr:   payload.LabelFr,
		Order:     payload.Order,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItemByLabel deletes the named menu item with its owned
// page and dependent links.
func (a *API) DeleteMenuItemByLabel(c *gin.Context) {
	if err := a.menus.DeleteMenuItemByLabel(c.Param("label")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteLinkByLabel deletes the named link with its owned page and
// dependent menu items.
func (a *API) DeleteLinkByLabel(c *gin.Context) {
	if err := a.menus.DeleteLinkByLabel(c.Param("label")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
