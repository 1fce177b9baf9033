package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ngomna/cms/internal/auth"
	"github.com/ngomna/cms/internal/db"
)

func setupHandlerTestAPI(t *testing.T) (*API, *gorm.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	api := NewAPI(gdb, auth.NewDBAuthenticator(gdb), t.TempDir(), "/uploads", 0)
	return api, gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestGetSectionsByTypeRejectsUnknownType(t *testing.T) {
	api, _, cleanup := setupHandlerTestAPI(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/sections/type/banner", nil)
	c.Params = gin.Params{{Key: "sectionType", Value: "banner"}}

	api.GetSectionsByType(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetSectionsByTypeRejectsBadPageID(t *testing.T) {
	api, _, cleanup := setupHandlerTestAPI(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/sections/type/herosection?pageId=abc", nil)
	c.Params = gin.Params{{Key: "sectionType", Value: db.SectionTypeHero}}

	api.GetSectionsByType(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetMenuRejectsUnknownPlacement(t *testing.T) {
	api, _, cleanup := setupHandlerTestAPI(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/menus/topbar", nil)
	c.Params = gin.Params{{Key: "menuType", Value: "topbar"}}

	api.GetMenu(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetNewsEmptyListIsNotAnError(t *testing.T) {
	api, _, cleanup := setupHandlerTestAPI(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/news", nil)

	api.GetNews(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		News []json.RawMessage `json:"news"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.News == nil {
		t.Fatal("expected an empty list, got null")
	}
}

func TestGetFAQsLocalizedFromQuery(t *testing.T) {
	api, gdb, cleanup := setupHandlerTestAPI(t)
	defer cleanup()

	faq := db.FAQ{Question: "How?", QuestionFr: "Comment ?", Answer: "Like so", AnswerFr: "Comme ça", Order: 1, Published: true}
	if err := gdb.Create(&faq).Error; err != nil {
		t.Fatalf("failed to seed faq: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/faqs?lang=fr", nil)

	api.GetFAQs(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		FAQs []struct {
			Question string `json:"question"`
		} `json:"faqs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.FAQs) != 1 || body.FAQs[0].Question != "Comment ?" {
		t.Fatalf("expected localized faq, got %+v", body.FAQs)
	}
}

func TestRequestLanguageDefaultsToEnglish(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/news", nil)

	if got := requestLanguage(c); got != "en" {
		t.Fatalf("expected en default, got %q", got)
	}
}

func TestRequestLanguageQueryBeatsHeader(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/news?lang=en", nil)
	c.Request.Header.Set("Accept-Language", "fr")

	if got := requestLanguage(c); got != "en" {
		t.Fatalf("expected query to win, got %q", got)
	}
}
