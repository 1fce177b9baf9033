package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ngomna/cms/internal/db"
	"github.com/ngomna/cms/internal/router"
	"github.com/ngomna/cms/internal/service"
)

type e2eSuite struct {
	handler   http.Handler
	public    httpClient
	admin     httpClient
	baseURL   string
	uploadDir string
	adminPass string
	gdb       *gorm.DB
	home      *db.Page
	menu      *db.Menu
	article   *db.NewsArticle
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)
	suite.login(t)

	t.Run("public endpoints", suite.testPublicEndpoints)
	t.Run("admin apis", suite.testAdminAPIs)
	t.Run("logout", suite.testLogout)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	if err := db.EnsureUser(gdb, "admin", "e2e-secret"); err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}

	pageSvc := service.NewPageService(gdb)
	home, err := pageSvc.Create(service.PageInput{
		Name:     "Home",
		Slug:     "home",
		URL:      "/",
		PageType: db.PageTypeHome,
	})
	if err != nil {
		t.Fatalf("failed to seed home page: %v", err)
	}

	sectionSvc := service.NewSectionService(gdb)
	if _, err := sectionSvc.Create(home.ID, service.SectionInput{
		Name:        "Hero",
		SectionType: db.SectionTypeHero,
		Order:       1,
		Title:       service.LocalizedText{Default: "Welcome to nGomna", Fr: "Bienvenue sur nGomna"},
		Subtitle:    service.LocalizedText{Default: "Government services in one place"},
	}); err != nil {
		t.Fatalf("failed to seed hero section: %v", err)
	}

	menuSvc := service.NewMenuService(gdb)
	menu, err := menuSvc.CreateMenu(service.MenuInput{Title: "Main navigation", MenuType: db.MenuTypeHeader})
	if err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
	if _, err := menuSvc.AddEntry(menu.ID, "Services"); err != nil {
		t.Fatalf("failed to seed menu entry: %v", err)
	}

	collectionSvc := service.NewCollectionService(gdb)
	article, err := collectionSvc.CreateNews(service.NewsInput{
		Title:    service.LocalizedText{Default: "nGomna 3.0 released", Fr: "nGomna 3.0 est disponible"},
		Excerpt:  service.LocalizedText{Default: "Faster payslips and notifications."},
		Category: service.LocalizedText{Default: "product"},
	})
	if err != nil {
		t.Fatalf("failed to seed news article: %v", err)
	}
	if _, err := collectionSvc.CreateFAQ(service.FAQInput{
		Question: service.LocalizedText{Default: "How do I download my payslip?", Fr: "Comment télécharger mon bulletin ?"},
		Answer:   service.LocalizedText{Default: "Open the payslips tab and tap download."},
		Category: "payslips",
	}); err != nil {
		t.Fatalf("failed to seed faq: %v", err)
	}
	if _, err := collectionSvc.CreateReview(service.ReviewInput{
		Name:    "Aisha",
		Rating:  5,
		Comment: service.LocalizedText{Default: "Saves me a trip to the ministry."},
	}); err != nil {
		t.Fatalf("failed to seed review: %v", err)
	}

	uploadDir := t.TempDir()
	engine := router.SetupRouter(gdb, router.Options{
		SessionSecret: "e2e-session-secret",
		UploadDir:     uploadDir,
		UploadURLPath: "/uploads",
	})

	return &e2eSuite{
		handler:   engine,
		public:    newLocalClient(engine, false),
		admin:     newLocalClient(engine, true),
		baseURL:   "http://example.test",
		uploadDir: uploadDir,
		adminPass: "e2e-secret",
		gdb:       gdb,
		home:      home,
		menu:      menu,
		article:   article,
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	resp := s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/login", map[string]interface{}{
		"username": "admin",
		"password": s.adminPass,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed, status %d: %s", resp.StatusCode, readBody(t, resp))
	}
}

func (s *e2eSuite) testPublicEndpoints(t *testing.T) {
	t.Helper()

	checkJSON := func(name, path, expect string, code int) {
		t.Helper()
		resp := s.mustRequest(t, s.public, http.MethodGet, path, nil, nil)
		defer resp.Body.Close()
		if resp.StatusCode != code {
			t.Fatalf("%s: expected status %d, got %d", name, code, resp.StatusCode)
		}
		body := readBody(t, resp)
		if expect != "" && !strings.Contains(body, expect) {
			t.Fatalf("%s: response does not contain %q: %s", name, expect, body)
		}
	}

	checkJSON("home page", "/api/pages/home", "Welcome to nGomna", http.StatusOK)
	checkJSON("home page in french", "/api/pages/home?lang=fr", "Bienvenue sur nGomna", http.StatusOK)
	checkJSON("hero sections", "/api/sections/type/herosection?pageId="+idStr(s.home.ID), "Welcome to nGomna", http.StatusOK)
	checkJSON("header menu", "/api/menus/header", "Services", http.StatusOK)
	checkJSON("news", "/api/news", "nGomna 3.0 released", http.StatusOK)
	checkJSON("news in french", "/api/news?lang=fr", "nGomna 3.0 est disponible", http.StatusOK)
	checkJSON("faqs", "/api/faqs", "download my payslip", http.StatusOK)
	checkJSON("reviews", "/api/reviews", "Aisha", http.StatusOK)
	checkJSON("carousel", "/api/carousel", `"items"`, http.StatusOK)
	checkJSON("unknown page", "/api/pages/missing", "", http.StatusNotFound)

	resp := s.mustRequest(t, s.public, http.MethodGet, "/ping", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "pong") {
		t.Fatalf("ping: unexpected body %q", body)
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/admin/api/pages", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("admin api without session: expected 401, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testAdminAPIs(t *testing.T) {
	t.Helper()

	resp := s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/pages", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list pages expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/pages", map[string]interface{}{
		"name": "Payslips",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create page expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var page db.Page
	decodeJSON(t, resp, &page)
	if page.ID == 0 || page.Slug != "payslips" {
		t.Fatalf("unexpected created page: %+v", page)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/pages/"+idStr(page.ID)+"/sections", map[string]interface{}{
		"name":        "Guide",
		"sectionType": "content",
		"title":       "Reading your payslip",
		"titleFr":     "Lire votre bulletin",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create section expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var section db.Section
	decodeJSON(t, resp, &section)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/sections/"+idStr(section.ID)+"/contents", map[string]interface{}{
		"content":     "Your **gross pay** appears first.",
		"contentType": "markdown",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create content expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/sections/"+idStr(section.ID)+"/features", map[string]interface{}{
		"title": "Instant download",
		"icon":  "Download",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create feature expected 201, got %d", resp.StatusCode)
	}

	// Triad lifecycle: add, rename by label, delete by label.
	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/menus/"+idStr(s.menu.ID)+"/entries", map[string]interface{}{
		"label": "Pensions",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add menu entry expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var triad struct {
		MenuItem *db.MenuItem `json:"menuItem"`
		Link     *db.Link     `json:"link"`
		Page     *db.Page     `json:"page"`
	}
	decodeJSON(t, resp, &triad)
	if triad.Page == nil || triad.Page.URL != "/pensions" {
		t.Fatalf("unexpected triad page: %+v", triad.Page)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/admin/api/menu-items/label/Pensions", map[string]interface{}{
		"label": "Retraites",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rename menu entry expected 200, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	decodeJSON(t, resp, &triad)
	if triad.Page.URL != "/retraites" || triad.Link.URL != "/retraites" || triad.MenuItem.URL != "/retraites" {
		t.Fatalf("expected renamed triad urls, got %q %q %q", triad.Page.URL, triad.Link.URL, triad.MenuItem.URL)
	}

	resp = s.mustRequest(t, s.admin, http.MethodDelete, "/admin/api/menu-items/label/Retraites", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete menu entry expected 204, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/news", map[string]interface{}{
		"title":    "Maintenance window",
		"excerpt":  "The service pauses briefly on Sunday.",
		"category": "operations",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create news expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var created db.NewsArticle
	decodeJSON(t, resp, &created)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/admin/api/news/"+idStr(created.ID), map[string]interface{}{
		"title":    "Maintenance window",
		"excerpt":  "The service pauses briefly on Sunday night.",
		"category": "operations",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update news expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodDelete, "/admin/api/news/"+idStr(created.ID), nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete news expected 204, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/reviews", map[string]interface{}{
		"name":    "Paul",
		"rating":  9,
		"comment": "Out of range rating",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out-of-range rating expected 400, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/faqs", map[string]interface{}{
		"question": "Is the app free?",
		"answer":   "Yes, entirely.",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create faq expected 201, got %d", resp.StatusCode)
	}

	media := s.uploadTestImage(t)
	if media.MediaType != db.MediaTypeImage || media.Width != 4 || media.Height != 4 {
		t.Fatalf("unexpected uploaded media: %+v", media)
	}
	if _, err := os.Stat(filepath.Join(s.uploadDir, filepath.FromSlash(media.Path))); err != nil {
		t.Fatalf("expected stored file on disk: %v", err)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/media", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list media expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, media.Filename) {
		t.Fatalf("media listing missing uploaded file: %s", body)
	}

	resp = s.mustRequest(t, s.admin, http.MethodDelete, "/admin/api/media/"+idStr(media.ID), nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete media expected 204, got %d", resp.StatusCode)
	}
	if _, err := os.Stat(filepath.Join(s.uploadDir, filepath.FromSlash(media.Path))); !os.IsNotExist(err) {
		t.Fatalf("expected stored file removed, got %v", err)
	}

	resp = s.mustRequest(t, s.admin, http.MethodDelete, "/admin/api/pages/"+idStr(page.ID), nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete page expected 204, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testLogout(t *testing.T) {
	t.Helper()

	resp := s.mustRequest(t, s.admin, http.MethodPost, "/admin/logout", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/pages", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("admin api after logout expected 401, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) uploadTestImage(t *testing.T) db.Media {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 60, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, "flag.png"))
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(buf.Bytes()); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	if err := writer.WriteField("alt", "Flag"); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	headers := map[string]string{"Content-Type": writer.FormDataContentType()}
	resp := s.mustRequest(t, s.admin, http.MethodPost, "/admin/api/media", body, headers)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload expected 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}

	var media db.Media
	decodeJSON(t, resp, &media)
	return media
}

func (s *e2eSuite) mustRequest(t *testing.T, client httpClient, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request %s %s: %v", method, path, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, client httpClient, method, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return s.mustRequest(t, client, method, path, bytes.NewReader(data), headers)
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	body := readBody(t, resp)
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("failed to decode json: %v\nbody=%s", err, body)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(data)
}

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
