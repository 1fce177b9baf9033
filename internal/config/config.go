package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig bundles the runtime settings of the CMS backend.
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabasePath   string
	SessionSecret  string
	GinMode        string
	UploadDir      string
	UploadURLPath  string
	MaxUploadBytes int64
	AdminUserName  string
	AdminPassword  string
}

// Load reads the application configuration from environment variables,
// providing safe defaults for missing entries.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "ngomna.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "ngomna-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/uploads"
	}

	maxUploadBytes := int64(0)
	if raw := strings.TrimSpace(os.Getenv("MAX_UPLOAD_BYTES")); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxUploadBytes = parsed
		}
	}
	if maxUploadBytes == 0 {
		maxUploadBytes = 50 << 20
	}

	adminUserName := strings.TrimSpace(os.Getenv("ADMIN_USER"))
	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		DatabasePath:   databasePath,
		SessionSecret:  sessionSecret,
		GinMode:        ginMode,
		UploadDir:      uploadDir,
		UploadURLPath:  uploadURLPath,
		MaxUploadBytes: maxUploadBytes,
		AdminUserName:  adminUserName,
		AdminPassword:  adminPassword,
	}
}
