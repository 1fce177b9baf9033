package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "DATABASE_PATH", "SESSION_SECRET", "GIN_MODE", "UPLOAD_DIR", "UPLOAD_URL_PATH", "MAX_UPLOAD_BYTES", "ADMIN_USER", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "ngomna.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.UploadDir != "uploads" || cfg.UploadURLPath != "/uploads" {
		t.Fatalf("expected default upload settings, got %q %q", cfg.UploadDir, cfg.UploadURLPath)
	}
	if cfg.MaxUploadBytes != 50<<20 {
		t.Fatalf("expected default upload ceiling, got %d", cfg.MaxUploadBytes)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected release mode default, got %q", cfg.GinMode)
	}
	if cfg.AdminUserName != "" || cfg.AdminPassword != "" {
		t.Fatal("expected no default admin credentials")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_PATH", "/tmp/cms.db")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg := Load()

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr from port, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "/tmp/cms.db" {
		t.Fatalf("expected database path override, got %q", cfg.DatabasePath)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Fatalf("expected upload ceiling override, got %d", cfg.MaxUploadBytes)
	}
	if cfg.AdminUserName != "admin" || cfg.AdminPassword != "s3cret" {
		t.Fatal("expected admin credentials from environment")
	}
}

func TestLoadIgnoresInvalidUploadCeiling(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()
	if cfg.MaxUploadBytes != 50<<20 {
		t.Fatalf("expected fallback ceiling, got %d", cfg.MaxUploadBytes)
	}
}
