package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ngomna/cms/internal/config"
	"github.com/ngomna/cms/internal/db"
	"github.com/ngomna/cms/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Bootstrap the first admin account from the environment.
	if err := db.EnsureUser(gdb, cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	r := router.SetupRouter(gdb, router.Options{
		SessionSecret:  cfg.SessionSecret,
		UploadDir:      cfg.UploadDir,
		UploadURLPath:  cfg.UploadURLPath,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
