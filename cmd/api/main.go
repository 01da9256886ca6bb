package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notion-gcal-sync/config"
	dbsqlite "notion-gcal-sync/config/sqlite"
	_ "notion-gcal-sync/docs" // Swagger docs
	"notion-gcal-sync/internal/app"
	"notion-gcal-sync/internal/httpserver"
	"notion-gcal-sync/internal/middleware"
	"notion-gcal-sync/pkg/log"
)

// @title       Notion to Google Calendar Sync API
// @description Mirrors Notion data source events into a Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey InternalKey
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notion-gcal-sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := cfg.ValidateSync(); err != nil {
		logger.Fatalf(ctx, "Invalid configuration: %v", err)
	}

	// 3. Storage
	db, err := dbsqlite.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer dbsqlite.Disconnect(ctx, db)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. Domains
	domains := app.New(logger, cfg, db)
	credUC, uc := domains.Credential, domains.Sync
	logger.Infof(ctx, "Syncing %d data sources into calendar %s", len(cfg.Notion.DataSourceIDs), cfg.GoogleCalendar.CalendarID)

	// 5. Optional in-process schedule
	if cfg.Sync.Schedule != "" {
		sched, err := newScheduler(logger, uc, cfg.Sync.Schedule, cfg.Sync.RunTimeout)
		if err != nil {
			logger.Fatalf(ctx, "Invalid sync.schedule %q: %v", cfg.Sync.Schedule, err)
		}
		sched.Start()
		defer sched.Stop()
		logger.Infof(ctx, "Scheduled sync: %s", cfg.Sync.Schedule)
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		DB:                db,
		SyncUseCase:       uc,
		CredentialUseCase: credUC,
		Identity:          cfg.Sync.Identity,
		RunTimeout:        cfg.Sync.RunTimeout,
		Middleware: middleware.Config{
			InternalKey:     cfg.InternalAuth.APIKey,
			AuthScheme:      cfg.InternalAuth.Scheme,
			WebhookSecret:   cfg.Webhook.Secret,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
