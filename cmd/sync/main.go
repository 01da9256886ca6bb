package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notion-gcal-sync/config"
	dbsqlite "notion-gcal-sync/config/sqlite"
	"notion-gcal-sync/internal/app"
	"notion-gcal-sync/pkg/log"
)

// main runs a single reconciliation pass and exits non-zero on failure, for
// use from an external scheduler such as cron or a Kubernetes CronJob.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sync failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateSync(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Sync.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Sync.RunTimeout)
		defer cancel()
	}

	db, err := dbsqlite.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer dbsqlite.Disconnect(ctx, db)

	uc := app.New(logger, cfg, db).Sync

	summary, err := uc.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: fetched=%d created=%d updated=%d deleted=%d skipped=%d unchanged=%d (%s)\n",
		summary.RunID, summary.Fetched, summary.Created, summary.Updated, summary.Deleted,
		summary.Skipped, summary.Unchanged, summary.Duration)
	return nil
}
