package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"notion-gcal-sync/config"
	dbsqlite "notion-gcal-sync/config/sqlite"
	credentialRepo "notion-gcal-sync/internal/credential/repository/sqlite"
	credentialUC "notion-gcal-sync/internal/credential/usecase"
	"notion-gcal-sync/pkg/gcalendar"
	"notion-gcal-sync/pkg/log"
)

// main checks the stored credential against the configured calendar: it
// lists upcoming events, then creates, updates and deletes a test event.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "calendar check failed:", err)
		os.Exit(1)
	}
	fmt.Println("calendar check passed")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateOAuth(); err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := dbsqlite.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer dbsqlite.Disconnect(ctx, db)

	cred, err := credentialUC.New(logger, credentialRepo.New(db, logger), cfg.GoogleCalendar.OAuth2()).
		EnsureValid(ctx, cfg.Sync.Identity)
	if err != nil {
		return err
	}
	tok := cred.Token()
	client := gcalendar.NewClient()
	calendarID := cfg.GoogleCalendar.CalendarID

	events, err := client.ListEvents(ctx, tok, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    time.Now(),
		MaxResults: 10,
	})
	if err != nil {
		return err
	}
	fmt.Printf("found %d upcoming events\n", len(events))
	for _, ev := range events {
		fmt.Printf("- %s (%s)\n", ev.Summary, ev.Start)
	}

	start := time.Now().Add(time.Hour).Truncate(time.Minute)
	input := gcalendar.EventInput{
		Summary:  "notion-gcal-sync check",
		Start:    start.Format(time.RFC3339),
		End:      start.Add(time.Hour).Format(time.RFC3339),
		TimeZone: cfg.GoogleCalendar.DefaultTimezone,
	}
	id, err := client.InsertEvent(ctx, tok, calendarID, input)
	if err != nil {
		return err
	}
	fmt.Printf("created test event %s\n", id)

	input.Summary = "notion-gcal-sync check (updated)"
	if err := client.UpdateEvent(ctx, tok, calendarID, id, input); err != nil {
		return err
	}
	fmt.Println("updated test event")

	if err := client.DeleteEvent(ctx, tok, calendarID, id); err != nil {
		return err
	}
	fmt.Println("deleted test event")
	return nil
}
