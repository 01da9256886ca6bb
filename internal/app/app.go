package app

import (
	"database/sql"

	"notion-gcal-sync/config"
	"notion-gcal-sync/internal/credential"
	credentialRepo "notion-gcal-sync/internal/credential/repository/sqlite"
	credentialUC "notion-gcal-sync/internal/credential/usecase"
	calendarRepo "notion-gcal-sync/internal/event/repository/gcal"
	eventRepo "notion-gcal-sync/internal/event/repository/sqlite"
	"notion-gcal-sync/internal/source"
	"notion-gcal-sync/internal/sync"
	"notion-gcal-sync/internal/sync/notify"
	syncUC "notion-gcal-sync/internal/sync/usecase"
	"notion-gcal-sync/pkg/gcalendar"
	"notion-gcal-sync/pkg/log"
	"notion-gcal-sync/pkg/notion"
	"notion-gcal-sync/pkg/telegram"
)

// UseCases are the domain services every entry point runs.
type UseCases struct {
	Credential credential.UseCase
	Sync       sync.UseCase
}

// New wires the credential and reconciliation use cases over one database.
func New(l log.Logger, cfg *config.Config, db *sql.DB) UseCases {
	credUC := credentialUC.New(l, credentialRepo.New(db, l), cfg.GoogleCalendar.OAuth2())

	fetcher := source.New(l, notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.APIKey, cfg.Notion.Version), source.Options{
		TitleProperty: cfg.Notion.TitleProperty,
		DateProperty:  cfg.Notion.DateProperty,
		PageSize:      cfg.Notion.PageSize,
	})

	var opts []syncUC.Option
	if n := Notifier(cfg.Telegram); n != nil {
		opts = append(opts, syncUC.WithNotifier(n))
	}

	uc := syncUC.New(l, credUC, fetcher,
		eventRepo.New(db, l),
		calendarRepo.New(gcalendar.NewClient(), l),
		syncUC.Config{
			Identity:         cfg.Sync.Identity,
			CalendarID:       cfg.GoogleCalendar.CalendarID,
			DefaultTimezone:  cfg.GoogleCalendar.DefaultTimezone,
			DataSourceIDs:    cfg.Notion.DataSourceIDs,
			MutationInterval: cfg.Sync.MutationInterval,
		},
		opts...,
	)

	return UseCases{Credential: credUC, Sync: uc}
}

// Notifier returns the failure notifier, or nil when alerts are off.
func Notifier(cfg config.TelegramConfig) sync.Notifier {
	if !cfg.Enabled() {
		return nil
	}
	return notify.NewTelegram(telegram.NewBot(cfg.BotToken), cfg.ChatID)
}
