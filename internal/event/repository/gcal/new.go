package gcal

import (
	"context"

	"golang.org/x/oauth2"

	"notion-gcal-sync/internal/event/repository"
	"notion-gcal-sync/pkg/gcalendar"
	"notion-gcal-sync/pkg/log"
)

// Calendar is the part of the Google Calendar client the repository uses.
type Calendar interface {
	InsertEvent(ctx context.Context, tok *oauth2.Token, calendarID string, input gcalendar.EventInput) (string, error)
	UpdateEvent(ctx context.Context, tok *oauth2.Token, calendarID, eventID string, input gcalendar.EventInput) error
	DeleteEvent(ctx context.Context, tok *oauth2.Token, calendarID, eventID string) error
}

type implRepository struct {
	client Calendar
	l      log.Logger
}

// New creates a CalendarRepository backed by Google Calendar.
func New(client Calendar, l log.Logger) repository.CalendarRepository {
	return &implRepository{client: client, l: l}
}
