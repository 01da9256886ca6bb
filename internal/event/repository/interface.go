package repository

import (
	"context"

	"notion-gcal-sync/internal/model"
)

// Repository is the event cache: the last mirrored state of every source event.
type Repository interface {
	ListEvents(ctx context.Context) ([]model.CachedEvent, error)
	// GetEvent returns a zero value (empty ID) when the row does not exist.
	GetEvent(ctx context.Context, id string) (model.CachedEvent, error)
	InsertEvent(ctx context.Context, opt InsertEventOptions) error
	// UpdateEvent rewrites the mutable fields; the target event id is kept.
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) error
	DeleteEvent(ctx context.Context, id string) error
}

// CalendarRepository mirrors events into the target calendar. Every call is
// authorised with the credential it is given.
type CalendarRepository interface {
	InsertEvent(ctx context.Context, cred model.UsableCredential, calendarID string, fields model.EventFields) (string, error)
	UpdateEvent(ctx context.Context, cred model.UsableCredential, calendarID, targetEventID string, fields model.EventFields) error
	DeleteEvent(ctx context.Context, cred model.UsableCredential, calendarID, targetEventID string) error
}
