package gcal

import (
	"context"

	"notion-gcal-sync/internal/model"
	"notion-gcal-sync/pkg/gcalendar"
)

func (r *implRepository) InsertEvent(ctx context.Context, cred model.UsableCredential, calendarID string, fields model.EventFields) (string, error) {
	id, err := r.client.InsertEvent(ctx, cred.Token(), calendarID, toInput(fields))
	if err != nil {
		r.l.Errorf(ctx, "event/repository/gcal.InsertEvent: %v", err)
		return "", err
	}
	return id, nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, cred model.UsableCredential, calendarID, targetEventID string, fields model.EventFields) error {
	if err := r.client.UpdateEvent(ctx, cred.Token(), calendarID, targetEventID, toInput(fields)); err != nil {
		r.l.Errorf(ctx, "event/repository/gcal.UpdateEvent %s: %v", targetEventID, err)
		return err
	}
	return nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, cred model.UsableCredential, calendarID, targetEventID string) error {
	if err := r.client.DeleteEvent(ctx, cred.Token(), calendarID, targetEventID); err != nil {
		r.l.Errorf(ctx, "event/repository/gcal.DeleteEvent %s: %v", targetEventID, err)
		return err
	}
	return nil
}

func toInput(f model.EventFields) gcalendar.EventInput {
	return gcalendar.EventInput{
		Summary:  f.Summary,
		Start:    f.Start,
		End:      f.End,
		TimeZone: f.TimeZone,
	}
}
