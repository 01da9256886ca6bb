package sqlite

import (
	"database/sql"

	"notion-gcal-sync/internal/model"
)

const selectColumns = `id, title, start_date, end_date, time_zone, last_edited_time, google_event_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (model.CachedEvent, error) {
	var (
		ev       model.CachedEvent
		tz       sql.NullString
		targetID sql.NullString
	)
	if err := s.Scan(&ev.ID, &ev.Title, &ev.StartDate, &ev.EndDate, &tz, &ev.LastEditedTime, &targetID); err != nil {
		return model.CachedEvent{}, err
	}
	ev.TimeZone = tz.String
	ev.TargetEventID = targetID.String
	return ev, nil
}

// nullable stores empty strings as NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
