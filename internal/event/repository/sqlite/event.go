package sqlite

import (
	"context"
	"database/sql"

	"notion-gcal-sync/internal/event/repository"
	"notion-gcal-sync/internal/model"
)

func (r *implRepository) ListEvents(ctx context.Context) ([]model.CachedEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM events ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var events []model.CachedEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s.Scan: %v", r.dsn("ListEvents"), err)
			return nil, repository.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s.Rows: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	return events, nil
}

func (r *implRepository) GetEvent(ctx context.Context, id string) (model.CachedEvent, error) {
	ev, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM events WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.CachedEvent{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEvent"), err)
		return model.CachedEvent{}, repository.ErrFailedToGet
	}
	return ev, nil
}

func (r *implRepository) InsertEvent(ctx context.Context, opt repository.InsertEventOptions) error {
	ev := opt.Event
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, title, start_date, end_date, time_zone, last_edited_time, google_event_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, ev.StartDate, ev.EndDate, nullable(ev.TimeZone), ev.LastEditedTime, nullable(ev.TargetEventID),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, start_date = ?, end_date = ?, time_zone = ?, last_edited_time = ?
		WHERE id = ?`,
		opt.Title, opt.StartDate, opt.EndDate, nullable(opt.TimeZone), opt.LastEditedTime, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
