package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"notion-gcal-sync/internal/event/repository"
	"notion-gcal-sync/internal/model"
	"notion-gcal-sync/internal/sync"
	pkgLog "notion-gcal-sync/pkg/log"
)

// Run mirrors the current source snapshot into the target calendar. Creates
// and updates follow fetch order, deletes come last. The first failure stops
// the run; whatever was already applied stays applied.
func (uc *implUseCase) Run(ctx context.Context) (sync.Summary, error) {
	if !uc.running.TryLock() {
		return sync.Summary{}, sync.ErrSyncInProgress
	}
	defer uc.running.Unlock()

	runID := uuid.NewString()
	ctx = pkgLog.WithRunID(ctx, runID)

	summary, err := uc.run(ctx, runID)
	if err != nil && uc.notify != nil {
		text := fmt.Sprintf("notion-gcal-sync run %s failed after %d created, %d updated, %d deleted: %v",
			runID, summary.Created, summary.Updated, summary.Deleted, err)
		if nerr := uc.notify.Notify(context.WithoutCancel(ctx), text); nerr != nil {
			uc.l.Warnf(ctx, "sync.Run: failure notification not sent: %v", nerr)
		}
	}
	return summary, err
}

func (uc *implUseCase) run(ctx context.Context, runID string) (sync.Summary, error) {
	summary := sync.Summary{
		RunID:     runID,
		StartedAt: uc.now(),
	}

	uc.l.Infof(ctx, "sync.Run: starting for %d data sources", len(uc.cfg.DataSourceIDs))

	cred, err := uc.credUC.EnsureValid(ctx, uc.cfg.Identity)
	if err != nil {
		uc.l.Errorf(ctx, "sync.Run EnsureValid: %v", err)
		return uc.finish(summary), err
	}

	events, err := uc.fetcher.FetchAll(ctx, uc.cfg.DataSourceIDs)
	if err != nil {
		uc.l.Errorf(ctx, "sync.Run FetchAll: %v", err)
		if !errors.Is(err, sync.ErrSourceFetchFailed) {
			err = fmt.Errorf("%w: %w", sync.ErrSourceFetchFailed, err)
		}
		return uc.finish(summary), err
	}
	summary.Fetched = len(events)

	cached, err := uc.cache.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "sync.Run ListEvents: %v", err)
		return uc.finish(summary), fmt.Errorf("%w: %w", sync.ErrCachePersistenceFailed, err)
	}
	summary.Cached = len(cached)

	index := make(map[string]model.CachedEvent, len(cached))
	for _, c := range cached {
		index[c.ID] = c
	}

	seen := make(map[string]struct{}, len(events))
	for _, ev := range events {
		seen[ev.ID] = struct{}{}

		c, ok := index[ev.ID]
		switch {
		case !ok:
			created, err := uc.create(ctx, cred, ev)
			if err != nil {
				return uc.finish(summary), err
			}
			index[ev.ID] = created
			summary.Created++

		case c.LastEditedTime != ev.LastEditedTime:
			if !c.HasTarget() {
				uc.l.Warnf(ctx, "sync.Run: %s changed but has no target event, skipping update", ev.ID)
				summary.Skipped++
				continue
			}
			if err := uc.update(ctx, cred, c.TargetEventID, ev); err != nil {
				return uc.finish(summary), err
			}
			index[ev.ID] = ev.ToCached(c.TargetEventID)
			summary.Updated++

		default:
			summary.Unchanged++
		}
	}

	for _, c := range cached {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		if err := uc.delete(ctx, cred, c); err != nil {
			return uc.finish(summary), err
		}
		summary.Deleted++
	}

	summary = uc.finish(summary)
	uc.l.Infof(ctx, "sync.Run: done in %s: fetched=%d created=%d updated=%d deleted=%d skipped=%d unchanged=%d",
		summary.Duration, summary.Fetched, summary.Created, summary.Updated, summary.Deleted, summary.Skipped, summary.Unchanged)
	return summary, nil
}

func (uc *implUseCase) create(ctx context.Context, cred model.UsableCredential, ev model.SourceEvent) (model.CachedEvent, error) {
	if err := uc.pacer.Wait(ctx); err != nil {
		return model.CachedEvent{}, err
	}

	targetID, err := uc.target.InsertEvent(ctx, cred, uc.cfg.CalendarID, ev.Fields(uc.cfg.DefaultTimezone))
	if err != nil {
		return model.CachedEvent{}, fmt.Errorf("%w: create %s: %w", sync.ErrTargetMutationFailed, ev.ID, err)
	}
	uc.l.Infof(ctx, "sync.Run: created %q (%s -> %s)", ev.Title, ev.ID, targetID)

	row := ev.ToCached(targetID)
	if err := uc.cache.InsertEvent(ctx, repository.InsertEventOptions{Event: row}); err != nil {
		return model.CachedEvent{}, fmt.Errorf("%w: insert %s: %w", sync.ErrCachePersistenceFailed, ev.ID, err)
	}
	return row, nil
}

func (uc *implUseCase) update(ctx context.Context, cred model.UsableCredential, targetID string, ev model.SourceEvent) error {
	if err := uc.pacer.Wait(ctx); err != nil {
		return err
	}

	if err := uc.target.UpdateEvent(ctx, cred, uc.cfg.CalendarID, targetID, ev.Fields(uc.cfg.DefaultTimezone)); err != nil {
		return fmt.Errorf("%w: update %s: %w", sync.ErrTargetMutationFailed, ev.ID, err)
	}
	uc.l.Infof(ctx, "sync.Run: updated %q (%s)", ev.Title, ev.ID)

	if err := uc.cache.UpdateEvent(ctx, repository.UpdateEventOptions{
		ID:             ev.ID,
		Title:          ev.Title,
		StartDate:      ev.StartDate,
		EndDate:        ev.EndDate,
		TimeZone:       ev.TimeZone,
		LastEditedTime: ev.LastEditedTime,
	}); err != nil {
		return fmt.Errorf("%w: update %s: %w", sync.ErrCachePersistenceFailed, ev.ID, err)
	}
	return nil
}

// delete removes the target event, if one was ever created, then the cache row.
func (uc *implUseCase) delete(ctx context.Context, cred model.UsableCredential, c model.CachedEvent) error {
	if c.HasTarget() {
		if err := uc.pacer.Wait(ctx); err != nil {
			return err
		}
		if err := uc.target.DeleteEvent(ctx, cred, uc.cfg.CalendarID, c.TargetEventID); err != nil {
			return fmt.Errorf("%w: delete %s: %w", sync.ErrTargetMutationFailed, c.ID, err)
		}
	}

	if err := uc.cache.DeleteEvent(ctx, c.ID); err != nil {
		return fmt.Errorf("%w: delete %s: %w", sync.ErrCachePersistenceFailed, c.ID, err)
	}
	uc.l.Infof(ctx, "sync.Run: deleted %q (%s)", c.Title, c.ID)
	return nil
}

func (uc *implUseCase) finish(s sync.Summary) sync.Summary {
	s.Duration = uc.now().Sub(s.StartedAt)
	return s
}
