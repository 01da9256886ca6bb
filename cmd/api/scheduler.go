package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"notion-gcal-sync/internal/sync"
	"notion-gcal-sync/pkg/log"
)

// newScheduler runs uc on the given cron spec (standard five fields or
// descriptors such as "@every 15m"). Ticks that land while a run is still
// going are skipped.
func newScheduler(l log.Logger, uc sync.UseCase, spec string, timeout time.Duration) (*cron.Cron, error) {
	cl := cronLogger{l: l}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	_, err := c.AddFunc(spec, func() {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		summary, err := uc.Run(ctx)
		switch {
		case errors.Is(err, sync.ErrSyncInProgress):
			l.Infof(ctx, "scheduler: previous run still in progress, skipping tick")
		case err != nil:
			l.Errorf(ctx, "scheduler: sync run failed: %v", err)
		default:
			l.Infof(ctx, "scheduler: run %s finished in %s", summary.RunID, summary.Duration)
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// cronLogger adapts log.Logger to cron.Logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorf(context.Background(), "cron: %s: %v %s", msg, err, fmt.Sprint(keysAndValues...))
}
