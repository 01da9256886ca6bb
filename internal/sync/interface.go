package sync

import (
	"context"

	"notion-gcal-sync/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Run performs one full reconciliation pass.
	Run(ctx context.Context) (Summary, error)
}

// SourceFetcher reads the current snapshot of every source collection.
type SourceFetcher interface {
	FetchAll(ctx context.Context, dataSourceIDs []string) ([]model.SourceEvent, error)
}

// Notifier tells an operator about failed runs.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
