package source

import (
	"context"

	"notion-gcal-sync/pkg/log"
	"notion-gcal-sync/pkg/notion"
)

// Querier is the part of the Notion client the fetcher needs.
type Querier interface {
	QueryDataSource(ctx context.Context, dataSourceID string, req notion.QueryRequest) (*notion.QueryResponse, error)
}

// Options configures how pages are read and normalised.
type Options struct {
	TitleProperty string
	DateProperty  string
	PageSize      int
}

// Fetcher reads every configured data source and normalises the pages into
// source events.
type Fetcher struct {
	l      log.Logger
	client Querier
	opts   Options
}

func New(l log.Logger, client Querier, opts Options) *Fetcher {
	if opts.TitleProperty == "" {
		opts.TitleProperty = "Name"
	}
	if opts.DateProperty == "" {
		opts.DateProperty = "Date"
	}
	if opts.PageSize <= 0 || opts.PageSize > notion.MaxPageSize {
		opts.PageSize = notion.MaxPageSize
	}
	return &Fetcher{l: l, client: client, opts: opts}
}
