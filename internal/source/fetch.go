package source

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"notion-gcal-sync/internal/model"
	"notion-gcal-sync/internal/sync"
	"notion-gcal-sync/pkg/notion"
)

// FetchAll reads all data sources concurrently. Any failure fails the whole
// fetch; the result is the per-source results concatenated in ids order.
func (f *Fetcher) FetchAll(ctx context.Context, dataSourceIDs []string) ([]model.SourceEvent, error) {
	results := make([][]model.SourceEvent, len(dataSourceIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range dataSourceIDs {
		g.Go(func() error {
			events, err := f.fetchOne(gctx, id)
			if err != nil {
				return err
			}
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.SourceEvent
	for _, events := range results {
		all = append(all, events...)
	}
	return all, nil
}

// fetchOne pages through a single data source. Each request depends on the
// previous cursor, so pages are read one after another.
func (f *Fetcher) fetchOne(ctx context.Context, dataSourceID string) ([]model.SourceEvent, error) {
	req := notion.QueryRequest{
		Sorts:    []notion.Sort{{Property: f.opts.DateProperty, Direction: "ascending"}},
		PageSize: f.opts.PageSize,
	}

	var events []model.SourceEvent
	for pages := 1; ; pages++ {
		resp, err := f.client.QueryDataSource(ctx, dataSourceID, req)
		if err != nil {
			f.l.Errorf(ctx, "source.fetchOne %s page %d: %v", dataSourceID, pages, err)
			return nil, fmt.Errorf("%w: data source %s: %w", sync.ErrSourceFetchFailed, dataSourceID, err)
		}

		for _, page := range resp.Results {
			if page.Object != "" && page.Object != "page" {
				continue
			}
			events = append(events, f.normalize(page))
		}

		if !resp.HasMore || resp.NextCursor == "" {
			f.l.Debugf(ctx, "source.fetchOne %s: %d events in %d pages", dataSourceID, len(events), pages)
			return events, nil
		}
		req.StartCursor = resp.NextCursor
	}
}
