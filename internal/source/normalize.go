package source

import (
	"notion-gcal-sync/internal/model"
	"notion-gcal-sync/pkg/notion"
)

// normalize maps a page onto a SourceEvent. Missing properties become empty
// strings and a missing title becomes the placeholder; nothing is dropped.
func (f *Fetcher) normalize(page notion.Page) model.SourceEvent {
	ev := model.SourceEvent{
		ID:             page.ID,
		Title:          model.UntitledPlaceholder,
		LastEditedTime: page.LastEditedTime,
	}

	if title, ok := page.Properties[f.opts.TitleProperty]; ok && len(title.Title) > 0 && title.Title[0].PlainText != "" {
		ev.Title = title.Title[0].PlainText
	}

	if date, ok := page.Properties[f.opts.DateProperty]; ok && date.Date != nil {
		ev.StartDate = date.Date.Start
		ev.EndDate = date.Date.End
		ev.TimeZone = date.Date.TimeZone
	}

	return ev
}
