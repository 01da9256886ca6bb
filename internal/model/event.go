package model

// UntitledPlaceholder is used when a source record carries no title.
const UntitledPlaceholder = "Untitled"

// SourceEvent is one event as read from a Notion data source during a run.
// Dates are kept in Notion's textual form; nothing here parses them.
type SourceEvent struct {
	ID             string
	Title          string
	StartDate      string
	EndDate        string
	TimeZone       string // empty when Notion has no zone for the date
	LastEditedTime string
}

// CachedEvent is the last mirrored state of a SourceEvent.
type CachedEvent struct {
	ID             string
	Title          string
	StartDate      string
	EndDate        string
	TimeZone       string
	LastEditedTime string
	TargetEventID  string // Google Calendar event id; empty if creation never landed
}

// EventFields is what gets written to the target calendar for one event.
type EventFields struct {
	Summary  string
	Start    string
	End      string
	TimeZone string
}

// Fields maps the event onto the target calendar, using defaultZone when the
// source carries no zone.
func (e SourceEvent) Fields(defaultZone string) EventFields {
	tz := e.TimeZone
	if tz == "" {
		tz = defaultZone
	}
	return EventFields{
		Summary:  e.Title,
		Start:    e.StartDate,
		End:      e.EndDate,
		TimeZone: tz,
	}
}

// ToCached builds the cache row for e after the target assigned targetEventID.
func (e SourceEvent) ToCached(targetEventID string) CachedEvent {
	return CachedEvent{
		ID:             e.ID,
		Title:          e.Title,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		TimeZone:       e.TimeZone,
		LastEditedTime: e.LastEditedTime,
		TargetEventID:  targetEventID,
	}
}

// HasTarget reports whether the cached event is mirrored in the target calendar.
func (c CachedEvent) HasTarget() bool {
	return c.TargetEventID != ""
}
