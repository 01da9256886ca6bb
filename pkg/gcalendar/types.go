package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Start    string // RFC 3339 date-time, or YYYY-MM-DD for all-day events
	End      string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time // zero means open-ended
	MaxResults int64
}

// EventInput is the writable part of an event. Start and End are either
// RFC 3339 date-times or YYYY-MM-DD dates.
type EventInput struct {
	Summary  string
	Start    string
	End      string
	TimeZone string
}
