package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

// Client issues Google Calendar calls. It holds no credential: every call
// is authorised with the token passed to it.
type Client struct {
	base http.RoundTripper
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the transport requests go through before authorisation
// is added. Defaults to http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.base = rt
	}
}

// NewClient creates a Calendar client.
func NewClient(opts ...Option) *Client {
	c := &Client{base: http.DefaultTransport}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// service builds a Calendar service bound to tok for a single call.
func (c *Client) service(ctx context.Context, tok *oauth2.Token) (*calendar.Service, error) {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(tok),
			Base:   c.base,
		},
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// InsertEvent creates an event and returns its Google id.
func (c *Client) InsertEvent(ctx context.Context, tok *oauth2.Token, calendarID string, input EventInput) (string, error) {
	svc, err := c.service(ctx, tok)
	if err != nil {
		return "", err
	}

	created, err := svc.Events.Insert(calendarID, toCalendarEvent(input)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// UpdateEvent overwrites summary, start and end of an existing event.
func (c *Client) UpdateEvent(ctx context.Context, tok *oauth2.Token, calendarID, eventID string, input EventInput) error {
	svc, err := c.service(ctx, tok)
	if err != nil {
		return err
	}

	if _, err := svc.Events.Update(calendarID, eventID, toCalendarEvent(input)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update calendar event %s: %w", eventID, err)
	}
	return nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, tok *oauth2.Token, calendarID, eventID string) error {
	svc, err := c.service(ctx, tok)
	if err != nil {
		return err
	}

	if err := svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

// ListEvents retrieves single events ordered by start time.
func (c *Client) ListEvents(ctx context.Context, tok *oauth2.Token, req ListEventsRequest) ([]Event, error) {
	svc, err := c.service(ctx, tok)
	if err != nil {
		return nil, err
	}

	call := svc.Events.List(req.CalendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, Event{
			ID:       item.Id,
			Summary:  item.Summary,
			HtmlLink: item.HtmlLink,
			Start:    eventTime(item.Start),
			End:      eventTime(item.End),
		})
	}
	return events, nil
}

// toCalendarEvent maps the synced fields. Date-only values become all-day
// events whose end is exclusive, so a date-only end moves one day forward; a
// missing end reuses the start.
func toCalendarEvent(f EventInput) *calendar.Event {
	end := f.End
	if end == "" {
		end = f.Start
	}
	if day, err := time.Parse(dateLayout, end); err == nil {
		end = day.AddDate(0, 0, 1).Format(dateLayout)
	}
	return &calendar.Event{
		Summary: f.Summary,
		Start:   toEventDateTime(f.Start, f.TimeZone),
		End:     toEventDateTime(end, f.TimeZone),
	}
}

func toEventDateTime(value, zone string) *calendar.EventDateTime {
	if _, err := time.Parse(dateLayout, value); err == nil {
		return &calendar.EventDateTime{Date: value, TimeZone: zone}
	}
	return &calendar.EventDateTime{DateTime: value, TimeZone: zone}
}

func eventTime(dt *calendar.EventDateTime) string {
	if dt == nil {
		return ""
	}
	if dt.DateTime != "" {
		return dt.DateTime
	}
	return dt.Date
}
