package tools

import (
	"context"
	"fmt"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendar creates events in a real Google Calendar. Event times
// arrive as plain local ISO strings (no offset) and are sent with an
// explicit UTC timezone.
type GoogleCalendar struct {
	svc        *calendar.Service
	calendarID string
}

func NewGoogleCalendar(ctx context.Context, credentialsPath, calendarID string) (*GoogleCalendar, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("google calendar requires a credentials file")
	}
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleCalendar{svc: svc, calendarID: calendarID}, nil
}

func (c *GoogleCalendar) CreateEvent(ctx context.Context, userID, title, startISO, endISO, description string) (string, error) {
	event := &calendar.Event{
		Summary:     title,
		Description: description,
		Start:       &calendar.EventDateTime{DateTime: startISO, TimeZone: "UTC"},
		End:         &calendar.EventDateTime{DateTime: endISO, TimeZone: "UTC"},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return created.Id, nil
}
