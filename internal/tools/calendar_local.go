package tools

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type CalendarEvent struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

// LocalCalendar is an in-memory calendar keyed by user, used when no real
// calendar backend is configured.
type LocalCalendar struct {
	mu     sync.Mutex
	events map[string][]CalendarEvent
}

func NewLocalCalendar() *LocalCalendar {
	return &LocalCalendar{events: make(map[string][]CalendarEvent)}
}

func (c *LocalCalendar) CreateEvent(ctx context.Context, userID, title, startISO, endISO, description string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	eventID := uuid.New().String()
	c.events[userID] = append(c.events[userID], CalendarEvent{
		ID:          eventID,
		UserID:      userID,
		Title:       title,
		Start:       startISO,
		End:         endISO,
		Description: description,
	})
	return eventID, nil
}

// ListUpcoming returns events starting between now and now+horizonDays,
// soonest first. Events with unparseable start times are skipped.
func (c *LocalCalendar) ListUpcoming(userID string, now time.Time, horizonDays, maxEvents int) []CalendarEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	horizon := now.AddDate(0, 0, horizonDays)

	var upcoming []CalendarEvent
	starts := make(map[string]time.Time)
	for _, ev := range c.events[userID] {
		start, err := time.Parse("2006-01-02T15:04:05", ev.Start)
		if err != nil {
			continue
		}
		if start.Before(now) || start.After(horizon) {
			continue
		}
		starts[ev.ID] = start
		upcoming = append(upcoming, ev)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return starts[upcoming[i].ID].Before(starts[upcoming[j].ID])
	})

	if len(upcoming) > maxEvents {
		upcoming = upcoming[:maxEvents]
	}
	return upcoming
}
