package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCalendarCreateAndList(t *testing.T) {
	cal := NewLocalCalendar()
	ctx := context.Background()

	id1, err := cal.CreateEvent(ctx, "bryn", "Dinner with Annie", "2025-12-12T19:00:00", "2025-12-12T21:00:00", "")
	require.NoError(t, err)
	id2, err := cal.CreateEvent(ctx, "bryn", "Morning run", "2025-12-10T07:00:00", "2025-12-10T08:00:00", "")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	now := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)
	upcoming := cal.ListUpcoming("bryn", now, 7, 10)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "Morning run", upcoming[0].Title)
	assert.Equal(t, "Dinner with Annie", upcoming[1].Title)
}

func TestLocalCalendarListsThroughRegistry(t *testing.T) {
	cal := NewLocalCalendar()
	registry := NewRegistry()
	registry.Register(CalendarListEvents, ListEventsFunc(cal.ListUpcoming))

	_, err := cal.CreateEvent(context.Background(), "bryn", "Dentist", "2025-12-10T09:00:00", "2025-12-10T10:00:00", "")
	require.NoError(t, err)

	listFn, ok := Lookup[ListEventsFunc](registry, CalendarListEvents)
	require.True(t, ok)

	now := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)
	upcoming := listFn("bryn", now, 7, 10)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Dentist", upcoming[0].Title)
}

func TestLocalCalendarHorizonAndUserScoping(t *testing.T) {
	cal := NewLocalCalendar()
	ctx := context.Background()

	_, err := cal.CreateEvent(ctx, "bryn", "Far future", "2026-06-01T10:00:00", "2026-06-01T11:00:00", "")
	require.NoError(t, err)

	now := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, cal.ListUpcoming("bryn", now, 7, 10))
	assert.Empty(t, cal.ListUpcoming("someone-else", now, 7, 10))
}
