// Package tools exposes the named callables that agents invoke through
// the registry: search, calendar, approval, journal memory, and smart home.
package tools

import (
	"context"
	"sync"
	"time"

	"github.com/agenthands/majordomo/internal/memory"
)

// Canonical tool names. Agents look tools up by these; a missing name
// means the capability is degraded, never a crash.
const (
	SearchGoogle        = "search.google"
	SearchWikipedia     = "search.wikipedia"
	HumanApprove        = "human.approve"
	CalendarCreateEvent = "calendar.create_event"
	CalendarListEvents  = "calendar.list_upcoming"
	JournalRecent       = "memory.journal_recent"
	JournalSearch       = "memory.journal_search"
	SmartHomeGetState   = "smarthome.get_state"
	SmartHomeSetState   = "smarthome.set_state"
)

type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type SearchFunc func(ctx context.Context, query string, limit int) ([]SearchResult, error)

// ApproveFunc gates a sensitive action. Implementations may block while
// waiting for a human decision.
type ApproveFunc func(description string) bool

type CreateEventFunc func(ctx context.Context, userID, title, startISO, endISO, description string) (string, error)

type ListEventsFunc func(userID string, now time.Time, horizonDays, maxEvents int) []CalendarEvent

type JournalRecentFunc func(ctx context.Context, userID string, limit int) ([]memory.JournalEntry, error)

type JournalSearchFunc func(ctx context.Context, userID, query string, topK int) ([]memory.JournalEntry, error)

type HomeGetFunc func(ctx context.Context, userID string) (memory.HomeState, error)

type HomeSetFunc func(ctx context.Context, userID string, partial map[string]string) (memory.HomeState, error)

// Registry maps logical tool names to callables. One instance is built at
// process start and handed to every component that needs it.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]any
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]any)}
}

func (r *Registry) Register(name string, tool any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[name] = tool
}

func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Lookup fetches a tool by name with its concrete function type. The
// second return is false when the tool is absent or has the wrong type.
func Lookup[T any](r *Registry, name string) (T, bool) {
	var zero T
	raw, ok := r.Get(name)
	if !ok {
		return zero, false
	}
	tool, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return tool, true
}
