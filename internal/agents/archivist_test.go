package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/majordomo/internal/memory"
	"github.com/agenthands/majordomo/internal/tools"
)

func TestArchivistUsesBothJournalTools(t *testing.T) {
	var recentLimit, searchLimit int
	var searchQuery string

	registry := tools.NewRegistry()
	registry.Register(tools.JournalRecent, tools.JournalRecentFunc(
		func(ctx context.Context, userID string, limit int) ([]memory.JournalEntry, error) {
			recentLimit = limit
			return []memory.JournalEntry{
				{ID: "e1", Summary: "work was stressful", Timestamp: time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)},
			}, nil
		}))
	registry.Register(tools.JournalSearch, tools.JournalSearchFunc(
		func(ctx context.Context, userID, query string, topK int) ([]memory.JournalEntry, error) {
			searchQuery, searchLimit = query, topK
			return []memory.JournalEntry{
				{ID: "e2", Summary: "another work note", Timestamp: time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)},
			}, nil
		}))

	llm := &MockLLM{Response: "a thoughtful reflection"}
	archivist := NewArchivist(llm, registry)

	result, err := archivist.Handle(context.Background(), "bryn", "What have I been saying about work lately?", "")
	require.NoError(t, err)

	assert.Equal(t, "a thoughtful reflection", result.Reflection)
	assert.Equal(t, 15, recentLimit)
	assert.Equal(t, 15, searchLimit)
	assert.Equal(t, "What have I been saying about work lately?", searchQuery)
	require.Len(t, result.RecentEntriesUsed, 1)
	require.Len(t, result.SearchResultsUsed, 1)

	prompt := llm.LastPrompt()
	assert.Contains(t, prompt, "work was stressful")
	assert.Contains(t, prompt, "another work note")
}

func TestArchivistDegradesWhenToolsFail(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.JournalRecent, tools.JournalRecentFunc(
		func(ctx context.Context, userID string, limit int) ([]memory.JournalEntry, error) {
			return nil, errors.New("db offline")
		}))

	llm := &MockLLM{Response: "reflection without history"}
	archivist := NewArchivist(llm, registry)

	result, err := archivist.Handle(context.Background(), "bryn", "Show me patterns in my notes", "")
	require.NoError(t, err)

	assert.Empty(t, result.RecentEntriesUsed)
	assert.Empty(t, result.SearchResultsUsed)
	assert.Contains(t, llm.LastPrompt(), "(none)")
}

func TestFormatEntryBullets(t *testing.T) {
	assert.Equal(t, "(none)", formatEntryBullets(nil))

	entries := []memory.JournalEntry{
		{Summary: "first", Timestamp: time.Date(2025, 11, 1, 9, 30, 0, 0, time.UTC)},
	}
	assert.Equal(t, "- 2025-11-01T09:30:00: first", formatEntryBullets(entries))
}
