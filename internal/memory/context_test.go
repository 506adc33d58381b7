package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOmitsEmptySections(t *testing.T) {
	profile := GetUserProfile("bryn")
	ctx := Context{Profile: &profile}

	text := ctx.Format()

	assert.Contains(t, text, "USER PROFILE:")
	assert.NotContains(t, text, "RECENT JOURNAL ENTRIES:")
	assert.NotContains(t, text, "JOURNAL ENTRIES RELEVANT TO THIS REQUEST:")
	assert.NotContains(t, text, "HOME STATE SNAPSHOT:")
}

func TestFormatCapsSnippets(t *testing.T) {
	entries := make([]JournalEntry, 8)
	for i := range entries {
		entries[i] = JournalEntry{
			Timestamp: time.Date(2025, 6, 1+i, 12, 0, 0, 0, time.UTC),
			Summary:   "entry summary",
		}
	}

	ctx := Context{RecentJournal: entries}
	text := ctx.Format()

	assert.Equal(t, 5, strings.Count(text, "- 2025-06"))
}

func TestFormatIncludesHomeState(t *testing.T) {
	ctx := Context{HomeState: HomeState{"lights": "on", "doors_locked": "locked"}}

	text := ctx.Format()

	assert.Contains(t, text, "HOME STATE SNAPSHOT:")
	assert.Contains(t, text, `"lights":"on"`)
}

func TestGatherFetchesByIntent(t *testing.T) {
	store := newTestStore(t)
	cache := NewStateCache()
	builder := NewContextBuilder(store, cache)
	bg := context.Background()

	_, err := store.SaveEntry(bg, "bryn", "thinking about work", "work thoughts", nil)
	require.NoError(t, err)
	cache.Set("bryn", map[string]string{"lights": "on"})

	knowledge := builder.Gather(bg, "bryn", IntentKnowledge, "anything")
	assert.NotNil(t, knowledge.Profile)
	assert.Empty(t, knowledge.RecentJournal)
	assert.Empty(t, knowledge.HomeState)

	reflection := builder.Gather(bg, "bryn", IntentDiaryReflection, "work")
	assert.Len(t, reflection.RecentJournal, 1)
	assert.Len(t, reflection.JournalSearchResults, 1)

	home := builder.Gather(bg, "bryn", IntentSmartHome, "")
	assert.Equal(t, "on", home.HomeState["lights"])
	assert.Empty(t, home.RecentJournal)
}
