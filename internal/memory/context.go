package memory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

// Intent selects which memory pieces are gathered for a request.
type Intent string

const (
	IntentKnowledge       Intent = "knowledge"
	IntentDiaryCapture    Intent = "diary_capture"
	IntentDiaryReflection Intent = "diary_reflection"
	IntentSmartHome       Intent = "smart_home"
)

// Context is the transient memory digest assembled per request.
// It is built fresh every call and never persisted.
type Context struct {
	Profile              *UserProfile
	RecentJournal        []JournalEntry
	JournalSearchResults []JournalEntry
	HomeState            HomeState
}

// ContextBuilder gathers memory for a request from the journal store and
// the home-state cache.
type ContextBuilder struct {
	Journal *JournalStore
	State   *StateCache
}

func NewContextBuilder(journal *JournalStore, state *StateCache) *ContextBuilder {
	return &ContextBuilder{Journal: journal, State: state}
}

// Gather pulls the memory relevant to the given intent. The profile is
// always included; journal entries only for diary intents; home state only
// for the smart-home intent. Store failures degrade to missing sections
// rather than failing the request.
func (b *ContextBuilder) Gather(ctx context.Context, userID string, intent Intent, query string) Context {
	profile := GetUserProfile(userID)
	out := Context{Profile: &profile}

	if intent == IntentDiaryCapture || intent == IntentDiaryReflection {
		if b.Journal != nil {
			recent, err := b.Journal.GetRecent(ctx, userID, 10)
			if err != nil {
				log.Warn().Err(err).Str("user_id", userID).Msg("failed to load recent journal entries")
			} else {
				out.RecentJournal = recent
			}

			if intent == IntentDiaryReflection && query != "" {
				matched, err := b.Journal.Search(ctx, userID, query, 10)
				if err != nil {
					log.Warn().Err(err).Str("user_id", userID).Msg("journal search failed")
				} else {
					out.JournalSearchResults = matched
				}
			}
		}
	}

	if intent == IntentSmartHome && b.State != nil {
		out.HomeState = b.State.Get(userID)
	}

	return out
}

const maxContextSnippets = 5

// Format turns the structured context into a compact text block for
// prompt injection. Empty sections are omitted entirely.
func (c Context) Format() string {
	var parts []string

	if c.Profile != nil && c.Profile.Summary != "" {
		parts = append(parts, "USER PROFILE:\n"+c.Profile.Summary)
	}

	if len(c.RecentJournal) > 0 {
		parts = append(parts, "RECENT JOURNAL ENTRIES:\n"+formatSnippets(c.RecentJournal))
	}

	if len(c.JournalSearchResults) > 0 {
		parts = append(parts, "JOURNAL ENTRIES RELEVANT TO THIS REQUEST:\n"+formatSnippets(c.JournalSearchResults))
	}

	if len(c.HomeState) > 0 {
		snapshot, err := json.Marshal(c.HomeState)
		if err == nil {
			parts = append(parts, "HOME STATE SNAPSHOT:\n"+string(snapshot))
		}
	}

	return strings.Join(parts, "\n\n")
}

func formatSnippets(entries []JournalEntry) string {
	n := len(entries)
	if n > maxContextSnippets {
		n = maxContextSnippets
	}
	lines := make([]string, 0, n)
	for _, e := range entries[:n] {
		lines = append(lines, "- "+e.Timestamp.Format("2006-01-02T15:04:05")+": "+e.Summary)
	}
	return strings.Join(lines, "\n")
}
