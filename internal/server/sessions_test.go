package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/majordomo/internal/orchestration"
)

func TestSessionStoreRecentWindow(t *testing.T) {
	store := newSessionStore()

	for i := 0; i < 6; i++ {
		store.Append("s1",
			orchestration.ConversationTurn{Role: "user", Content: "q"},
			orchestration.ConversationTurn{Role: "assistant", Content: "a"},
		)
	}

	recent := store.Recent("s1", 4)
	assert.Len(t, recent, 4)
	assert.Equal(t, "user", recent[0].Role)
	assert.Equal(t, "assistant", recent[3].Role)
}

func TestSessionStoreIsolatesSessions(t *testing.T) {
	store := newSessionStore()
	store.Append("s1", orchestration.ConversationTurn{Role: "user", Content: "hello"})

	assert.Len(t, store.Recent("s1", 10), 1)
	assert.Empty(t, store.Recent("s2", 10))
}

func TestSessionStoreRecentReturnsCopy(t *testing.T) {
	store := newSessionStore()
	store.Append("s1", orchestration.ConversationTurn{Role: "user", Content: "hello"})

	recent := store.Recent("s1", 10)
	recent[0].Content = "mutated"

	assert.Equal(t, "hello", store.Recent("s1", 10)[0].Content)
}
