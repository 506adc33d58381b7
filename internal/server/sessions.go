package server

import (
	"sync"

	"github.com/agenthands/majordomo/internal/orchestration"
)

const historyWindow = 10

// sessionStore keeps per-session conversation history in memory. It is
// shell bookkeeping only; the core never persists turns.
type sessionStore struct {
	mu    sync.Mutex
	turns map[string][]orchestration.ConversationTurn
}

func newSessionStore() *sessionStore {
	return &sessionStore{turns: make(map[string][]orchestration.ConversationTurn)}
}

func (s *sessionStore) Append(sessionKey string, turns ...orchestration.ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[sessionKey] = append(s.turns[sessionKey], turns...)
}

// Recent returns up to n most recent turns, oldest first.
func (s *sessionStore) Recent(sessionKey string, n int) []orchestration.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.turns[sessionKey]
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	out := make([]orchestration.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}
