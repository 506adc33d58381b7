package memory

import (
	"sync"
)

// StateCache holds per-user smart-home state in memory. No history is
// kept; updates merge into the current snapshot in place.
type StateCache struct {
	mu     sync.RWMutex
	states map[string]HomeState
}

func NewStateCache() *StateCache {
	return &StateCache{states: make(map[string]HomeState)}
}

// Get returns the current state for a user, or the all-unknown default
// if nothing has been set yet.
func (c *StateCache) Get(userID string) HomeState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state, ok := c.states[userID]
	if !ok {
		return DefaultHomeState()
	}
	return state.Clone()
}

// Set merges a partial update into the user's state and returns the
// resulting full state. Keys absent from the update are preserved.
func (c *StateCache) Set(userID string, partial map[string]string) HomeState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.states[userID]
	if !ok {
		state = DefaultHomeState()
	}
	for k, v := range partial {
		state[k] = v
	}
	c.states[userID] = state
	return state.Clone()
}
