package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultsToUnknown(t *testing.T) {
	cache := NewStateCache()

	state := cache.Get("bryn")

	assert.Equal(t, "unknown", state["lights"])
	assert.Equal(t, "unknown", state["doors_locked"])
}

func TestSetMergesPartialUpdate(t *testing.T) {
	cache := NewStateCache()

	cache.Set("bryn", map[string]string{"lights": "on", "doors_locked": "locked"})
	state := cache.Set("bryn", map[string]string{"lights": "off"})

	// Unspecified keys survive the update.
	assert.Equal(t, "off", state["lights"])
	assert.Equal(t, "locked", state["doors_locked"])
}

func TestStateIsPerUser(t *testing.T) {
	cache := NewStateCache()

	cache.Set("alice", map[string]string{"lights": "on"})

	assert.Equal(t, "unknown", cache.Get("bob")["lights"])
}

func TestGetReturnsCopy(t *testing.T) {
	cache := NewStateCache()
	cache.Set("bryn", map[string]string{"lights": "on"})

	state := cache.Get("bryn")
	state["lights"] = "off"

	assert.Equal(t, "on", cache.Get("bryn")["lights"])
}
