package tools

import (
	"context"

	"github.com/agenthands/majordomo/internal/memory"
)

// Store-backed tool wrappers. These adapt the memory layer to the
// registry's function contracts.

func JournalRecentTool(store *memory.JournalStore) JournalRecentFunc {
	return func(ctx context.Context, userID string, limit int) ([]memory.JournalEntry, error) {
		return store.GetRecent(ctx, userID, limit)
	}
}

func JournalSearchTool(store *memory.JournalStore) JournalSearchFunc {
	return func(ctx context.Context, userID, query string, topK int) ([]memory.JournalEntry, error) {
		return store.Search(ctx, userID, query, topK)
	}
}

func HomeGetTool(cache *memory.StateCache) HomeGetFunc {
	return func(ctx context.Context, userID string) (memory.HomeState, error) {
		return cache.Get(userID), nil
	}
}

func HomeSetTool(cache *memory.StateCache) HomeSetFunc {
	return func(ctx context.Context, userID string, partial map[string]string) (memory.HomeState, error) {
		return cache.Set(userID, partial), nil
	}
}
