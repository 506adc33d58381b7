package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JournalStore persists journal entries in SQLite. All queries are
// partitioned by user_id; entries for one user are never visible to another.
type JournalStore struct {
	db *gorm.DB
}

// OpenJournalStore opens (creating if needed) the SQLite database at path
// and migrates the journal_entries table. Use ":memory:" for tests.
func OpenJournalStore(path string) (*JournalStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&JournalEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	return &JournalStore{db: db}, nil
}

func (s *JournalStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveEntry stores a new journal entry and returns its generated id.
// Each call produces a distinct entry even for identical text.
func (s *JournalStore) SaveEntry(ctx context.Context, userID, rawText, summary string, tags []string) (string, error) {
	entry := JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		RawText:   rawText,
		Summary:   summary,
		Tags:      TagList(tags),
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", fmt.Errorf("failed to save journal entry: %w", err)
	}
	return entry.ID, nil
}

// GetRecent returns the newest entries for a user, newest first.
func (s *JournalStore) GetRecent(ctx context.Context, userID string, limit int) ([]JournalEntry, error) {
	var entries []JournalEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent entries: %w", err)
	}
	return entries, nil
}

// Search does a case-insensitive keyword match over summary and raw text.
// Not semantic; good enough to surface topically related notes.
func (s *JournalStore) Search(ctx context.Context, userID, query string, topK int) ([]JournalEntry, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var entries []JournalEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(summary || ' ' || raw_text) LIKE ?", userID, pattern).
		Order("timestamp DESC").
		Limit(topK).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return entries, nil
}
