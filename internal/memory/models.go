package memory

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TagList is a []string persisted as a JSON text column.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
	if len(data) == 0 {
		*t = nil
		return nil
	}
	return json.Unmarshal(data, t)
}

// JournalEntry is a captured diary note. Entries are immutable once
// written: they are never updated or deleted.
type JournalEntry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	RawText   string    `gorm:"type:text;not null" json:"raw_text"`
	Summary   string    `gorm:"type:text;not null" json:"summary"`
	Tags      TagList   `gorm:"type:text" json:"tags"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// HomeState is the simulated smart-home snapshot for one user.
// Keys absent from an update keep their previous value.
type HomeState map[string]string

// DefaultHomeState is the state reported before any device has been touched.
func DefaultHomeState() HomeState {
	return HomeState{
		"lights":       "unknown",
		"doors_locked": "unknown",
	}
}

func (s HomeState) Clone() HomeState {
	out := make(HomeState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

type UserProfile struct {
	UserID  string `json:"user_id"`
	Summary string `json:"summary"`
}
