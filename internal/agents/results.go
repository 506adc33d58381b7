package agents

import (
	"github.com/agenthands/majordomo/internal/memory"
	"github.com/agenthands/majordomo/internal/tools"
)

// OracleResult is the outcome of a knowledge lookup.
type OracleResult struct {
	Answer        string               `json:"answer"`
	SearchResults []tools.SearchResult `json:"search_results"`
	ToolUsed      string               `json:"tool_used"`
}

type ScribeMode string

const (
	ModeSchedule ScribeMode = "schedule"
	ModeLog      ScribeMode = "log"
	ModeReflect  ScribeMode = "reflect"
)

// ScheduledEvent is the structured event extracted from free text. It is
// handed to the calendar collaborator and not stored by the core.
type ScheduledEvent struct {
	Title    string `json:"title"`
	StartISO string `json:"start_iso"`
	EndISO   string `json:"end_iso"`
}

type ScheduleOutcome struct {
	Event   *ScheduledEvent `json:"parsed_event,omitempty"`
	EventID string          `json:"event_id,omitempty"`
	Note    string          `json:"note,omitempty"`
}

type LogOutcome struct {
	EntryID string   `json:"entry_id"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

// ScribeResult carries exactly one outcome, selected by Mode.
type ScribeResult struct {
	Mode      ScribeMode       `json:"mode"`
	Schedule  *ScheduleOutcome `json:"schedule,omitempty"`
	Log       *LogOutcome      `json:"log,omitempty"`
	Reflect   *ArchivistResult `json:"reflect,omitempty"`
	ToolsUsed []string         `json:"tools_used"`
}

type ArchivistResult struct {
	Reflection        string                `json:"reflection"`
	RecentEntriesUsed []memory.JournalEntry `json:"recent_entries_used,omitempty"`
	SearchResultsUsed []memory.JournalEntry `json:"search_results_used,omitempty"`
}

// SentinelResult reports the authoritative home state and approval
// outcome; the narrative is presentation only.
type SentinelResult struct {
	State     memory.HomeState `json:"state"`
	Approved  bool             `json:"approved"`
	Narrative string           `json:"narrative"`
}
