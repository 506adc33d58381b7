package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agenthands/majordomo/internal/common"
	"github.com/agenthands/majordomo/internal/llm"
	"github.com/agenthands/majordomo/internal/memory"
	"github.com/agenthands/majordomo/internal/tools"
)

const eventTimeLayout = "2006-01-02T15:04:05"

var schedulingKeywords = []string{
	"add to my calendar",
	"add this to my calendar",
	"add it to my calendar",
	"put this in my calendar",
	"put it in my calendar",
	"schedule",
	"book in",
	"set a reminder",
	"remind me",
	"create an event",
	"create event",
	"calendar",
	"meeting",
	"appointment",
	"dinner with",
	"call with",
}

var logKeywords = []string{
	"log:",
	"log ",
	"note:",
	"note ",
	"diary",
	"journal",
	"note to self",
	"write this down",
	"record this",
	"remember that",
}

// Scribe captures diary entries, schedules events, and reflects over
// past notes (delegating to the Archivist when one is configured).
type Scribe struct {
	llm       llm.LLMClient
	registry  *tools.Registry
	journal   *memory.JournalStore
	archivist *Archivist
}

func NewScribe(llmClient llm.LLMClient, registry *tools.Registry, journal *memory.JournalStore, archivist *Archivist) *Scribe {
	return &Scribe{
		llm:       llmClient,
		registry:  registry,
		journal:   journal,
		archivist: archivist,
	}
}

// ClassifyMode picks the sub-mode for a message. Evaluated in order:
// scheduling language wins, then explicit log/diary phrasing, then
// reflection as the default.
func (s *Scribe) ClassifyMode(message string) ScribeMode {
	text := strings.ToLower(message)

	if containsAny(text, schedulingKeywords) {
		return ModeSchedule
	}
	if containsAny(text, logKeywords) {
		return ModeLog
	}
	return ModeReflect
}

func (s *Scribe) Handle(ctx context.Context, userID, message, contextText string) (*ScribeResult, error) {
	switch s.ClassifyMode(message) {
	case ModeSchedule:
		outcome, toolsUsed, err := s.scheduleEvent(ctx, userID, message)
		if err != nil {
			return nil, err
		}
		return &ScribeResult{Mode: ModeSchedule, Schedule: outcome, ToolsUsed: toolsUsed}, nil

	case ModeLog:
		outcome, err := s.CaptureEntry(ctx, userID, message, contextText)
		if err != nil {
			return nil, err
		}
		return &ScribeResult{Mode: ModeLog, Log: outcome, ToolsUsed: []string{}}, nil

	default:
		outcome, err := s.Reflect(ctx, userID, message, contextText)
		if err != nil {
			return nil, err
		}
		return &ScribeResult{Mode: ModeReflect, Reflect: outcome, ToolsUsed: []string{}}, nil
	}
}

// scheduleEvent extracts a structured event from free text with the LLM
// and hands it to the calendar tool. No event is created unless a usable
// start time comes out of extraction.
func (s *Scribe) scheduleEvent(ctx context.Context, userID, message string) (*ScheduleOutcome, []string, error) {
	toolsUsed := []string{}

	createEvent, ok := tools.Lookup[tools.CreateEventFunc](s.registry, tools.CalendarCreateEvent)
	if !ok {
		return &ScheduleOutcome{
			Note: "I tried to schedule this, but my calendar tool isn't available. " +
				"You may need to add it manually for now.",
		}, toolsUsed, nil
	}

	prompt := fmt.Sprintf(`%s

You are the Scribe, responsible for turning user scheduling requests
into precise calendar events.

The user says:
"""%s"""

1. Carefully infer:
   - A short, human-friendly title summarising the event.
   - A start datetime.
   - An end datetime (if none is given, default to 1 hour after start).

2. Normalise both datetimes to ISO 8601 format WITHOUT timezone offsets,
   in the exact form: YYYY-MM-DDTHH:MM:SS
   Examples:
   - "2025-12-12T19:00:00"
   - "2025-06-01T09:30:00"

3. If you truly cannot infer a start date/time at all, set "start_iso"
   to null and "end_iso" to null, but do this only as a last resort.
   Prefer making a reasonable assumption over returning null.

4. ALWAYS respond with a single, strictly valid JSON object and nothing else.
   The JSON must have exactly these keys:
   - "title": string
   - "start_iso": string or null
   - "end_iso": string or null`,
		ScribeBase, message)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("event extraction: %w", err)
	}

	spec, err := common.ParseJSON[ScheduledEvent](raw)
	if err != nil {
		return &ScheduleOutcome{
			Note: "I tried to interpret your scheduling request with my LLM-based planner, " +
				"but I couldn't extract a usable date/time. Please try again with something like: " +
				"'Dinner with Annie on 2025-12-12 from 19:00 to 22:00'.",
		}, toolsUsed, nil
	}

	if spec.Title == "" {
		spec.Title = message
	}

	if spec.StartISO == "" {
		return &ScheduleOutcome{
			Event: &spec,
			Note: "My LLM planner couldn't confidently infer any start time at all " +
				"from your message, so I didn't create an event. " +
				"Try including an explicit date and time.",
		}, toolsUsed, nil
	}

	if spec.EndISO == "" {
		if start, perr := time.Parse(eventTimeLayout, spec.StartISO); perr == nil {
			spec.EndISO = start.Add(time.Hour).Format(eventTimeLayout)
		} else {
			// Zero-length event beats total failure.
			spec.EndISO = spec.StartISO
		}
	}

	outcome := &ScheduleOutcome{Event: &spec}

	eventID, err := createEvent(ctx, userID, spec.Title, spec.StartISO, spec.EndISO,
		fmt.Sprintf("Created by Scribe for user %s", userID))
	if err != nil {
		outcome.Note = fmt.Sprintf("Attempted to create the event but hit an error: %v", err)
		return outcome, toolsUsed, nil
	}

	toolsUsed = append(toolsUsed, tools.CalendarCreateEvent)
	outcome.EventID = eventID
	outcome.Note = "Event created successfully in your calendar."
	return outcome, toolsUsed, nil
}

// CaptureEntry summarises a raw diary message and persists it.
func (s *Scribe) CaptureEntry(ctx context.Context, userID, message, contextText string) (*LogOutcome, error) {
	rawText := strings.TrimSpace(message)
	lower := strings.ToLower(rawText)
	switch {
	case strings.HasPrefix(lower, "log:"), strings.HasPrefix(lower, "log "):
		rawText = strings.TrimSpace(rawText[4:])
	case strings.HasPrefix(lower, "note:"), strings.HasPrefix(lower, "note "):
		rawText = strings.TrimSpace(rawText[5:])
	}

	prompt := fmt.Sprintf(`%s

Existing context:
%s

New diary entry:
%s

Task:
1. Write a concise 1-2 sentence summary of the entry.
2. Suggest 3-5 tags (people, places, themes, emotions).

Return ONLY the summary text; tags will be stubbed in v1.`,
		ScribeBase, contextText, rawText)

	summary, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("entry summarisation: %w", err)
	}

	tags := []string{"diary", "v1"}
	entryID, err := s.journal.SaveEntry(ctx, userID, rawText, summary, tags)
	if err != nil {
		return nil, err
	}

	return &LogOutcome{EntryID: entryID, Summary: summary, Tags: tags}, nil
}

// Reflect analyses past entries. Delegates to the Archivist when one is
// configured, otherwise falls back to a simpler reflection over the
// pre-assembled context text.
func (s *Scribe) Reflect(ctx context.Context, userID, message, contextText string) (*ArchivistResult, error) {
	if s.archivist != nil {
		return s.archivist.Handle(ctx, userID, message, contextText)
	}

	prompt := fmt.Sprintf(`%s

Context (user profile + recent diary entries):
%s

User request:
%s

Task:
1. Identify 2-4 recurring themes in the user's recent notes.
2. Describe any noticeable changes over time.
3. Suggest 2-3 gentle, practical next steps or reflection questions.

Keep it under 250 words.`,
		ScribeBase, contextText, message)

	reflection, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("reflection generation: %w", err)
	}
	return &ArchivistResult{Reflection: reflection}, nil
}
