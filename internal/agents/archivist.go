package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/majordomo/internal/llm"
	"github.com/agenthands/majordomo/internal/memory"
	"github.com/agenthands/majordomo/internal/tools"
)

const archivistEntryLimit = 15

// Archivist answers meta-questions about the user's history, e.g.
// "What have I been saying about work?" or "Show me patterns in my notes".
type Archivist struct {
	llm      llm.LLMClient
	registry *tools.Registry
}

func NewArchivist(llmClient llm.LLMClient, registry *tools.Registry) *Archivist {
	return &Archivist{llm: llmClient, registry: registry}
}

func (a *Archivist) Handle(ctx context.Context, userID, message, contextText string) (*ArchivistResult, error) {
	var recentEntries []memory.JournalEntry
	var searchResults []memory.JournalEntry

	// Either tool failing degrades to an empty list, not an error.
	if recentFn, ok := tools.Lookup[tools.JournalRecentFunc](a.registry, tools.JournalRecent); ok {
		if entries, err := recentFn(ctx, userID, archivistEntryLimit); err == nil {
			recentEntries = entries
		}
	}
	if searchFn, ok := tools.Lookup[tools.JournalSearchFunc](a.registry, tools.JournalSearch); ok {
		if entries, err := searchFn(ctx, userID, message, archivistEntryLimit); err == nil {
			searchResults = entries
		}
	}

	prompt := fmt.Sprintf(`%s

You are acting in your 'archivist' capacity: your job is to analyse
the user's past diary entries and answer meta-questions about them.

User question:
%s

Recent diary entries:
%s

Diary entries that appear related to this question:
%s

Task:
1. Identify the main themes that are relevant to the user's question.
2. Highlight any noticeable changes or trends over time.
3. Provide 2-3 gentle, practical reflections or next steps.

Keep the answer under 300 words.
Be specific but kind and non-judgmental.`,
		ScribeBase, message, formatEntryBullets(recentEntries), formatEntryBullets(searchResults))

	reflection, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("archivist reflection generation: %w", err)
	}

	return &ArchivistResult{
		Reflection:        reflection,
		RecentEntriesUsed: recentEntries,
		SearchResultsUsed: searchResults,
	}, nil
}

func formatEntryBullets(entries []memory.JournalEntry) string {
	if len(entries) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Timestamp.Format("2006-01-02T15:04:05"), e.Summary))
	}
	return strings.Join(lines, "\n")
}
