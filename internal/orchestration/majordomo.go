package orchestration

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/agenthands/majordomo/internal/agents"
	"github.com/agenthands/majordomo/internal/llm"
)

// ConversationTurn is one message in a session's history. History is
// owned by the HTTP shell; the hub only consumes recent turns as extra
// prompt context.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// HubResponse is the hub's full answer: the phrased reply plus the raw
// trace and specialist result for observability.
type HubResponse struct {
	Reply            string `json:"reply"`
	Trace            Trace  `json:"trace"`
	SpecialistResult Result `json:"specialist_result"`
}

// Majordomo is the hub agent: it routes each message, runs the graph,
// and has the LLM phrase the specialist's raw result for the user.
type Majordomo struct {
	llm   llm.LLMClient
	graph *Graph
}

func NewMajordomo(llmClient llm.LLMClient, graph *Graph) *Majordomo {
	return &Majordomo{llm: llmClient, graph: graph}
}

func (m *Majordomo) HandleMessage(ctx context.Context, userID, message string, history []ConversationTurn) (*HubResponse, error) {
	decision := Route(message)
	log.Info().
		Str("user_id", userID).
		Str("flow", string(decision.Flow)).
		Str("reason", decision.Reason).
		Msg("routed message")

	result, trace, err := m.graph.Run(ctx, decision.Flow, userID, message)
	if err != nil {
		return nil, fmt.Errorf("graph run (flow %s): %w", decision.Flow, err)
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	traceJSON, _ := json.Marshal(trace)

	var historyBlock string
	if len(history) > 0 {
		lines := make([]string, 0, len(history))
		for _, turn := range history {
			lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
		}
		historyBlock = "Recent conversation:\n" + strings.Join(lines, "\n") + "\n\n"
	}

	prompt := fmt.Sprintf(`%s

%sUser message:
%s

Internal result (from specialists):
%s

Flow trace:
%s

Write a concise, user-facing reply that:
- Restates the key thing you did.
- Presents the result clearly.
- Mentions any useful next step or how the user might follow up.
Keep it under 300 words.`,
		agents.MajordomoBase, historyBlock, message, resultJSON, traceJSON)

	reply, err := m.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("final reply generation: %w", err)
	}

	return &HubResponse{
		Reply:            reply,
		Trace:            trace,
		SpecialistResult: result,
	}, nil
}
