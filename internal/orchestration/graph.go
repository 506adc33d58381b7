package orchestration

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/agenthands/majordomo/internal/agents"
	"github.com/agenthands/majordomo/internal/memory"
)

// Trace records which specialists and tools served one request.
type Trace struct {
	Flow   string   `json:"flow"`
	Agents []string `json:"agents"`
	Tools  []string `json:"tools"`
}

// Result holds the outcome of exactly one specialist, selected by flow.
type Result struct {
	Oracle   *agents.OracleResult   `json:"oracle,omitempty"`
	Scribe   *agents.ScribeResult   `json:"scribe,omitempty"`
	Sentinel *agents.SentinelResult `json:"sentinel,omitempty"`
}

// Graph resolves a flow to a specialist call: gather memory context,
// dispatch to one agent, record the trace. Steps run strictly in
// sequence with no retries; specialist errors propagate to the caller.
type Graph struct {
	oracle   *agents.Oracle
	scribe   *agents.Scribe
	sentinel *agents.Sentinel
	context  *memory.ContextBuilder
}

func NewGraph(oracle *agents.Oracle, scribe *agents.Scribe, sentinel *agents.Sentinel, contextBuilder *memory.ContextBuilder) *Graph {
	return &Graph{
		oracle:   oracle,
		scribe:   scribe,
		sentinel: sentinel,
		context:  contextBuilder,
	}
}

// contextIntent maps a flow to the memory pieces worth fetching for it.
func contextIntent(flow Flow) memory.Intent {
	switch flow {
	case FlowJournal:
		return memory.IntentDiaryReflection
	case FlowHome:
		return memory.IntentSmartHome
	default:
		return memory.IntentKnowledge
	}
}

func (g *Graph) Run(ctx context.Context, flow Flow, userID, message string) (Result, Trace, error) {
	trace := Trace{
		Flow:   string(flow),
		Agents: []string{},
		Tools:  []string{},
	}

	memCtx := g.context.Gather(ctx, userID, contextIntent(flow), message)
	ctxText := memCtx.Format()

	var result Result

	switch flow {
	case FlowJournal:
		trace.Agents = append(trace.Agents, "scribe")
		scribeResult, err := g.scribe.Handle(ctx, userID, message, ctxText)
		if err != nil {
			return Result{}, trace, err
		}
		result.Scribe = scribeResult
		trace.Tools = appendDistinct(trace.Tools, scribeResult.ToolsUsed...)

	case FlowHome:
		trace.Agents = append(trace.Agents, "sentinel")
		sentinelResult, err := g.sentinel.Handle(ctx, userID, message, ctxText)
		if err != nil {
			return Result{}, trace, err
		}
		result.Sentinel = sentinelResult

	default:
		// Knowledge, general, and anything unmatched all land on the
		// Oracle so the user always gets some answer.
		trace.Agents = append(trace.Agents, "oracle")
		oracleResult, err := g.oracle.Handle(ctx, message, ctxText)
		if err != nil {
			return Result{}, trace, err
		}
		result.Oracle = oracleResult
		trace.Tools = appendDistinct(trace.Tools, oracleResult.ToolUsed)
	}

	log.Debug().
		Str("flow", string(flow)).
		Strs("agents", trace.Agents).
		Strs("tools", trace.Tools).
		Msg("graph run complete")

	return result, trace, nil
}

func appendDistinct(dst []string, names ...string) []string {
	for _, name := range names {
		if name == "" {
			continue
		}
		seen := false
		for _, existing := range dst {
			if existing == name {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, name)
		}
	}
	return dst
}
