package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agenthands/majordomo/internal/llm"
	"github.com/agenthands/majordomo/internal/memory"
	"github.com/agenthands/majordomo/internal/tools"
)

// Sentinel is the smart-home controller. State changes go through an
// approval gate before any device state is touched.
type Sentinel struct {
	llm      llm.LLMClient
	registry *tools.Registry
	cache    *memory.StateCache
}

func NewSentinel(llmClient llm.LLMClient, registry *tools.Registry, cache *memory.StateCache) *Sentinel {
	return &Sentinel{llm: llmClient, registry: registry, cache: cache}
}

// parseIntents extracts the partial state update implied by the message.
// Lights and doors are detected independently; a message can carry both.
func parseIntents(message string) map[string]string {
	lower := strings.ToLower(message)
	update := map[string]string{}

	if strings.Contains(lower, "lights") && strings.Contains(lower, "off") {
		update["lights"] = "off"
	} else if strings.Contains(lower, "lights") && strings.Contains(lower, "on") {
		update["lights"] = "on"
	}

	// "unlock" contains "lock", so the unlock check runs second and wins.
	if strings.Contains(lower, "lock") && strings.Contains(lower, "door") {
		update["doors_locked"] = "locked"
	}
	if strings.Contains(lower, "unlock") && strings.Contains(lower, "door") {
		update["doors_locked"] = "unlocked"
	}

	return update
}

func (s *Sentinel) Handle(ctx context.Context, userID, message, contextText string) (*SentinelResult, error) {
	update := parseIntents(message)

	approved := true
	if len(update) > 0 {
		approved = false
		if approve, ok := tools.Lookup[tools.ApproveFunc](s.registry, tools.HumanApprove); ok {
			approved = approve(fmt.Sprintf("Update home state for user %s to %v", userID, update))
		}
	}

	var state memory.HomeState
	if len(update) > 0 && approved {
		state = s.applyUpdate(ctx, userID, update)
	} else {
		state = s.currentState(ctx, userID)
	}

	stateJSON, _ := json.Marshal(state)
	prompt := fmt.Sprintf(`%s

Previous context:
%s

User request:
%s

Action approval: %t
Resulting (simulated) home state:
%s

Explain briefly what you did and what the state is now.`,
		SentinelBase, contextText, message, approved, stateJSON)

	narrative, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("sentinel narrative generation: %w", err)
	}

	return &SentinelResult{
		State:     state,
		Approved:  approved,
		Narrative: narrative,
	}, nil
}

func (s *Sentinel) applyUpdate(ctx context.Context, userID string, update map[string]string) memory.HomeState {
	if setState, ok := tools.Lookup[tools.HomeSetFunc](s.registry, tools.SmartHomeSetState); ok {
		if state, err := setState(ctx, userID, update); err == nil {
			return state
		}
	}
	// Device collaborator failed or missing: last known cached state.
	return s.cache.Get(userID)
}

func (s *Sentinel) currentState(ctx context.Context, userID string) memory.HomeState {
	if getState, ok := tools.Lookup[tools.HomeGetFunc](s.registry, tools.SmartHomeGetState); ok {
		if state, err := getState(ctx, userID); err == nil {
			return state
		}
	}
	return s.cache.Get(userID)
}
