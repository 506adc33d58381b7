package orchestration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajordomoHandleMessageEndToEnd(t *testing.T) {
	// First generation answers the specialist, second phrases the reply.
	llm := &mockLLM{queue: []string{"specialist answer", "final friendly reply"}}
	fx := newGraphFixture(t, llm)
	hub := NewMajordomo(llm, fx.graph)

	resp, err := hub.HandleMessage(context.Background(), "bryn", "Who was Ada Lovelace?", nil)
	require.NoError(t, err)

	assert.Equal(t, "final friendly reply", resp.Reply)
	assert.Equal(t, "knowledge", resp.Trace.Flow)
	require.NotNil(t, resp.SpecialistResult.Oracle)
	assert.Equal(t, "specialist answer", resp.SpecialistResult.Oracle.Answer)

	// The phrasing prompt embeds the specialist result and trace.
	assert.Contains(t, llm.lastPrompt(), "specialist answer")
	assert.Contains(t, llm.lastPrompt(), `"flow":"knowledge"`)
}

func TestMajordomoIncludesHistoryInPrompt(t *testing.T) {
	llm := &mockLLM{queue: []string{"specialist answer", "reply"}}
	fx := newGraphFixture(t, llm)
	hub := NewMajordomo(llm, fx.graph)

	history := []ConversationTurn{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	_, err := hub.HandleMessage(context.Background(), "bryn", "Who was Ada Lovelace?", history)
	require.NoError(t, err)

	prompt := llm.lastPrompt()
	assert.Contains(t, prompt, "Recent conversation:")
	assert.Contains(t, prompt, "user: earlier question")
	assert.Contains(t, prompt, "assistant: earlier answer")
}

func TestMajordomoWrapsGraphErrors(t *testing.T) {
	llm := &mockLLM{err: errors.New("llm down")}
	fx := newGraphFixture(t, llm)
	hub := NewMajordomo(llm, fx.graph)

	_, err := hub.HandleMessage(context.Background(), "bryn", "Who was Ada Lovelace?", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graph run (flow knowledge)")
}
