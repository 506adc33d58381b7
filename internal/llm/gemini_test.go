package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("hello")}}},
		},
	}

	text, err := textFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestTextFromResponseHandlesBlockedCandidates(t *testing.T) {
	cases := []*genai.GenerateContentResponse{
		{},
		{Candidates: []*genai.Candidate{{Content: nil}}},
		{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
	}

	for i, resp := range cases {
		_, err := textFromResponse(resp)
		assert.Error(t, err, "case %d", i)
	}
}
