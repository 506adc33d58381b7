package orchestration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	cases := []struct {
		message  string
		expected Flow
	}{
		{"add this to my calendar", FlowJournal},
		{"Please put the dentist appointment in my calendar", FlowJournal},
		{"Log: this is a diary entry", FlowJournal},
		{"note: remember to breathe", FlowJournal},
		{"What have I been saying about work lately?", FlowJournal},
		{"Show me patterns in my notes", FlowJournal},
		{"remind me who won the game", FlowJournal},
		{"Turn the lights off and lock the door.", FlowHome},
		{"set the thermostat to 21", FlowHome},
		{"Who was Ada Lovelace?", FlowKnowledge},
		{"latest news on UK interest rates", FlowKnowledge},
		{"hello there", FlowGeneral},
		{"", FlowGeneral},
	}

	for _, tc := range cases {
		decision := Route(tc.message)
		assert.Equal(t, tc.expected, decision.Flow, "message: %q", tc.message)
		assert.NotEmpty(t, decision.Reason)
	}
}

func TestRouteSchedulingBeatsKnowledge(t *testing.T) {
	// "remind me..." reads like a question but scheduling intent wins.
	decision := Route("Remind me what time the meeting is?")
	assert.Equal(t, FlowJournal, decision.Flow)
}

func TestRouteIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, FlowHome, Route("TURN THE LIGHTS ON").Flow)
	assert.Equal(t, FlowJournal, Route("LOG: shouting into the void").Flow)
}
