package orchestration

import (
	"strings"
)

// Flow is the routed category of a user request.
type Flow string

const (
	FlowGeneral   Flow = "general"
	FlowKnowledge Flow = "knowledge"
	FlowJournal   Flow = "journal" // Scribe / Archivist / calendar
	FlowHome      Flow = "home"    // Sentinel / IoT
)

// RoutingDecision carries the chosen flow plus a human-readable reason.
// The reason is for tracing only; no logic depends on it.
type RoutingDecision struct {
	Flow   Flow
	Reason string
}

var schedulingPhrases = []string{
	"add to my calendar",
	"add this to my calendar",
	"put this in my calendar",
	"put it in my calendar",
	"schedule",
	"book in",
	"set a reminder",
	"remind me",
	"create an event",
	"create event",
}

var journalPhrases = []string{
	"journal",
	"diary",
	"note to self",
	"log this",
	"write this down",
	"record this",
	"remember that",
}

var journalPrefixes = []string{
	"log:",
	"log ",
	"note:",
}

var reflectionPhrases = []string{
	"reflect",
	"pattern",
	"trend",
	"lately",
	"recent notes",
	"my notes",
}

var calendarVerbs = []string{"add", "put", "schedule", "create", "remind"}

var homeKeywords = []string{
	"lights",
	"light on",
	"light off",
	"thermostat",
	"heating",
	"temperature",
	"aircon",
	"smart plug",
	"lock the door",
	"unlock the door",
	"front door",
	"garage door",
}

var knowledgeTriggers = []string{
	"who ",
	"what ",
	"when ",
	"where ",
	"why ",
	"how ",
	"latest",
	"news",
	"update",
	"price",
	"score",
	"result",
	"weather",
	"population",
	"definition",
	"meaning",
	"history",
	"information",
	"info",
}

type routingRule struct {
	match  func(text string) bool
	flow   Flow
	reason string
}

// The rule order encodes the tie-break policy: phrase sets overlap, so
// e.g. "add to my calendar" must be claimed by scheduling before the
// generic knowledge triggers get a look. First match wins.
var routingRules = []routingRule{
	{
		match: func(text string) bool {
			return strings.Contains(text, "calendar") && containsAnyPhrase(text, calendarVerbs)
		},
		flow:   FlowJournal,
		reason: "calendar + scheduling verb -> journal/scheduling flow",
	},
	{
		match:  func(text string) bool { return containsAnyPhrase(text, schedulingPhrases) },
		flow:   FlowJournal,
		reason: "scheduling/reminder intent -> journal flow",
	},
	{
		match: func(text string) bool {
			return containsAnyPhrase(text, journalPhrases) || hasAnyPrefix(text, journalPrefixes)
		},
		flow:   FlowJournal,
		reason: "journal/diary intent -> journal flow",
	},
	{
		match:  func(text string) bool { return containsAnyPhrase(text, reflectionPhrases) },
		flow:   FlowJournal,
		reason: "reflection over past notes -> journal flow",
	},
	{
		match:  func(text string) bool { return containsAnyPhrase(text, homeKeywords) },
		flow:   FlowHome,
		reason: "home/IoT-related intent -> sentinel flow",
	},
	{
		match: func(text string) bool {
			return strings.Contains(text, "?") || containsAnyPhrase(text, knowledgeTriggers)
		},
		flow:   FlowKnowledge,
		reason: "question/information intent -> oracle flow",
	},
}

// Route classifies a raw user message into a flow. Pure function: no
// side effects and no failure mode; unmatched input falls through to the
// general conversation flow.
func Route(message string) RoutingDecision {
	text := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range routingRules {
		if rule.match(text) {
			return RoutingDecision{Flow: rule.flow, Reason: rule.reason}
		}
	}

	return RoutingDecision{
		Flow:   FlowGeneral,
		Reason: "default -> general conversation flow",
	}
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(text string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
