// Package clarify builds the follow-up question shown between intent
// classification and final answer synthesis. It is a pure function of the
// static per-intent topic tables; no external calls.
package clarify

import (
	"fmt"
	"strings"

	"college-buddy-be/pkg/advisor/intent"
)

// defaultTopics cover intents whose curated list is too short to offer a
// meaningful choice
var defaultTopics = []string{
	"General information",
	"Specific examples",
	"Common issues",
	"Best practices",
}

const openInvitation = "Or feel free to ask about any other specific information you need."

const fallbackFifthOption = "Other specific information"

// Generate formats the clarification prompt for an intent: a lead-in naming
// the category, five numbered options, and an open invitation.
func Generate(it intent.Intent) string {
	options := optionsFor(it)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("To better assist you with your query about %s, could you please specify what aspect you're most interested in?\n\n", it.Label()))
	b.WriteString("You can choose from options like:\n")
	for i, opt := range options {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, opt))
	}
	b.WriteString("\n")
	b.WriteString(openInvitation)

	return b.String()
}

// Options returns the concrete list offered for an intent, always 4-5
// entries, none empty.
func Options(it intent.Intent) []string {
	return optionsFor(it)
}

func optionsFor(it intent.Intent) []string {
	topics := it.ClarificationTopics()
	if len(topics) < 4 {
		topics = append([]string{}, defaultTopics...)
	}

	if len(topics) >= 5 {
		return topics[:5]
	}
	// Curated lists of exactly four get a catch-all fifth slot
	return append(topics, fallbackFifthOption)
}
