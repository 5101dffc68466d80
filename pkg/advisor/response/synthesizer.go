// Package response assembles the final grounded answer. All reasoning is
// delegated to the model; the contract here is only what goes into the
// prompt and in what order, so behavior stays reproducible.
package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/advisor/intent"
	"college-buddy-be/pkg/llm"
)

const collegeBuddySystemPrompt = "You are College Buddy, an AI assistant designed to help students with their academic queries at Texas Tech University."

// ApologyMessage is what the user sees when an external boundary fails
// mid-interaction. The underlying error is logged, never shown.
const ApologyMessage = "I'm sorry, but I encountered an error while processing your query. Could you please try rephrasing your question?"

// Synthesizer produces the final answer from the original query, the
// resolved intent, the combined retrieval context and the user's
// clarification.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewSynthesizer(llmProvider llm.LLMProvider, logger *log.Logger) *Synthesizer {
	return &Synthesizer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Synthesize issues one completion call with the fixed-order prompt:
// original query, intent, intent instruction, combined context,
// clarification. Returns the trimmed response text.
func (s *Synthesizer) Synthesize(
	ctx context.Context,
	query string,
	it intent.Intent,
	combinedContext string,
	clarification string,
) (string, error) {

	prompt := BuildPrompt(query, it, combinedContext, clarification)

	answer, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: collegeBuddySystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", advisor.NewExternalServiceError(advisor.BoundaryCompletion, err)
	}

	s.logger.Printf("[SYNTHESIS] Answer generated (intent %d, context %d chars)", it.Number(), len(combinedContext))
	return strings.TrimSpace(answer), nil
}

// BuildPrompt keeps the section order fixed. Exposed for tests.
func BuildPrompt(query string, it intent.Intent, combinedContext, clarification string) string {
	if clarification == "" {
		clarification = "No clarification provided"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Original Query: %s\n", query))
	b.WriteString(fmt.Sprintf("Intent: %d. %s\n", it.Number(), it.Label()))
	b.WriteString(fmt.Sprintf("System Instruction: %s\n", it.Instruction()))
	b.WriteString(fmt.Sprintf("Context: %s\n", combinedContext))
	b.WriteString(fmt.Sprintf("User Clarification: %s\n\n", clarification))
	b.WriteString("Generate a comprehensive response based on the above information, paying special attention to the clarification context.")

	return b.String()
}
