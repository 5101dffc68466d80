package intent

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/llm"
)

const classifierSystemPrompt = "You are an intent identification assistant specializing in queries about Texas Tech University."

var firstIntegerRe = regexp.MustCompile(`\d+`)

// Classifier maps a free-text query to one of the ten intent categories with
// a single constrained LLM call. Unparseable or out-of-range answers fall
// back to DefaultIntent; classification never fails because of model output.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Classify resolves the intent of a query. The only error it returns is an
// ExternalServiceError from the completion boundary itself.
func (c *Classifier) Classify(ctx context.Context, query string) (Intent, error) {
	prompt := buildClassificationPrompt(query)

	response, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: classifierSystemPrompt},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.0))
	if err != nil {
		return 0, advisor.NewExternalServiceError(advisor.BoundaryCompletion, err)
	}

	it := ParseIntentNumber(response)
	c.logger.Printf("[INTENT] Resolved %d (%s) for query of %d chars", it.Number(), it.Label(), len(query))
	return it, nil
}

// ParseIntentNumber scans raw model output for the first integer substring
// and maps it to an Intent. Missing or out-of-range integers yield
// DefaultIntent; misbehaving model output is recovered here, never surfaced.
func ParseIntentNumber(response string) Intent {
	match := firstIntegerRe.FindString(response)
	if match == "" {
		return DefaultIntent
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return DefaultIntent
	}

	it, ok := FromNumber(n)
	if !ok {
		return DefaultIntent
	}
	return it
}

func buildClassificationPrompt(query string) string {
	var b strings.Builder

	b.WriteString("Identify the primary intent of this query related to academic advising or student life at Texas Tech University. Choose from the following intents:\n")
	for _, it := range All() {
		b.WriteString(fmt.Sprintf("%d. %s\n", it.Number(), it.Label()))
	}
	b.WriteString("\nRespond with ONLY the number (1-10) of the most relevant intent.\n\n")
	b.WriteString("Query: ")
	b.WriteString(query)

	return b.String()
}
