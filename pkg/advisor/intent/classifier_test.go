package intent

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/llm"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestParseIntentNumber(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     Intent
	}{
		{
			name:     "bare number",
			response: "3",
			want:     IntentRaiderSuccessHub,
		},
		{
			name:     "number with label",
			response: "3 - Using Raider Success Hub",
			want:     IntentRaiderSuccessHub,
		},
		{
			name:     "number embedded in sentence",
			response: "The intent is 7.",
			want:     IntentNewStudentOrientation,
		},
		{
			name:     "no digits falls back to default",
			response: "I cannot determine the intent",
			want:     DefaultIntent,
		},
		{
			name:     "out of range falls back to default",
			response: "14",
			want:     DefaultIntent,
		},
		{
			name:     "zero falls back to default",
			response: "0",
			want:     DefaultIntent,
		},
		{
			name:     "empty response",
			response: "",
			want:     DefaultIntent,
		},
		{
			name:     "first integer wins",
			response: "either 2 or 9",
			want:     IntentCollegeRequirements,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIntentNumber(tt.response)
			if got != tt.want {
				t.Errorf("ParseIntentNumber(%q) = %d, want %d", tt.response, got, tt.want)
			}
		})
	}
}

func TestClassifyRecoversFromOddOutput(t *testing.T) {
	c := NewClassifier(&fakeLLM{response: "something without any numerals"}, testLogger())

	it, err := c.Classify(context.Background(), "how do I declare a major?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it != DefaultIntent {
		t.Errorf("got intent %d, want default %d", it, DefaultIntent)
	}
}

func TestClassifyWrapsTransportError(t *testing.T) {
	c := NewClassifier(&fakeLLM{err: errors.New("connection refused")}, testLogger())

	_, err := c.Classify(context.Background(), "how do I declare a major?")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !advisor.IsExternalServiceError(err) {
		t.Errorf("expected ExternalServiceError, got %T: %v", err, err)
	}
}

func TestAllIntentsHaveDefinitions(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("got %d intents, want 10", len(all))
	}
	for _, it := range all {
		if !it.Valid() {
			t.Errorf("intent %d not valid", it)
		}
		if it.Label() == "" {
			t.Errorf("intent %d has empty label", it)
		}
		if it.Instruction() == "" {
			t.Errorf("intent %d has empty instruction", it)
		}
		topics := it.ClarificationTopics()
		if len(topics) < 4 || len(topics) > 5 {
			t.Errorf("intent %d has %d topics, want 4-5", it, len(topics))
		}
	}
}
