package clarify

import (
	"fmt"
	"strings"
	"testing"

	"college-buddy-be/pkg/advisor/intent"
)

func TestOptionsForEveryIntent(t *testing.T) {
	for _, it := range intent.All() {
		t.Run(it.Label(), func(t *testing.T) {
			options := Options(it)
			if len(options) < 4 || len(options) > 5 {
				t.Fatalf("got %d options, want 4-5", len(options))
			}
			for i, opt := range options {
				if strings.TrimSpace(opt) == "" {
					t.Errorf("option %d is empty", i+1)
				}
			}
		})
	}
}

func TestGenerateStructure(t *testing.T) {
	for _, it := range intent.All() {
		prompt := Generate(it)

		if !strings.Contains(prompt, it.Label()) {
			t.Errorf("intent %d: prompt does not mention label %q", it, it.Label())
		}
		for i, opt := range Options(it) {
			numbered := fmt.Sprintf("%d. %s", i+1, opt)
			if !strings.Contains(prompt, numbered) {
				t.Errorf("intent %d: prompt missing option %q", it, numbered)
			}
		}
		if !strings.Contains(prompt, "any other specific information") {
			t.Errorf("intent %d: prompt missing open invitation", it)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, it := range intent.All() {
		if Generate(it) != Generate(it) {
			t.Errorf("intent %d: Generate is not deterministic", it)
		}
	}
}
