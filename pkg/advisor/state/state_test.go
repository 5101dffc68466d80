package state

import (
	"errors"
	"testing"

	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/advisor/intent"
)

func TestNewStateIsIdleAndValid(t *testing.T) {
	s := New("session-1")
	if s.Phase() != PhaseIdle {
		t.Errorf("got phase %s, want %s", s.Phase(), PhaseIdle)
	}
	if !s.Valid() {
		t.Error("fresh state violates invariant")
	}
}

func TestBeginClarification(t *testing.T) {
	s := New("session-1")

	replaced, err := s.BeginClarification("how do I declare?", intent.IntentDeclareMajorProcess, "clarify prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced != "" {
		t.Errorf("got replaced %q, want empty", replaced)
	}
	if s.Phase() != PhaseAwaitingClarification {
		t.Errorf("got phase %s, want %s", s.Phase(), PhaseAwaitingClarification)
	}
	if !s.Valid() {
		t.Error("state violates invariant after BeginClarification")
	}
}

func TestBeginClarificationRejectsEmptyQuery(t *testing.T) {
	s := New("session-1")

	_, err := s.BeginClarification("", intent.IntentDeclareMajorProcess, "prompt")
	if !errors.Is(err, advisor.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
	if s.Phase() != PhaseIdle || !s.Valid() {
		t.Error("rejected input must not change state")
	}
}

func TestBeginClarificationCancelAndReplace(t *testing.T) {
	s := New("session-1")
	if _, err := s.BeginClarification("first question", intent.IntentStudentLife, "p1"); err != nil {
		t.Fatal(err)
	}

	replaced, err := s.BeginClarification("second question", intent.IntentDiningNutrition, "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced != "first question" {
		t.Errorf("got replaced %q, want %q", replaced, "first question")
	}
	if s.PendingQuery != "second question" || s.PendingIntent != intent.IntentDiningNutrition {
		t.Error("pending exchange was not replaced")
	}
	if !s.Valid() {
		t.Error("state violates invariant after replace")
	}
}

func TestCompleteClarification(t *testing.T) {
	s := New("session-1")
	if _, err := s.BeginClarification("what forms?", intent.IntentGPACourseRequirements, "prompt"); err != nil {
		t.Fatal(err)
	}

	pending, err := s.CompleteClarification()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending.Query != "what forms?" {
		t.Errorf("got query %q, want %q", pending.Query, "what forms?")
	}
	if pending.Intent != intent.IntentGPACourseRequirements {
		t.Errorf("got intent %d, want %d", pending.Intent, intent.IntentGPACourseRequirements)
	}
	if s.Phase() != PhaseIdle || !s.Valid() {
		t.Error("state must be Idle and valid after completion")
	}
}

func TestCompleteClarificationWhileIdle(t *testing.T) {
	s := New("session-1")

	_, err := s.CompleteClarification()
	if !errors.Is(err, advisor.ErrNoPendingClarification) {
		t.Fatalf("got %v, want ErrNoPendingClarification", err)
	}
	if s.Phase() != PhaseIdle || !s.Valid() {
		t.Error("failed completion must not change state")
	}
}

func TestAbortReturnsToIdle(t *testing.T) {
	s := New("session-1")
	if _, err := s.BeginClarification("q", intent.IntentAcademicAdvising, "p"); err != nil {
		t.Fatal(err)
	}

	s.Abort()
	if s.Phase() != PhaseIdle || !s.Valid() {
		t.Error("state must be Idle and valid after abort")
	}
}

func TestInvariantHoldsThroughTransitionSequence(t *testing.T) {
	s := New("session-1")
	steps := []func(){
		func() { s.BeginClarification("a", intent.IntentDeclareMajorProcess, "p") },
		func() { s.CompleteClarification() },
		func() { s.CompleteClarification() }, // rejected, no change
		func() { s.BeginClarification("b", intent.IntentProgramInformation, "p") },
		func() { s.BeginClarification("c", intent.IntentStudentLife, "p") }, // replace
		func() { s.Abort() },
	}

	for i, step := range steps {
		step()
		if !s.Valid() {
			t.Fatalf("invariant violated after step %d (phase %s)", i, s.Phase())
		}
	}
}
