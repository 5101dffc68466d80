// Package state implements the per-session conversation state machine for
// the two-phase advising interaction. A session is either Idle or awaiting
// the user's answer to a clarification prompt; there are no other states.
package state

import (
	"time"

	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/advisor/intent"
)

// Phase names
const (
	PhaseIdle                  = "IDLE"
	PhaseAwaitingClarification = "AWAITING_CLARIFICATION"
)

// ConversationState is the explicit per-session record. It is owned by the
// session's in-memory store and mutated only through the transition methods
// below, which preserve the invariant: AwaitingClarification is true exactly
// when PendingQuery and PendingIntent are both set.
type ConversationState struct {
	SessionID string

	AwaitingClarification bool
	PendingQuery          string
	PendingIntent         intent.Intent // zero value = unset
	PendingPrompt         string

	UpdatedAt time.Time
}

// New returns the Idle state for a fresh session
func New(sessionID string) *ConversationState {
	return &ConversationState{
		SessionID: sessionID,
		UpdatedAt: time.Now(),
	}
}

// Phase reports the current state name
func (s *ConversationState) Phase() string {
	if s.AwaitingClarification {
		return PhaseAwaitingClarification
	}
	return PhaseIdle
}

// Valid checks the state invariant
func (s *ConversationState) Valid() bool {
	if s.AwaitingClarification {
		return s.PendingQuery != "" && s.PendingIntent.Valid()
	}
	return s.PendingQuery == "" && s.PendingIntent == 0 && s.PendingPrompt == ""
}

// BeginClarification transitions Idle -> AwaitingClarification for a new
// top-level query. Calling it while already awaiting is a cancel-and-replace:
// the previous pending query is discarded and reported via the return value
// so the caller can log the replacement.
func (s *ConversationState) BeginClarification(query string, it intent.Intent, prompt string) (replaced string, err error) {
	if query == "" {
		return "", advisor.ErrEmptyInput
	}
	if !it.Valid() {
		it = intent.DefaultIntent
	}

	replaced = ""
	if s.AwaitingClarification {
		replaced = s.PendingQuery
	}

	s.AwaitingClarification = true
	s.PendingQuery = query
	s.PendingIntent = it
	s.PendingPrompt = prompt
	s.UpdatedAt = time.Now()

	return replaced, nil
}

// PendingExchange is what CompleteClarification hands back to the caller so
// retrieval and synthesis can run against a consistent snapshot.
type PendingExchange struct {
	Query  string
	Intent intent.Intent
	Prompt string
}

// CompleteClarification transitions AwaitingClarification -> Idle, returning
// the pending exchange. It fails without side effects when nothing is
// pending, so a stray clarification never corrupts the session.
func (s *ConversationState) CompleteClarification() (*PendingExchange, error) {
	if !s.AwaitingClarification {
		return nil, advisor.ErrNoPendingClarification
	}

	pending := &PendingExchange{
		Query:  s.PendingQuery,
		Intent: s.PendingIntent,
		Prompt: s.PendingPrompt,
	}

	s.reset()
	return pending, nil
}

// Abort returns the session to Idle after a failed transition, discarding
// any pending exchange.
func (s *ConversationState) Abort() {
	s.reset()
}

func (s *ConversationState) reset() {
	s.AwaitingClarification = false
	s.PendingQuery = ""
	s.PendingIntent = 0
	s.PendingPrompt = ""
	s.UpdatedAt = time.Now()
}
