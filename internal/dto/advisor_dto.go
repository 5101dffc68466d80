package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Greeting string    `json:"greeting"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type AskRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Query     string    `json:"query" validate:"required"`
}

// AskResponse carries the clarification prompt the student must answer before
// an answer is synthesized.
type AskResponse struct {
	SessionId       uuid.UUID `json:"session_id"`
	Intent          int       `json:"intent"`
	IntentLabel     string    `json:"intent_label"`
	Clarification   string    `json:"clarification"`
	ReplacedPending string    `json:"replaced_pending,omitempty"` // set when a new query cancelled an earlier pending one
}

type ClarifyRequest struct {
	SessionId     uuid.UUID `json:"session_id" validate:"required"`
	Clarification string    `json:"clarification" validate:"required"`
}

type ClarifyResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Query     string    `json:"query"` // original query combined with the clarification
	Answer    string    `json:"answer"`
	Intent    int       `json:"intent"`
}

type ChatExchangeResponse struct {
	Id        uuid.UUID `json:"id"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	Intent    int       `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}

type GetHistoryResponse struct {
	SessionId uuid.UUID              `json:"session_id"`
	Exchanges []ChatExchangeResponse `json:"exchanges"`
}
