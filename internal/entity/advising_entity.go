package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdvisingSession struct {
	Id        uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ChatExchange is one completed query/answer pair. Exchanges are append-only
// and ordered by creation time within a session.
type ChatExchange struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Query     string
	Answer    string
	Intent    int
	CreatedAt time.Time
}
