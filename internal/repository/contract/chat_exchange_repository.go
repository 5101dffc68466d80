package contract

import (
	"context"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatExchangeRepository interface {
	Create(ctx context.Context, exchange *entity.ChatExchange) error
	// FindBySessionId returns a session's exchanges oldest first.
	FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatExchange, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatExchange, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
