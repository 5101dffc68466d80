package unitofwork

import (
	"context"

	"college-buddy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentRepository() contract.DocumentRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
	AdvisingSessionRepository() contract.AdvisingSessionRepository
	ChatExchangeRepository() contract.ChatExchangeRepository
}
