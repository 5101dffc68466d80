package contract

import (
	"context"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdvisingSessionRepository interface {
	Create(ctx context.Context, session *entity.AdvisingSession) error
	Update(ctx context.Context, session *entity.AdvisingSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdvisingSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdvisingSession, error)
}
