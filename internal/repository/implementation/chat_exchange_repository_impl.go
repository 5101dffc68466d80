package implementation

import (
	"context"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/mapper"
	"college-buddy-be/internal/model"
	"college-buddy-be/internal/repository/contract"
	"college-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatExchangeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatExchangeMapper
}

func NewChatExchangeRepository(db *gorm.DB) contract.ChatExchangeRepository {
	return &ChatExchangeRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatExchangeMapper(),
	}
}

func (r *ChatExchangeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatExchangeRepositoryImpl) Create(ctx context.Context, exchange *entity.ChatExchange) error {
	m := r.mapper.ToModel(exchange)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*exchange = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatExchangeRepositoryImpl) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatExchange, error) {
	var models []*model.ChatExchange
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChatExchangeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatExchange, error) {
	var models []*model.ChatExchange
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChatExchangeRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Delete(&model.ChatExchange{}).Error
}
