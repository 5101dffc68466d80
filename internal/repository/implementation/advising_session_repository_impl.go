package implementation

import (
	"context"
	"errors"

	"college-buddy-be/internal/entity"
	"college-buddy-be/internal/mapper"
	"college-buddy-be/internal/model"
	"college-buddy-be/internal/repository/contract"
	"college-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdvisingSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdvisingSessionMapper
}

func NewAdvisingSessionRepository(db *gorm.DB) contract.AdvisingSessionRepository {
	return &AdvisingSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdvisingSessionMapper(),
	}
}

func (r *AdvisingSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdvisingSessionRepositoryImpl) Create(ctx context.Context, session *entity.AdvisingSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdvisingSessionRepositoryImpl) Update(ctx context.Context, session *entity.AdvisingSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdvisingSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AdvisingSession{}, id).Error
}

func (r *AdvisingSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdvisingSession, error) {
	var m model.AdvisingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdvisingSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdvisingSession, error) {
	var models []*model.AdvisingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
