package implementation

import (
	"context"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/mapper"
	"medisearch-be/internal/model"
	"medisearch-be/internal/repository/contract"
	"medisearch-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TrialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TrialMapper
}

func NewTrialRepository(db *gorm.DB) contract.TrialRepository {
	return &TrialRepositoryImpl{
		db:     db,
		mapper: mapper.NewTrialMapper(),
	}
}

func (r *TrialRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TrialRepositoryImpl) Create(ctx context.Context, trial *entity.Trial) error {
	m := r.mapper.ToModel(trial)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*trial = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrialRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Trial, error) {
	var models []*model.Trial
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
