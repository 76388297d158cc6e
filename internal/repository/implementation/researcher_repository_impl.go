package implementation

import (
	"context"
	"errors"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/mapper"
	"medisearch-be/internal/model"
	"medisearch-be/internal/repository/contract"
	"medisearch-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ResearcherRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ResearcherMapper
}

func NewResearcherRepository(db *gorm.DB) contract.ResearcherRepository {
	return &ResearcherRepositoryImpl{
		db:     db,
		mapper: mapper.NewResearcherMapper(),
	}
}

func (r *ResearcherRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ResearcherRepositoryImpl) Create(ctx context.Context, researcher *entity.Researcher) error {
	m := r.mapper.ToModel(researcher)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*researcher = *r.mapper.ToEntity(m)
	return nil
}

func (r *ResearcherRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Researcher, error) {
	var m model.Researcher
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ResearcherRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Researcher, error) {
	var models []*model.Researcher
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
