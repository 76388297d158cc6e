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

type PublicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PublicationMapper
}

func NewPublicationRepository(db *gorm.DB) contract.PublicationRepository {
	return &PublicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewPublicationMapper(),
	}
}

func (r *PublicationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PublicationRepositoryImpl) Create(ctx context.Context, publication *entity.Publication) error {
	m := r.mapper.ToModel(publication)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*publication = *r.mapper.ToEntity(m)
	return nil
}

func (r *PublicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Publication, error) {
	var models []*model.Publication
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
