package implementation

import (
	"context"
	"errors"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/mapper"
	"medisearch-be/internal/model"
	"medisearch-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConnectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConnectionMapper
}

func NewConnectionRepository(db *gorm.DB) contract.ConnectionRepository {
	return &ConnectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewConnectionMapper(),
	}
}

func (r *ConnectionRepositoryImpl) Create(ctx context.Context, connection *entity.Connection) error {
	m := r.mapper.ToModel(connection)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*connection = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConnectionRepositoryImpl) StatusBetween(ctx context.Context, requesterId, researcherId uuid.UUID) (string, error) {
	var m model.Connection
	err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND researcher_id = ?) OR (requester_id = ? AND researcher_id = ?)",
			requesterId, researcherId, researcherId, requesterId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.ConnectionNone, nil
		}
		return "", err
	}
	return m.Status, nil
}

func (r *ConnectionRepositoryImpl) FindByRequester(ctx context.Context, requesterId uuid.UUID) ([]*entity.Connection, error) {
	var models []*model.Connection
	if err := r.db.WithContext(ctx).Where("requester_id = ?", requesterId).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
