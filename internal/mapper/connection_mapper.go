package mapper

import (
	"medisearch-be/internal/entity"
	"medisearch-be/internal/model"
)

type ConnectionMapper struct{}

func NewConnectionMapper() *ConnectionMapper {
	return &ConnectionMapper{}
}

func (m *ConnectionMapper) ToEntity(c *model.Connection) *entity.Connection {
	if c == nil {
		return nil
	}
	return &entity.Connection{
		Id:           c.Id,
		RequesterId:  c.RequesterId,
		ResearcherId: c.ResearcherId,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *ConnectionMapper) ToModel(c *entity.Connection) *model.Connection {
	if c == nil {
		return nil
	}
	return &model.Connection{
		Id:           c.Id,
		RequesterId:  c.RequesterId,
		ResearcherId: c.ResearcherId,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *ConnectionMapper) ToEntities(connections []*model.Connection) []*entity.Connection {
	entities := make([]*entity.Connection, len(connections))
	for i, c := range connections {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
