package mapper

import (
	"encoding/json"
	"time"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/model"

	"gorm.io/datatypes"
)

type PublicationMapper struct{}

func NewPublicationMapper() *PublicationMapper {
	return &PublicationMapper{}
}

func (m *PublicationMapper) ToEntity(p *model.Publication) *entity.Publication {
	if p == nil {
		return nil
	}

	var authors []string
	if len(p.Authors) > 0 {
		_ = json.Unmarshal(p.Authors, &authors)
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		u := p.UpdatedAt
		updatedAt = &u
	}

	return &entity.Publication{
		Id:            p.Id,
		Title:         p.Title,
		Abstract:      p.Abstract,
		Authors:       authors,
		Journal:       p.Journal,
		PublishedDate: p.PublishedDate,
		Doi:           p.Doi,
		Pmid:          p.Pmid,
		Url:           p.Url,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *PublicationMapper) ToModel(p *entity.Publication) *model.Publication {
	if p == nil {
		return nil
	}

	authors, _ := json.Marshal(p.Authors)

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Publication{
		Id:            p.Id,
		Title:         p.Title,
		Abstract:      p.Abstract,
		Authors:       datatypes.JSON(authors),
		Journal:       p.Journal,
		PublishedDate: p.PublishedDate,
		Doi:           p.Doi,
		Pmid:          p.Pmid,
		Url:           p.Url,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *PublicationMapper) ToEntities(pubs []*model.Publication) []*entity.Publication {
	entities := make([]*entity.Publication, len(pubs))
	for i, p := range pubs {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
