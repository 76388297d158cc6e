package mapper

import (
	"time"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/model"
)

type ResearcherMapper struct{}

func NewResearcherMapper() *ResearcherMapper {
	return &ResearcherMapper{}
}

func (m *ResearcherMapper) ToEntity(r *model.Researcher) *entity.Researcher {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		u := r.UpdatedAt
		updatedAt = &u
	}

	return &entity.Researcher{
		Id:               r.Id,
		Name:             r.Name,
		Affiliation:      r.Affiliation,
		Specialty:        r.Specialty,
		Location:         r.Location,
		Bio:              r.Bio,
		PublicationCount: r.PublicationCount,
		TrialCount:       r.TrialCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ResearcherMapper) ToModel(r *entity.Researcher) *model.Researcher {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Researcher{
		Id:               r.Id,
		Name:             r.Name,
		Affiliation:      r.Affiliation,
		Specialty:        r.Specialty,
		Location:         r.Location,
		Bio:              r.Bio,
		PublicationCount: r.PublicationCount,
		TrialCount:       r.TrialCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ResearcherMapper) ToEntities(researchers []*model.Researcher) []*entity.Researcher {
	entities := make([]*entity.Researcher, len(researchers))
	for i, r := range researchers {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
