package mapper

import (
	"encoding/json"
	"time"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/model"

	"gorm.io/datatypes"
)

type TrialMapper struct{}

func NewTrialMapper() *TrialMapper {
	return &TrialMapper{}
}

func (m *TrialMapper) ToEntity(t *model.Trial) *entity.Trial {
	if t == nil {
		return nil
	}

	var conditions []string
	if len(t.Conditions) > 0 {
		// A corrupt JSON column yields an empty list, not a failure.
		_ = json.Unmarshal(t.Conditions, &conditions)
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Trial{
		Id:                    t.Id,
		NctId:                 t.NctId,
		Title:                 t.Title,
		Description:           t.Description,
		Status:                t.Status,
		Phase:                 t.Phase,
		Location:              t.Location,
		Conditions:            conditions,
		StartDate:             t.StartDate,
		CompletionDate:        t.CompletionDate,
		Sponsor:               t.Sponsor,
		PrincipalInvestigator: t.PrincipalInvestigator,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *TrialMapper) ToModel(t *entity.Trial) *model.Trial {
	if t == nil {
		return nil
	}

	conditions, _ := json.Marshal(t.Conditions)

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Trial{
		Id:                    t.Id,
		NctId:                 t.NctId,
		Title:                 t.Title,
		Description:           t.Description,
		Status:                t.Status,
		Phase:                 t.Phase,
		Location:              t.Location,
		Conditions:            datatypes.JSON(conditions),
		StartDate:             t.StartDate,
		CompletionDate:        t.CompletionDate,
		Sponsor:               t.Sponsor,
		PrincipalInvestigator: t.PrincipalInvestigator,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *TrialMapper) ToEntities(trials []*model.Trial) []*entity.Trial {
	entities := make([]*entity.Trial, len(trials))
	for i, t := range trials {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
