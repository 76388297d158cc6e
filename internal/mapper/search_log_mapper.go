package mapper

import (
	"medisearch-be/internal/entity"
	"medisearch-be/internal/model"
)

type SearchLogMapper struct{}

func NewSearchLogMapper() *SearchLogMapper {
	return &SearchLogMapper{}
}

func (m *SearchLogMapper) ToEntity(l *model.SearchLog) *entity.SearchLog {
	if l == nil {
		return nil
	}
	return &entity.SearchLog{
		Id:          l.Id,
		Kind:        l.Kind,
		Term:        l.Term,
		Location:    l.Location,
		Source:      l.Source,
		ResultCount: l.ResultCount,
		Cached:      l.Cached,
		DurationMs:  l.DurationMs,
		CreatedAt:   l.CreatedAt,
	}
}

func (m *SearchLogMapper) ToModel(l *entity.SearchLog) *model.SearchLog {
	if l == nil {
		return nil
	}
	return &model.SearchLog{
		Id:          l.Id,
		Kind:        l.Kind,
		Term:        l.Term,
		Location:    l.Location,
		Source:      l.Source,
		ResultCount: l.ResultCount,
		Cached:      l.Cached,
		DurationMs:  l.DurationMs,
		CreatedAt:   l.CreatedAt,
	}
}
