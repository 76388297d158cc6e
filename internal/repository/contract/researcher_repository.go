package contract

import (
	"context"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/repository/specification"
)

type ResearcherRepository interface {
	Create(ctx context.Context, researcher *entity.Researcher) error
	// FindOne returns nil, nil when no researcher matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Researcher, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Researcher, error)
}
