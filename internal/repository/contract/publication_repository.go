package contract

import (
	"context"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/repository/specification"
)

type PublicationRepository interface {
	Create(ctx context.Context, publication *entity.Publication) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Publication, error)
}
