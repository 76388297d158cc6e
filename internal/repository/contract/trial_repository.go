package contract

import (
	"context"

	"medisearch-be/internal/entity"
	"medisearch-be/internal/repository/specification"
)

// TrialRepository covers the write path used by the seeder and the read
// path used by the local search adapter. The search pipeline itself never
// mutates trials.
type TrialRepository interface {
	Create(ctx context.Context, trial *entity.Trial) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Trial, error)
}
