package contract

import (
	"context"

	"medisearch-be/internal/entity"
)

// SearchLogRepository is append only; the analytics consumer writes and
// the surrounding app reads the table directly for reporting.
type SearchLogRepository interface {
	Create(ctx context.Context, log *entity.SearchLog) error
}
