package contract

import (
	"context"

	"medisearch-be/internal/entity"

	"github.com/google/uuid"
)

type ConnectionRepository interface {
	Create(ctx context.Context, connection *entity.Connection) error
	// StatusBetween returns the connection status from the requester's point
	// of view, or ConnectionNone when no request exists in either direction.
	StatusBetween(ctx context.Context, requesterId, researcherId uuid.UUID) (string, error)
	FindByRequester(ctx context.Context, requesterId uuid.UUID) ([]*entity.Connection, error)
}
