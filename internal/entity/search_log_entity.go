package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchLog is one completed search, recorded asynchronously for the
// trending-searches feature. The search pipeline itself never writes it.
type SearchLog struct {
	Id          uuid.UUID
	Kind        string
	Term        string
	Location    string
	Source      string
	ResultCount int
	Cached      bool
	DurationMs  int64
	CreatedAt   time.Time
}
