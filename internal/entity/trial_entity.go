package entity

import (
	"time"

	"github.com/google/uuid"
)

type Trial struct {
	Id                    uuid.UUID
	NctId                 *string // registry ID when the trial is also registered upstream
	Title                 string
	Description           string
	Status                string // canonical vocabulary, see pkg/fedsearch
	Phase                 string
	Location              string
	Conditions            []string
	StartDate             *time.Time
	CompletionDate        *time.Time
	Sponsor               string
	PrincipalInvestigator string
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}
