package entity

import (
	"time"

	"github.com/google/uuid"
)

type Researcher struct {
	Id               uuid.UUID
	Name             string
	Affiliation      string
	Specialty        string
	Location         string
	Bio              string
	PublicationCount int
	TrialCount       int
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Connection statuses between the viewing user and a researcher profile.
const (
	ConnectionNone      = "NONE"
	ConnectionPending   = "PENDING"
	ConnectionConnected = "CONNECTED"
)

type Connection struct {
	Id           uuid.UUID
	RequesterId  uuid.UUID // the viewing user
	ResearcherId uuid.UUID
	Status       string
	CreatedAt    time.Time
}
