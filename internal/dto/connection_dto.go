package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConnectionRequest struct {
	ResearcherId string `json:"researcherId" validate:"required,uuid4"`
}

type ConnectionResponse struct {
	Id           uuid.UUID `json:"id"`
	ResearcherId uuid.UUID `json:"researcherId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
