package entity

import (
	"time"

	"github.com/google/uuid"
)

type Publication struct {
	Id            uuid.UUID
	Title         string
	Abstract      string
	Authors       []string
	Journal       string
	PublishedDate *time.Time
	Doi           *string
	Pmid          *string
	Url           string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
