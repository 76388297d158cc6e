package model

import (
	"time"

	"github.com/google/uuid"
)

type Researcher struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string    `gorm:"type:varchar(255);not null;index"`
	Affiliation      string    `gorm:"type:varchar(255)"`
	Specialty        string    `gorm:"type:varchar(255);index"`
	Location         string    `gorm:"type:varchar(255)"`
	Bio              string    `gorm:"type:text"`
	PublicationCount int       `gorm:"default:0"`
	TrialCount       int       `gorm:"default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Researcher) TableName() string {
	return "researchers"
}

type Connection struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequesterId  uuid.UUID `gorm:"type:uuid;not null;index:idx_connections_pair"`
	ResearcherId uuid.UUID `gorm:"type:uuid;not null;index:idx_connections_pair"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Connection) TableName() string {
	return "connections"
}
