package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Publication struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string    `gorm:"type:varchar(500);not null"`
	Abstract      string    `gorm:"type:text"`
	Authors       datatypes.JSON
	Journal       string `gorm:"type:varchar(255)"`
	PublishedDate *time.Time
	Doi           *string   `gorm:"type:varchar(255);index"`
	Pmid          *string   `gorm:"type:varchar(20);index"`
	Url           string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Publication) TableName() string {
	return "publications"
}
