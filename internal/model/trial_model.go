package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Trial struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NctId                 *string   `gorm:"type:varchar(20);uniqueIndex"`
	Title                 string    `gorm:"type:varchar(500);not null"`
	Description           string    `gorm:"type:text"`
	Status                string    `gorm:"type:varchar(50);not null;index"`
	Phase                 string    `gorm:"type:varchar(50);not null;index"`
	Location              string    `gorm:"type:varchar(255)"`
	Conditions            datatypes.JSON
	StartDate             *time.Time
	CompletionDate        *time.Time
	Sponsor               string    `gorm:"type:varchar(255)"`
	PrincipalInvestigator string    `gorm:"type:varchar(255)"`
	CreatedAt             time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (Trial) TableName() string {
	return "trials"
}
