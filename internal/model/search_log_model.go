package model

import (
	"time"

	"github.com/google/uuid"
)

type SearchLog struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind        string    `gorm:"type:varchar(20);not null;index"`
	Term        string    `gorm:"type:varchar(500);not null;index"`
	Location    string    `gorm:"type:varchar(255)"`
	Source      string    `gorm:"type:varchar(50)"`
	ResultCount int       `gorm:"default:0"`
	Cached      bool      `gorm:"default:false"`
	DurationMs  int64     `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (SearchLog) TableName() string {
	return "search_logs"
}
