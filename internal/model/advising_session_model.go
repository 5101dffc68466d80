package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdvisingSession struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string         `gorm:"type:varchar(255)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AdvisingSession) TableName() string {
	return "advising_sessions"
}
