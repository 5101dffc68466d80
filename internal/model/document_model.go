package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FileName   string         `gorm:"type:varchar(255);not null"`
	CharCount  int            `gorm:"default:0"`
	ChunkCount int            `gorm:"default:0"`
	Status     string         `gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
