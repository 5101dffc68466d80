package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatExchange struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;index;not null"`
	Query     string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Intent    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ChatExchange) TableName() string {
	return "chat_exchanges"
}
