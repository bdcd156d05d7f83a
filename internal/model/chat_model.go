package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chat struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        string         `gorm:"type:varchar(128);not null;index"`
	ChatSessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Message       string         `gorm:"type:text;not null"`
	Response      string         `gorm:"type:text;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Chat) TableName() string {
	return "chats"
}
