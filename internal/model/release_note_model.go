package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReleaseNote struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(255)"`
	Description string         `gorm:"type:text;not null"`
	Date        time.Time      `gorm:"not null;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ReleaseNote) TableName() string {
	return "release_notes"
}
