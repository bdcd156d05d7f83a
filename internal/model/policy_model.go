package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Policy struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Type          string    `gorm:"type:varchar(50);not null;default:'other';index"`
	Slug          string    `gorm:"type:varchar(255);not null;index"`
	Content       string    `gorm:"type:text;not null"`
	EffectiveDate *time.Time
	Author        string         `gorm:"type:varchar(255);not null;default:'system'"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Policy) TableName() string {
	return "policies"
}
