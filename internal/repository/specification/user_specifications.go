package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserOwnedBy filters rows referencing the user's internal uuid (token tables).
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByUid filters by the external subject id carried in tokens.
type ByUid struct {
	Uid string
}

func (s ByUid) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("uid = ?", s.Uid)
}

// OwnedByUid filters rows by their owner's uid column.
type OwnedByUid struct {
	Uid string
}

func (s OwnedByUid) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.Uid)
}

type ActiveUsers struct{}

func (s ActiveUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

// Token Specs

type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

type ByTokenHash struct {
	Hash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.Hash)
}
