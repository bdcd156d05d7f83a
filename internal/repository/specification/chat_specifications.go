package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// escapeLike neutralizes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// PinnedOnly keeps only pinned sessions.
type PinnedOnly struct{}

func (s PinnedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_pinned = ?", true)
}

// PinnedFirst orders sessions pinned-first, then newest-first.
type PinnedFirst struct{}

func (s PinnedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_pinned DESC").Order("created_at DESC")
}

// SessionSearchQuery filters sessions by title or preview content
// (case insensitive, Postgres ILIKE).
type SessionSearchQuery struct {
	Query string
}

func (s SessionSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(s.Query) + "%"
	return db.Where("title ILIKE ? OR preview ILIKE ?", pattern, pattern)
}

// ChatSearchQuery filters chats whose message or response contains the query.
type ChatSearchQuery struct {
	Query string
}

func (s ChatSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(s.Query) + "%"
	return db.Where("message ILIKE ? OR response ILIKE ?", pattern, pattern)
}
