package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one conversation thread. Preview mirrors the last user
// message so listings render without loading messages.
type ChatSession struct {
	Id        uuid.UUID
	UserId    string
	Title     string
	Preview   string
	IsPinned  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
