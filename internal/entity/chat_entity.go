package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat is one exchange: the user's message paired with the model's response.
type Chat struct {
	Id            uuid.UUID
	UserId        string
	ChatSessionId uuid.UUID
	Message       string
	Response      string
	CreatedAt     time.Time
}
