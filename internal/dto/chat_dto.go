package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	UserId string `json:"userId" validate:"required"`
	Title  string `json:"title"`
}

type RenameSessionRequest struct {
	Title string `json:"title" validate:"required"`
}

type PinSessionRequest struct {
	IsPinned *bool `json:"isPinned" validate:"required"`
}

type SessionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Preview   string     `json:"preview"`
	IsPinned  bool       `json:"isPinned"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// SessionSearchResponse is a SessionResponse plus the snippet of the chat
// message that matched the query, when the hit came from message content.
type SessionSearchResponse struct {
	SessionResponse
	MatchedText string `json:"matchedText,omitempty"`
}

type SendChatRequest struct {
	UserId    string    `json:"userId" validate:"required"`
	SessionId uuid.UUID `json:"sessionId" validate:"required"`
	Message   string    `json:"message" validate:"required"`
}

type SendChatResponse struct {
	Reply string `json:"reply"`
}

type ChatResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId uuid.UUID `json:"sessionId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}
