package dto

import "time"

// SyncUserRequest carries the identity payload of an authenticated client.
// Field names follow the client contract (camelCase).
type SyncUserRequest struct {
	Uid      string `json:"uid" validate:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
	Provider string `json:"provider"`
}

type SaveUserRequest struct {
	Uid      string `json:"uid" validate:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
	Provider string `json:"provider"`
}

type UserResponse struct {
	Uid       string     `json:"uid"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	PhotoURL  string     `json:"photoURL,omitempty"`
	Provider  string     `json:"provider"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
