package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePolicyRequest struct {
	Title         string     `json:"title" validate:"required"`
	Type          string     `json:"type" validate:"omitempty,oneof=terms privacy other"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content" validate:"required"`
	EffectiveDate *time.Time `json:"effectiveDate"`
	Author        string     `json:"author"`
}

// UpdatePolicyRequest uses pointers so omitted fields stay untouched.
type UpdatePolicyRequest struct {
	Title         *string    `json:"title"`
	Type          *string    `json:"type" validate:"omitempty,oneof=terms privacy other"`
	Slug          *string    `json:"slug"`
	Content       *string    `json:"content"`
	EffectiveDate *time.Time `json:"effectiveDate"`
	Author        *string    `json:"author"`
}

type PolicyResponse struct {
	Id            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	EffectiveDate *time.Time `json:"effectiveDate,omitempty"`
	Author        string     `json:"author"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type CreateReleaseNoteRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
}

type UpdateReleaseNoteRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

type ReleaseNoteResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CreateReportRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Author      string `json:"author"`
}

type ReportResponse struct {
	Id          uuid.UUID  `json:"id"`
	UserId      string     `json:"userId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Author      string     `json:"author"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
