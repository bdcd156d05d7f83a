package entity

import (
	"time"

	"github.com/google/uuid"
)

type PolicyType string

const (
	PolicyTypeTerms   PolicyType = "terms"
	PolicyTypePrivacy PolicyType = "privacy"
	PolicyTypeOther   PolicyType = "other"
)

// Policy is a static content document (terms, privacy, misc pages) addressable
// by slug. Slug is derived from the title when the caller omits it.
type Policy struct {
	Id            uuid.UUID
	Title         string
	Type          PolicyType
	Slug          string
	Content       string
	EffectiveDate *time.Time
	Author        string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type ReleaseNote struct {
	Id          uuid.UUID
	Title       string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Report is a user-submitted issue or feedback entry.
type Report struct {
	Id          uuid.UUID
	UserId      string
	Title       string
	Description string
	Author      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
