package specification

import "gorm.io/gorm"

// ByPolicyType filters policies by their document type (terms, privacy, other).
type ByPolicyType struct {
	Type string
}

func (s ByPolicyType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// PolicyDefaultOrder sorts the public policy listing: newest effective date
// first, undated policies last, ties broken by creation time.
type PolicyDefaultOrder struct{}

func (s PolicyDefaultOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("effective_date DESC NULLS LAST").Order("created_at DESC")
}
