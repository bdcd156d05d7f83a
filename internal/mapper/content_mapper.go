package mapper

import (
	"time"

	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (m *ContentMapper) PolicyToEntity(p *model.Policy) *entity.Policy {
	if p == nil {
		return nil
	}
	return &entity.Policy{
		Id:            p.Id,
		Title:         p.Title,
		Type:          entity.PolicyType(p.Type),
		Slug:          p.Slug,
		Content:       p.Content,
		EffectiveDate: p.EffectiveDate,
		Author:        p.Author,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     optionalTime(p.UpdatedAt),
	}
}

func (m *ContentMapper) PolicyToModel(p *entity.Policy) *model.Policy {
	if p == nil {
		return nil
	}
	mdl := &model.Policy{
		Id:            p.Id,
		Title:         p.Title,
		Type:          string(p.Type),
		Slug:          p.Slug,
		Content:       p.Content,
		EffectiveDate: p.EffectiveDate,
		Author:        p.Author,
		CreatedAt:     p.CreatedAt,
	}
	if p.UpdatedAt != nil {
		mdl.UpdatedAt = *p.UpdatedAt
	}
	return mdl
}

func (m *ContentMapper) PoliciesToEntities(policies []*model.Policy) []*entity.Policy {
	entities := make([]*entity.Policy, len(policies))
	for i, p := range policies {
		entities[i] = m.PolicyToEntity(p)
	}
	return entities
}

func (m *ContentMapper) ReleaseNoteToEntity(n *model.ReleaseNote) *entity.ReleaseNote {
	if n == nil {
		return nil
	}
	return &entity.ReleaseNote{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   optionalTime(n.UpdatedAt),
	}
}

func (m *ContentMapper) ReleaseNoteToModel(n *entity.ReleaseNote) *model.ReleaseNote {
	if n == nil {
		return nil
	}
	mdl := &model.ReleaseNote{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		CreatedAt:   n.CreatedAt,
	}
	if n.UpdatedAt != nil {
		mdl.UpdatedAt = *n.UpdatedAt
	}
	return mdl
}

func (m *ContentMapper) ReleaseNotesToEntities(notes []*model.ReleaseNote) []*entity.ReleaseNote {
	entities := make([]*entity.ReleaseNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ReleaseNoteToEntity(n)
	}
	return entities
}

func (m *ContentMapper) ReportToEntity(r *model.Report) *entity.Report {
	if r == nil {
		return nil
	}
	return &entity.Report{
		Id:          r.Id,
		UserId:      r.UserId,
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   optionalTime(r.UpdatedAt),
	}
}

func (m *ContentMapper) ReportToModel(r *entity.Report) *model.Report {
	if r == nil {
		return nil
	}
	mdl := &model.Report{
		Id:          r.Id,
		UserId:      r.UserId,
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
		CreatedAt:   r.CreatedAt,
	}
	if r.UpdatedAt != nil {
		mdl.UpdatedAt = *r.UpdatedAt
	}
	return mdl
}

func (m *ContentMapper) ReportsToEntities(reports []*model.Report) []*entity.Report {
	entities := make([]*entity.Report, len(reports))
	for i, r := range reports {
		entities[i] = m.ReportToEntity(r)
	}
	return entities
}
