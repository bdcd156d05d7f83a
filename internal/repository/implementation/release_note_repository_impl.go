package implementation

import (
	"context"
	"errors"

	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/mapper"
	"ai-chatbot-be/internal/model"
	"ai-chatbot-be/internal/repository/contract"
	"ai-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReleaseNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewReleaseNoteRepository(db *gorm.DB) contract.ReleaseNoteRepository {
	return &ReleaseNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ReleaseNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReleaseNoteRepositoryImpl) Create(ctx context.Context, note *entity.ReleaseNote) error {
	m := r.mapper.ReleaseNoteToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ReleaseNoteToEntity(m)
	return nil
}

func (r *ReleaseNoteRepositoryImpl) Update(ctx context.Context, note *entity.ReleaseNote) error {
	m := r.mapper.ReleaseNoteToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ReleaseNoteToEntity(m)
	return nil
}

func (r *ReleaseNoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ReleaseNote{}, id).Error
}

func (r *ReleaseNoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReleaseNote, error) {
	var m model.ReleaseNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ReleaseNoteToEntity(&m), nil
}

func (r *ReleaseNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReleaseNote, error) {
	var models []*model.ReleaseNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ReleaseNotesToEntities(models), nil
}
