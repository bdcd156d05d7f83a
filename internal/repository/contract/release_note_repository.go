package contract

import (
	"context"

	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReleaseNoteRepository interface {
	Create(ctx context.Context, note *entity.ReleaseNote) error
	Update(ctx context.Context, note *entity.ReleaseNote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReleaseNote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReleaseNote, error)
}
