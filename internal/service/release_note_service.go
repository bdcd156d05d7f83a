package service

import (
	"context"
	"time"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"
	"ai-chatbot-be/pkg/events"

	"github.com/google/uuid"
)

type IReleaseNoteService interface {
	List(ctx context.Context) ([]*dto.ReleaseNoteResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ReleaseNoteResponse, error)
	Create(ctx context.Context, request *dto.CreateReleaseNoteRequest) (*dto.ReleaseNoteResponse, error)
	Update(ctx context.Context, id uuid.UUID, request *dto.UpdateReleaseNoteRequest) (*dto.ReleaseNoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type releaseNoteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewReleaseNoteService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, log logger.ILogger) IReleaseNoteService {
	return &releaseNoteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func toReleaseNoteResponse(n *entity.ReleaseNote) *dto.ReleaseNoteResponse {
	return &dto.ReleaseNoteResponse{
		Id:          n.Id,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (s *releaseNoteService) List(ctx context.Context) ([]*dto.ReleaseNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.ReleaseNoteRepository().FindAll(ctx,
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ReleaseNoteResponse, 0, len(notes))
	for _, n := range notes {
		response = append(response, toReleaseNoteResponse(n))
	}
	return response, nil
}

func (s *releaseNoteService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ReleaseNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.ReleaseNoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFound("Release note not found")
	}
	return toReleaseNoteResponse(note), nil
}

func (s *releaseNoteService) Create(ctx context.Context, request *dto.CreateReleaseNoteRequest) (*dto.ReleaseNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.ReleaseNote{
		Id:          uuid.New(),
		Title:       request.Title,
		Description: request.Description,
		Date:        request.Date,
		CreatedAt:   time.Now(),
	}

	if err := uow.ReleaseNoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	// Fan out to connected clients; publication is best-effort.
	if s.publisherService != nil {
		evt := events.NewReleaseNotePublishedEvent(note.Id.String(), note.Title, note.Description)
		if err := s.publisherService.Publish(ctx, evt); err != nil {
			s.logger.Warn("ReleaseNoteService", "Failed to publish release note event", map[string]interface{}{
				"release_note_id": note.Id,
				"error":           err.Error(),
			})
		}
	}

	return toReleaseNoteResponse(&note), nil
}

func (s *releaseNoteService) Update(ctx context.Context, id uuid.UUID, request *dto.UpdateReleaseNoteRequest) (*dto.ReleaseNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ReleaseNoteRepository()

	note, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFound("Release note not found")
	}

	if request.Title != nil {
		note.Title = *request.Title
	}
	if request.Description != nil {
		note.Description = *request.Description
	}
	if request.Date != nil {
		note.Date = *request.Date
	}

	if err := repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return toReleaseNoteResponse(note), nil
}

func (s *releaseNoteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ReleaseNoteRepository()

	note, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NotFound("Release note not found")
	}

	return repo.Delete(ctx, id)
}
