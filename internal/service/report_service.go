package service

import (
	"context"
	"time"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"
	"ai-chatbot-be/pkg/events"

	"github.com/google/uuid"
)

type IReportService interface {
	List(ctx context.Context) ([]*dto.ReportResponse, error)
	Create(ctx context.Context, userId string, request *dto.CreateReportRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewReportService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, log logger.ILogger) IReportService {
	return &reportService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	return &dto.ReportResponse{
		Id:          r.Id,
		UserId:      r.UserId,
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (s *reportService) List(ctx context.Context) ([]*dto.ReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reports, err := uow.ReportRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		response = append(response, toReportResponse(r))
	}
	return response, nil
}

func (s *reportService) Create(ctx context.Context, userId string, request *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	author := request.Author
	if author == "" {
		author = "Anonymous"
	}

	report := entity.Report{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       request.Title,
		Description: request.Description,
		Author:      author,
		CreatedAt:   time.Now(),
	}

	if err := uow.ReportRepository().Create(ctx, &report); err != nil {
		return nil, err
	}

	// Let admins know, best-effort.
	if s.publisherService != nil {
		evt := events.NewReportCreatedEvent(report.Id.String(), userId, report.Title)
		if err := s.publisherService.Publish(ctx, evt); err != nil {
			s.logger.Warn("ReportService", "Failed to publish report event", map[string]interface{}{
				"report_id": report.Id,
				"error":     err.Error(),
			})
		}
	}

	return toReportResponse(&report), nil
}
