package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-chatbot-be/internal/model"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/repository"
	"ai-chatbot-be/pkg/events"
	pktNats "ai-chatbot-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BroadcastUserId marks a notification row addressed to everyone.
const BroadcastUserId = "*"

// NotificationDelivery defines how to push real-time updates.
// Implemented by the websocket hub.
type NotificationDelivery interface {
	Send(userID string, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// Events arriving over NATS carry the subject as their type.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), nil)

	switch typeCode {
	case events.TypeReleaseNotePublished:
		return s.handleReleaseNotePublished(ctx, typeCode, event)
	case events.TypeReportCreated:
		return s.handleReportCreated(ctx, typeCode, event)
	default:
		// Login/registration events are audit-only for now.
		return nil
	}
}

func (s *NotificationService) handleReleaseNotePublished(ctx context.Context, typeCode string, event events.Event) error {
	payload := event.Payload()
	title, _ := payload["title"].(string)
	description, _ := payload["description"].(string)
	if title == "" {
		title = "New release"
	}

	notif := s.buildNotification(BroadcastUserId, typeCode, title, description, payload)
	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		return err
	}

	if s.delivery != nil {
		s.delivery.Broadcast(notif)
	}
	return nil
}

func (s *NotificationService) handleReportCreated(ctx context.Context, typeCode string, event events.Event) error {
	payload := event.Payload()
	title, _ := payload["title"].(string)

	adminUids, err := s.repo.GetUidsByRole(ctx, "admin")
	if err != nil {
		return err
	}

	message := fmt.Sprintf("New report submitted: %s", title)
	for _, uid := range adminUids {
		notif := s.buildNotification(uid, typeCode, "New report", message, payload)
		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Warn("NotificationService", "Failed to persist notification", map[string]interface{}{
				"user_id": uid,
				"error":   err.Error(),
			})
			continue
		}
		if s.delivery != nil {
			s.delivery.Send(uid, notif)
		}
	}
	return nil
}

func (s *NotificationService) buildNotification(userId, typeCode, title, message string, payload map[string]interface{}) model.Notification {
	metaJSON, _ := json.Marshal(payload)
	return model.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		TypeCode:  typeCode,
		Title:     title,
		Message:   message,
		Metadata:  datatypes.JSON(metaJSON),
		IsRead:    false,
		CreatedAt: time.Now(),
	}
}

// Inbox reads

func (s *NotificationService) GetNotifications(ctx context.Context, userId string, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userId, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userId string) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userId)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userId string) error {
	return s.repo.MarkAllAsRead(ctx, userId)
}
