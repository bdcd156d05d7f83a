package repository

import (
	"context"

	"ai-chatbot-be/internal/model"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotificationsByUserID(ctx context.Context, userID string, limit, offset int) ([]model.Notification, int64, error)
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
	MarkAsRead(ctx context.Context, notificationID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID string) error

	// Helper to resolve broadcast targets
	GetUidsByRole(ctx context.Context, role string) ([]string, error)
}
