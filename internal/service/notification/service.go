// Package notification manages per-user notifications.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

type notificationRepo interface {
	List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, int, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	MarkUnread(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	PurgeRead(ctx context.Context, before time.Time) (int64, error)
}

type auditRecorder interface {
	LogCreate(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, newData map[string]any)
	LogDelete(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any)
}

// Service implements notification operations. Apart from Create, every
// operation acts on the caller's own notifications only.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	audit         auditRecorder
	now           func() time.Time
}

// NewService creates a new notification service.
func NewService(logger *slog.Logger, notifications notificationRepo, audit auditRecorder) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		audit:         audit,
		now:           time.Now,
	}
}

func snapshot(n *domain.Notification) map[string]any {
	return domain.Snapshot(struct {
		ID       uuid.UUID                   `json:"id"`
		Title    string                      `json:"title"`
		Type     domain.NotificationType     `json:"type"`
		Priority domain.NotificationPriority `json:"priority"`
		UserID   uuid.UUID                   `json:"userId"`
		IsRead   bool                        `json:"isRead"`
	}{n.ID, n.Title, n.Type, n.Priority, n.UserID, n.IsRead})
}
