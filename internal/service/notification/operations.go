package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

// ListResult is one page of the caller's notifications.
type ListResult struct {
	Notifications []domain.Notification
	Total         int
	Unread        int
	Page          int
	Limit         int
	TotalPages    int
}

// List returns the caller's notifications, newest first, with the number
// of unread ones.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := input.page()
	items, total, err := s.notifications.List(ctx, domain.NotificationFilter{
		UserID: userID,
		IsRead: input.IsRead,
		Type:   input.Type,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	return &ListResult{
		Notifications: items,
		Total:         total,
		Unread:        unread,
		Page:          page.Number,
		Limit:         page.Limit,
		TotalPages:    page.TotalPages(total),
	}, nil
}

// UnreadCount returns the number of unread notifications of the caller.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.UnreadCount: %w", err)
	}
	return n, nil
}

// Create stores a notification. Staff may address any user; a client may
// only address itself.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Notification, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	target := actor.ID
	if input.UserID != nil {
		target = *input.UserID
	}
	if target != actor.ID && !actor.Role.IsStaff() {
		return nil, domain.ErrForbidden
	}

	typ := input.Type
	if typ == "" {
		typ = domain.NotificationTypeInfo
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.NotificationPriorityMedium
	}
	var actionURL *string
	if input.ActionURL != nil {
		if u := strings.TrimSpace(*input.ActionURL); u != "" {
			actionURL = &u
		}
	}

	created, err := s.notifications.Create(ctx, domain.Notification{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(input.Title),
		Message:       strings.TrimSpace(input.Message),
		Type:          typ,
		Priority:      priority,
		ActionURL:     actionURL,
		Metadata:      input.Metadata,
		UserID:        target,
		CaseID:        input.CaseID,
		DocumentID:    input.DocumentID,
		AppointmentID: input.AppointmentID,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("notification.Create: %w", err)
	}

	s.audit.LogCreate(ctx, domain.EntityTypeNotification, created.ID, created.Title, snapshot(created))
	s.log.InfoContext(ctx, "notification created",
		slog.String("user_id", actor.ID.String()),
		slog.String("recipient_id", target.String()),
		slog.String("notification_id", created.ID.String()),
	)
	return created, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}
	return n, nil
}

// MarkUnread marks one of the caller's notifications as unread.
func (s *Service) MarkUnread(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkUnread(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkUnread: %w", err)
	}
	return n, nil
}

// MarkAllRead marks every unread notification of the caller as read and
// returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", n),
	)
	return n, nil
}

// Delete removes one of the caller's notifications.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.notifications.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("notification.Delete: %w", err)
	}

	s.audit.LogDelete(ctx, domain.EntityTypeNotification, deleted.ID, deleted.Title, snapshot(deleted))
	return nil
}

// PurgeRead removes read notifications older than the retention window.
// It is a maintenance operation and needs no actor.
func (s *Service) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, domain.NewValidationError("retention", "must be positive")
	}

	cutoff := s.now().Add(-retention)
	n, err := s.notifications.PurgeRead(ctx, cutoff)
	if err != nil {
		s.log.ErrorContext(ctx, "notification purge failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("notification.PurgeRead: %w", err)
	}

	s.log.InfoContext(ctx, "read notifications purged",
		slog.Int64("count", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}
