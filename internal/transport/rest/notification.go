package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, input notification.ListInput) (*notification.ListResult, error)
	UnreadCount(ctx context.Context) (int, error)
	Create(ctx context.Context, input notification.CreateInput) (*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkUnread(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type createNotificationRequest struct {
	Title         string         `json:"title"         validate:"required"`
	Message       string         `json:"message"       validate:"required"`
	Type          string         `json:"type"          validate:"omitempty,oneof=INFO SUCCESS WARNING ERROR REMINDER APPOINTMENT CASE_UPDATE DOCUMENT SYSTEM"`
	Priority      string         `json:"priority"      validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	ActionURL     *string        `json:"actionUrl"`
	Metadata      map[string]any `json:"metadata"`
	UserID        *string        `json:"userId"        validate:"omitempty,uuid"`
	CaseID        *string        `json:"caseId"        validate:"omitempty,uuid"`
	DocumentID    *string        `json:"documentId"    validate:"omitempty,uuid"`
	AppointmentID *string        `json:"appointmentId" validate:"omitempty,uuid"`
}

type notificationListResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
	Pagination    pagination             `json:"pagination"`
}

// List handles GET /notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := notification.ListInput{
		IsRead: q.optBool("isRead"),
		Page:   q.positiveInt("page"),
		Limit:  q.positiveInt("limit"),
	}
	if t := q.optString("type"); t != nil {
		typ := domain.NotificationType(*t)
		input.Type = &typ
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notificationListResponse{
		Notifications: mapSlice(res.Notifications, toNotificationResponse),
		UnreadCount:   res.Unread,
		Pagination: pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	})
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

// Create handles POST /notifications.
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.Create(r.Context(), notification.CreateInput{
		Title:         req.Title,
		Message:       req.Message,
		Type:          domain.NotificationType(req.Type),
		Priority:      domain.NotificationPriority(req.Priority),
		ActionURL:     req.ActionURL,
		Metadata:      req.Metadata,
		UserID:        parseOptUUID(req.UserID),
		CaseID:        parseOptUUID(req.CaseID),
		DocumentID:    parseOptUUID(req.DocumentID),
		AppointmentID: parseOptUUID(req.AppointmentID),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNotificationResponse(n))
}

// MarkRead handles PATCH /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, h.svc.MarkRead)
}

// MarkUnread handles PATCH /notifications/{id}/unread.
func (h *NotificationHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, h.svc.MarkUnread)
}

func (h *NotificationHandler) mark(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Notification, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(n))
}

// MarkAllRead handles PATCH /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// Delete handles DELETE /notifications/{id}.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseOptUUID converts an already validated id string.
func parseOptUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
