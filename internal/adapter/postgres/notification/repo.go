// Package notification implements the Notification repository using PostgreSQL.
// Every operation is scoped to the owning user; rows of other users behave as
// if they did not exist.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var columns = []string{
	"id", "title", "message", "type", "priority", "is_read", "read_at", "action_url", "metadata",
	"user_id", "case_id", "document_id", "appointment_id", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type notificationRow struct {
	ID            uuid.UUID  `db:"id"`
	Title         string     `db:"title"`
	Message       string     `db:"message"`
	Type          string     `db:"type"`
	Priority      string     `db:"priority"`
	IsRead        bool       `db:"is_read"`
	ReadAt        *time.Time `db:"read_at"`
	ActionURL     *string    `db:"action_url"`
	Metadata      []byte     `db:"metadata"`
	UserID        uuid.UUID  `db:"user_id"`
	CaseID        *uuid.UUID `db:"case_id"`
	DocumentID    *uuid.UUID `db:"document_id"`
	AppointmentID *uuid.UUID `db:"appointment_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r notificationRow) toDomain() (domain.Notification, error) {
	n := domain.Notification{
		ID:            r.ID,
		Title:         r.Title,
		Message:       r.Message,
		Type:          domain.NotificationType(r.Type),
		Priority:      domain.NotificationPriority(r.Priority),
		IsRead:        r.IsRead,
		ReadAt:        r.ReadAt,
		ActionURL:     r.ActionURL,
		UserID:        r.UserID,
		CaseID:        r.CaseID,
		DocumentID:    r.DocumentID,
		AppointmentID: r.AppointmentID,
		CreatedAt:     r.CreatedAt,
	}
	if len(r.Metadata) > 0 && string(r.Metadata) != "null" {
		if err := json.Unmarshal(r.Metadata, &n.Metadata); err != nil {
			return domain.Notification{}, fmt.Errorf("notification %s unmarshal metadata: %w", r.ID, err)
		}
	}
	return n, nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query sq.Sqlizer) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row notificationRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	n, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns the user's notifications, newest first, plus the total count
// matching the filter.
func (r *Repo) List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{sq.Eq{"user_id": f.UserID}}
	if f.IsRead != nil {
		where = append(where, sq.Eq{"is_read": *f.IsRead})
	}
	if f.Type != nil {
		where = append(where, sq.Eq{"type": string(*f.Type)})
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := postgres.Count(ctx, q, postgres.Builder.Select("COUNT(*)").From("notifications").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	query := postgres.Builder.Select(columns...).From("notifications").Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(max(f.Offset, 0)))

	var rows []notificationRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		n, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, nil
}

// CountUnread returns the number of unread notifications of the user.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Count(ctx, q, postgres.Builder.Select("COUNT(*)").From("notifications").
		Where(sq.Eq{"user_id": userID, "is_read": false}))
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// Create inserts a notification and returns the persisted row.
func (r *Repo) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	var metadata []byte
	if n.Metadata != nil {
		var err error
		if metadata, err = json.Marshal(n.Metadata); err != nil {
			return nil, fmt.Errorf("notification %s marshal metadata: %w", n.ID, err)
		}
	}

	query := postgres.Builder.Insert("notifications").
		Columns(columns...).
		Values(n.ID, n.Title, n.Message, string(n.Type), string(n.Priority), n.IsRead, n.ReadAt, n.ActionURL,
			metadata, n.UserID, n.CaseID, n.DocumentID, n.AppointmentID, n.CreatedAt).
		Suffix(returning)

	return r.getOne(ctx, n.ID, query)
}

// MarkRead sets is_read and read_at on one of the user's notifications.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	query := postgres.Builder.Update("notifications").
		Set("is_read", true).
		Set("read_at", sq.Expr("COALESCE(read_at, now())")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning)

	return r.getOne(ctx, id, query)
}

// MarkUnread clears is_read and read_at on one of the user's notifications.
func (r *Repo) MarkUnread(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	query := postgres.Builder.Update("notifications").
		Set("is_read", false).
		Set("read_at", nil).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning)

	return r.getOne(ctx, id, query)
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Update("notifications").
		Set("is_read", true).
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "is_read": false}))
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}

// Delete removes one of the user's notifications and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	query := postgres.Builder.Delete("notifications").
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning)

	return r.getOne(ctx, id, query)
}

// PurgeRead deletes read notifications created before the cutoff and
// returns how many were removed.
func (r *Repo) PurgeRead(ctx context.Context, before time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Delete("notifications").
		Where(sq.Eq{"is_read": true}).
		Where(sq.Lt{"created_at": before}))
	if err != nil {
		return 0, fmt.Errorf("purge read notifications: %w", err)
	}
	return n, nil
}
