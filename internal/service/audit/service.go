package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

type auditRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error)
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, int, error)
	Stats(ctx context.Context, since time.Time, entity *domain.EntityType) (domain.AuditStats, error)
}

// Service serves the audit trail. Every operation is restricted to ADMIN.
type Service struct {
	log   *slog.Logger
	audit auditRepo
	now   func() time.Time
}

// NewService creates a new audit query service.
func NewService(logger *slog.Logger, audit auditRepo) *Service {
	return &Service{
		log:   logger.With("service", "audit"),
		audit: audit,
		now:   time.Now,
	}
}

// ListResult is one page of audit records.
type ListResult struct {
	Records    []domain.AuditRecord
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

func requireAdmin(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.Actor{}, domain.ErrForbidden
	}
	return actor, nil
}

// List returns audit records matching the input, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := domain.Page{Number: input.PageOrDefault(), Limit: input.LimitOrDefault()}
	filter := domain.AuditFilter{
		UserID:    input.UserID,
		Entity:    input.Entity,
		Action:    input.Action,
		EntityID:  input.EntityID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Search:    input.Search,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	}

	records, total, err := s.audit.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("audit.List: %w", err)
	}

	return &ListResult{
		Records:    records,
		Total:      total,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(total),
	}, nil
}

// Get returns one audit record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	rec, err := s.audit.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audit.Get: %w", err)
	}
	return rec, nil
}

// Stats groups the audit records of the selected period window.
func (s *Service) Stats(ctx context.Context, input StatsInput) (*domain.AuditStats, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	period := input.Period
	if period == "" {
		period = domain.StatsPeriodMonth
	}
	since := PeriodStart(period, s.now())

	stats, err := s.audit.Stats(ctx, since, input.Entity)
	if err != nil {
		return nil, fmt.Errorf("audit.Stats: %w", err)
	}
	stats.Period = period
	stats.Since = since

	s.log.DebugContext(ctx, "audit stats computed",
		slog.String("period", string(period)),
		slog.Int("total", stats.Total),
	)
	return &stats, nil
}

// PeriodStart returns the beginning of the window for p, relative to now.
// Today, month and year are calendar-aligned in now's location; week is a
// rolling seven days.
func PeriodStart(p domain.StatsPeriod, now time.Time) time.Time {
	y, m, d := now.Date()
	loc := now.Location()
	switch p {
	case domain.StatsPeriodToday:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case domain.StatsPeriodWeek:
		return now.AddDate(0, 0, -7)
	case domain.StatsPeriodYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	}
}
