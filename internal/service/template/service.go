// Package template manages document templates and renders them into
// documents by placeholder substitution.
package template

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

type templateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	List(ctx context.Context, f domain.TemplateFilter) ([]domain.Template, int, error)
	Stats(ctx context.Context, viewerID *uuid.UUID) (domain.TemplateStats, error)
	Create(ctx context.Context, t domain.Template) (*domain.Template, error)
	Update(ctx context.Context, id uuid.UUID, p domain.TemplateUpdateParams) (*domain.Template, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

type auditRecorder interface {
	LogCreate(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, newData map[string]any)
	LogUpdate(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData, newData map[string]any)
	LogDelete(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any)
	LogDuplicate(ctx context.Context, entity domain.EntityType, original, dup domain.Ref)
	LogGenerate(ctx context.Context, entity domain.EntityType, generated, source domain.Ref, metadata map[string]any)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides template management and generation.
type Service struct {
	log       *slog.Logger
	templates templateRepo
	audit     auditRecorder
	tx        txManager
	now       func() time.Time
}

// NewService creates a new template service.
func NewService(
	logger *slog.Logger,
	templates templateRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "template"),
		templates: templates,
		audit:     audit,
		tx:        tx,
		now:       time.Now,
	}
}

type operation int

const (
	opRead operation = iota
	opWrite
)

// canAccess is the single permission policy for templates. ADMIN may do
// anything. Others see public templates and their own, and write only
// their own. An invisible template is reported as not found.
func canAccess(actor domain.Actor, t *domain.Template, op operation) error {
	if actor.IsAdmin() {
		return nil
	}
	owner := t.CreatedByID == actor.ID
	if !owner && !t.IsPublic {
		return domain.ErrNotFound
	}
	if op == opWrite && !owner {
		return domain.ErrForbidden
	}
	return nil
}

// viewer returns the visibility restriction for list and stats queries.
func viewer(actor domain.Actor) *uuid.UUID {
	if actor.IsAdmin() {
		return nil
	}
	id := actor.ID
	return &id
}

// snapshot is the audit representation of a template.
func snapshot(t *domain.Template) map[string]any {
	return domain.Snapshot(struct {
		ID          uuid.UUID                 `json:"id"`
		Name        string                    `json:"name"`
		Description *string                   `json:"description"`
		Type        domain.TemplateType       `json:"type"`
		Category    string                    `json:"category"`
		Content     string                    `json:"content"`
		Variables   []domain.TemplateVariable `json:"variables"`
		IsPublic    bool                      `json:"isPublic"`
		Tags        []string                  `json:"tags"`
		UsageCount  int                       `json:"usageCount"`
		Version     int                       `json:"version"`
		CreatedByID uuid.UUID                 `json:"createdById"`
	}{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Type:        t.Type,
		Category:    t.Category,
		Content:     t.Content,
		Variables:   t.Variables,
		IsPublic:    t.IsPublic,
		Tags:        t.Tags,
		UsageCount:  t.UsageCount,
		Version:     t.Version,
		CreatedByID: t.CreatedByID,
	})
}
