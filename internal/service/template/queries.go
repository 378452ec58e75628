package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

// ListResult is one page of templates.
type ListResult struct {
	Templates  []domain.Template
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// List returns the active templates visible to the caller, most used first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := input.page()
	filter := domain.TemplateFilter{
		ViewerID: viewer(actor),
		Search:   trimOrNil(input.Search),
		Type:     input.Type,
		Category: trimOrNil(input.Category),
		Tag:      trimOrNil(input.Tag),
		Limit:    page.Limit,
		Offset:   page.Offset(),
	}
	if filter.Tag != nil {
		tag := domain.NormalizeText(*filter.Tag)
		filter.Tag = &tag
	}

	templates, total, err := s.templates.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("template.List: %w", err)
	}

	return &ListResult{
		Templates:  templates,
		Total:      total,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(total),
	}, nil
}

// Get returns one template the caller may read.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.load(ctx, actor, id, opRead)
}

// load fetches an active template and applies the permission policy.
func (s *Service) load(ctx context.Context, actor domain.Actor, id uuid.UUID, op operation) (*domain.Template, error) {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	if err := canAccess(actor, t, op); err != nil {
		return nil, fmt.Errorf("template %s: %w", id, err)
	}
	return t, nil
}

// Stats summarizes the active templates visible to the caller.
func (s *Service) Stats(ctx context.Context) (*domain.TemplateStats, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.templates.Stats(ctx, viewer(actor))
	if err != nil {
		return nil, fmt.Errorf("template.Stats: %w", err)
	}
	return &stats, nil
}
