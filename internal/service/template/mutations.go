package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

// Create stores a new template owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Template, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	created, err := s.templates.Create(ctx, domain.Template{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Type:        input.Type,
		Category:    strings.TrimSpace(input.Category),
		Content:     input.Content,
		Variables:   normalizeVariables(input.Variables),
		IsPublic:    input.IsPublic,
		Tags:        normalizeTags(input.Tags),
		Version:     1,
		CreatedByID: actor.ID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("template.Create: %w", err)
	}

	s.audit.LogCreate(ctx, domain.EntityTypeTemplate, created.ID, created.Name, snapshot(created))
	s.log.InfoContext(ctx, "template created",
		slog.String("user_id", actor.ID.String()),
		slog.String("template_id", created.ID.String()),
	)
	return created, nil
}

// Update changes a template the caller may write. The row is locked for the
// duration of the change so the audit record carries the exact prior state.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Template, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var old, updated *domain.Template
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		old, err = s.templates.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock template: %w", err)
		}
		if err := canAccess(actor, old, opWrite); err != nil {
			return fmt.Errorf("template %s: %w", id, err)
		}

		updated, err = s.templates.Update(txCtx, id, input.params())
		if err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogUpdate(ctx, domain.EntityTypeTemplate, updated.ID, updated.Name, snapshot(old), snapshot(updated))
	s.log.InfoContext(ctx, "template updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("template_id", id.String()),
		slog.Int("version", updated.Version),
	)
	return updated, nil
}

// Delete soft-deletes a template the caller may write.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	t, err := s.load(ctx, actor, id, opWrite)
	if err != nil {
		return err
	}
	if err := s.templates.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("template.Delete: %w", err)
	}

	s.audit.LogDelete(ctx, domain.EntityTypeTemplate, t.ID, t.Name, snapshot(t))
	s.log.InfoContext(ctx, "template deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("template_id", id.String()),
	)
	return nil
}

// Duplicate copies a readable template into a new private template owned
// by the caller.
func (s *Service) Duplicate(ctx context.Context, id uuid.UUID, input DuplicateInput) (*domain.Template, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	src, err := s.load(ctx, actor, id, opRead)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dup, err := s.templates.Create(ctx, domain.Template{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: src.Description,
		Type:        src.Type,
		Category:    src.Category,
		Content:     src.Content,
		Variables:   src.Variables,
		IsPublic:    false,
		Tags:        src.Tags,
		Version:     1,
		CreatedByID: actor.ID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("template.Duplicate: %w", err)
	}

	s.audit.LogDuplicate(ctx, domain.EntityTypeTemplate,
		domain.Ref{ID: src.ID, Name: src.Name},
		domain.Ref{ID: dup.ID, Name: dup.Name},
	)
	s.log.InfoContext(ctx, "template duplicated",
		slog.String("user_id", actor.ID.String()),
		slog.String("source_id", src.ID.String()),
		slog.String("template_id", dup.ID.String()),
	)
	return dup, nil
}
