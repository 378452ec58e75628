// Package template implements the document template repository using PostgreSQL.
// Soft-deleted rows (is_active = false) are invisible to every read path.
package template

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
	defaultLimit  = 20
	maxLimit      = 100
	mostUsedLimit = 5
)

var columns = []string{
	"id", "name", "description", "type", "category", "content", "variables", "is_public",
	"tags", "usage_count", "version", "created_by_id", "is_active", "created_at", "updated_at",
}

// Repo provides template persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new template repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type templateRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Type        string    `db:"type"`
	Category    string    `db:"category"`
	Content     string    `db:"content"`
	Variables   []byte    `db:"variables"`
	IsPublic    bool      `db:"is_public"`
	Tags        []string  `db:"tags"`
	UsageCount  int       `db:"usage_count"`
	Version     int       `db:"version"`
	CreatedByID uuid.UUID `db:"created_by_id"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r templateRow) toDomain() (domain.Template, error) {
	t := domain.Template{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Type:        domain.TemplateType(r.Type),
		Category:    r.Category,
		Content:     r.Content,
		Variables:   []domain.TemplateVariable{},
		IsPublic:    r.IsPublic,
		Tags:        r.Tags,
		UsageCount:  r.UsageCount,
		Version:     r.Version,
		CreatedByID: r.CreatedByID,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if len(r.Variables) > 0 {
		if err := json.Unmarshal(r.Variables, &t.Variables); err != nil {
			return domain.Template{}, fmt.Errorf("template %s unmarshal variables: %w", r.ID, err)
		}
	}
	return t, nil
}

func marshalVariables(vars []domain.TemplateVariable) ([]byte, error) {
	if vars == nil {
		vars = []domain.TemplateVariable{}
	}
	return json.Marshal(vars)
}

// visible restricts to active templates the viewer may read. A nil viewer
// sees every active template.
func visible(viewerID *uuid.UUID) sq.Sqlizer {
	active := sq.Eq{"is_active": true}
	if viewerID == nil {
		return active
	}
	return sq.And{active, sq.Or{sq.Eq{"is_public": true}, sq.Eq{"created_by_id": *viewerID}}}
}

func applyFilter(b sq.SelectBuilder, f domain.TemplateFilter) sq.SelectBuilder {
	b = b.Where(visible(f.ViewerID))
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		b = b.Where(postgres.ILikeAny(domain.ContainsPattern(strings.TrimSpace(*f.Search)), "name", "description"))
	}
	if f.Type != nil {
		b = b.Where(sq.Eq{"type": string(*f.Type)})
	}
	if f.Category != nil && *f.Category != "" {
		b = b.Where(sq.Eq{"category": *f.Category})
	}
	if f.Tag != nil && *f.Tag != "" {
		b = b.Where(sq.Expr("? = ANY(tags)", *f.Tag))
	}
	return b
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active template by primary key regardless of visibility.
// Permission checks belong to the caller.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate is GetByID with a row lock. It must run inside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Template, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).From("templates").
		Where(sq.Eq{"id": id, "is_active": true})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	var row templateRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "template", id)
	}

	t, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns one page of templates matching the filter ordered by usage
// (most used first) then most recently updated, plus the total match count.
func (r *Repo) List(ctx context.Context, f domain.TemplateFilter) ([]domain.Template, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := postgres.Count(ctx, q, applyFilter(postgres.Builder.Select("COUNT(*)").From("templates"), f))
	if err != nil {
		return nil, 0, fmt.Errorf("count templates: %w", err)
	}

	query := applyFilter(postgres.Builder.Select(columns...).From("templates"), f).
		OrderBy("usage_count DESC", "updated_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(max(f.Offset, 0)))

	var rows []templateRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("list templates: %w", err)
	}

	templates := make([]domain.Template, 0, len(rows))
	for _, row := range rows {
		t, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		templates = append(templates, t)
	}
	return templates, total, nil
}

type totalsRow struct {
	Total      int `db:"total"`
	Public     int `db:"public"`
	TotalUsage int `db:"total_usage"`
}

// Stats aggregates the active templates visible to viewerID (nil: all).
func (r *Repo) Stats(ctx context.Context, viewerID *uuid.UUID) (domain.TemplateStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := visible(viewerID)

	var totals totalsRow
	err := postgres.Get(ctx, q, &totals, postgres.Builder.Select(
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE is_public) AS public",
		"COALESCE(SUM(usage_count), 0) AS total_usage",
	).From("templates").Where(where))
	if err != nil {
		return domain.TemplateStats{}, fmt.Errorf("template stats totals: %w", err)
	}

	stats := domain.TemplateStats{
		Total:      totals.Total,
		Public:     totals.Public,
		Private:    totals.Total - totals.Public,
		TotalUsage: totals.TotalUsage,
		ByType:     []domain.CountByKey{},
		ByCategory: []domain.CountByKey{},
		MostUsed:   []domain.TemplateUsage{},
	}

	groups := []struct {
		column string
		dst    *[]domain.CountByKey
	}{
		{"type", &stats.ByType},
		{"category", &stats.ByCategory},
	}
	for _, g := range groups {
		query := postgres.Builder.Select(g.column+" AS key", "COUNT(*) AS count").
			From("templates").Where(where).
			GroupBy(g.column).
			OrderBy("count DESC", "key")
		if err := postgres.Select(ctx, q, g.dst, query); err != nil {
			return domain.TemplateStats{}, fmt.Errorf("template stats by %s: %w", g.column, err)
		}
	}

	query := postgres.Builder.Select("id", "name", "type", "usage_count").
		From("templates").Where(where).
		OrderBy("usage_count DESC", "updated_at DESC").
		Limit(mostUsedLimit)
	if err := postgres.Select(ctx, q, &stats.MostUsed, query); err != nil {
		return domain.TemplateStats{}, fmt.Errorf("template stats most used: %w", err)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new template and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t domain.Template) (*domain.Template, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	vars, err := marshalVariables(t.Variables)
	if err != nil {
		return nil, fmt.Errorf("template %s marshal variables: %w", t.ID, err)
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	query := postgres.Builder.Insert("templates").
		Columns(columns...).
		Values(t.ID, t.Name, t.Description, string(t.Type), t.Category, t.Content, vars, t.IsPublic,
			tags, t.UsageCount, t.Version, t.CreatedByID, t.IsActive, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row templateRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "template", t.ID)
	}

	created, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies the non-nil params to an active template, bumps its version
// by one and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.TemplateUpdateParams) (*domain.Template, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Update("templates").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()"))

	if p.Name != nil {
		query = query.Set("name", *p.Name)
	}
	if p.Description != nil {
		// Empty clears the column.
		if *p.Description == "" {
			query = query.Set("description", nil)
		} else {
			query = query.Set("description", *p.Description)
		}
	}
	if p.Type != nil {
		query = query.Set("type", string(*p.Type))
	}
	if p.Category != nil {
		query = query.Set("category", *p.Category)
	}
	if p.Content != nil {
		query = query.Set("content", *p.Content)
	}
	if p.Variables != nil {
		vars, err := marshalVariables(*p.Variables)
		if err != nil {
			return nil, fmt.Errorf("template %s marshal variables: %w", id, err)
		}
		query = query.Set("variables", vars)
	}
	if p.IsPublic != nil {
		query = query.Set("is_public", *p.IsPublic)
	}
	if p.Tags != nil {
		tags := *p.Tags
		if tags == nil {
			tags = []string{}
		}
		query = query.Set("tags", tags)
	}

	query = query.
		Where(sq.Eq{"id": id, "is_active": true}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row templateRow
	if err := postgres.Get(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "template", id)
	}

	updated, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SoftDelete marks an active template inactive.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Update("templates").
		Set("is_active", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "is_active": true}))
	if err != nil {
		return postgres.MapError(err, "template", id)
	}
	if n == 0 {
		return fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IncrementUsage atomically adds one to usage_count.
func (r *Repo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder.Update("templates").
		Set("usage_count", sq.Expr("usage_count + 1")).
		Where(sq.Eq{"id": id, "is_active": true}))
	if err != nil {
		return postgres.MapError(err, "template", id)
	}
	if n == 0 {
		return fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
