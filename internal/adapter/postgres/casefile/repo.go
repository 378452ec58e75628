// Package casefile implements case lookups for unified search.
package casefile

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// Repo provides read access to cases backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new case repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type hitRow struct {
	ID          uuid.UUID `db:"id"`
	Number      *string   `db:"number"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Status      string    `db:"status"`
	Priority    string    `db:"priority"`
	ClientID    uuid.UUID `db:"client_id"`
	ClientName  string    `db:"client_name"`
	LawyerID    uuid.UUID `db:"lawyer_id"`
	LawyerName  string    `db:"lawyer_name"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r hitRow) toDomain() domain.CaseHit {
	return domain.CaseHit{
		ID:          r.ID,
		Number:      r.Number,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Client:      &domain.Ref{ID: r.ClientID, Name: r.ClientName},
		Lawyer:      &domain.Ref{ID: r.LawyerID, Name: r.LawyerName},
		CreatedAt:   r.CreatedAt,
	}
}

func matching(pattern string) sq.Sqlizer {
	return postgres.ILikeAny(pattern, "c.title", "c.description", "c.number")
}

// Search returns one page of cases matching pattern, newest first.
func (r *Repo) Search(ctx context.Context, pattern string, limit, offset int) ([]domain.CaseHit, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(
		"c.id", "c.number", "c.title", "c.description", "c.status", "c.priority", "c.created_at",
		"cl.id AS client_id", "cl.name AS client_name",
		"lw.id AS lawyer_id", "lw.name AS lawyer_name",
	).
		From("cases c").
		Join("users cl ON cl.id = c.client_id").
		Join("users lw ON lw.id = c.lawyer_id").
		Where(matching(pattern)).
		OrderBy("c.created_at DESC", "c.id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []hitRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("search cases: %w", err)
	}

	hits := make([]domain.CaseHit, len(rows))
	for i, row := range rows {
		hits[i] = row.toDomain()
	}
	return hits, nil
}

// CountSearch returns how many cases match pattern.
func (r *Repo) CountSearch(ctx context.Context, pattern string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Count(ctx, q, postgres.Builder.Select("COUNT(*)").From("cases c").Where(matching(pattern)))
	if err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}
	return n, nil
}
