// Package appointment implements appointment lookups for unified search.
package appointment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// Repo provides read access to appointments backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new appointment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type hitRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Type        string     `db:"type"`
	Status      string     `db:"status"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Location    *string    `db:"location"`
	CaseID      *uuid.UUID `db:"case_id"`
	CaseTitle   *string    `db:"case_title"`
	LawyerID    uuid.UUID  `db:"lawyer_id"`
	LawyerName  string     `db:"lawyer_name"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r hitRow) toDomain() domain.AppointmentHit {
	hit := domain.AppointmentHit{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    r.Location,
		Lawyer:      &domain.Ref{ID: r.LawyerID, Name: r.LawyerName},
		CreatedAt:   r.CreatedAt,
	}
	if r.CaseID != nil {
		ref := domain.Ref{ID: *r.CaseID}
		if r.CaseTitle != nil {
			ref.Name = *r.CaseTitle
		}
		hit.Case = &ref
	}
	return hit
}

func matching(pattern string) sq.Sqlizer {
	return postgres.ILikeAny(pattern, "a.title", "a.description")
}

// Search returns one page of appointments matching pattern, latest start first.
func (r *Repo) Search(ctx context.Context, pattern string, limit, offset int) ([]domain.AppointmentHit, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(
		"a.id", "a.title", "a.description", "a.type", "a.status", "a.start_date", "a.end_date",
		"a.location", "a.created_at",
		"c.id AS case_id", "c.title AS case_title",
		"u.id AS lawyer_id", "u.name AS lawyer_name",
	).
		From("appointments a").
		LeftJoin("cases c ON c.id = a.case_id").
		Join("users u ON u.id = a.lawyer_id").
		Where(matching(pattern)).
		OrderBy("a.start_date DESC", "a.id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []hitRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("search appointments: %w", err)
	}

	hits := make([]domain.AppointmentHit, len(rows))
	for i, row := range rows {
		hits[i] = row.toDomain()
	}
	return hits, nil
}

// CountSearch returns how many appointments match pattern.
func (r *Repo) CountSearch(ctx context.Context, pattern string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Count(ctx, q, postgres.Builder.Select("COUNT(*)").From("appointments a").Where(matching(pattern)))
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}
