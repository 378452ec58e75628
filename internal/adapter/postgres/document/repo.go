// Package document implements document lookups for unified search.
package document

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// Repo provides read access to documents backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type hitRow struct {
	ID             uuid.UUID  `db:"id"`
	Name           string     `db:"name"`
	FileName       string     `db:"file_name"`
	MimeType       *string    `db:"mime_type"`
	Size           int64      `db:"size"`
	CaseID         *uuid.UUID `db:"case_id"`
	CaseTitle      *string    `db:"case_title"`
	UploadedByID   uuid.UUID  `db:"uploaded_by_id"`
	UploadedByName string     `db:"uploaded_by_name"`
	CreatedAt      time.Time  `db:"created_at"`
}

func (r hitRow) toDomain() domain.DocumentHit {
	hit := domain.DocumentHit{
		ID:         r.ID,
		Name:       r.Name,
		FileName:   r.FileName,
		MimeType:   r.MimeType,
		Size:       r.Size,
		UploadedBy: &domain.Ref{ID: r.UploadedByID, Name: r.UploadedByName},
		CreatedAt:  r.CreatedAt,
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
	return postgres.ILikeAny(pattern, "d.name", "d.file_name")
}

// Search returns one page of documents matching pattern, newest first.
func (r *Repo) Search(ctx context.Context, pattern string, limit, offset int) ([]domain.DocumentHit, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(
		"d.id", "d.name", "d.file_name", "d.mime_type", "d.size", "d.created_at",
		"c.id AS case_id", "c.title AS case_title",
		"u.id AS uploaded_by_id", "u.name AS uploaded_by_name",
	).
		From("documents d").
		LeftJoin("cases c ON c.id = d.case_id").
		Join("users u ON u.id = d.uploaded_by_id").
		Where(matching(pattern)).
		OrderBy("d.created_at DESC", "d.id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []hitRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	hits := make([]domain.DocumentHit, len(rows))
	for i, row := range rows {
		hits[i] = row.toDomain()
	}
	return hits, nil
}

// CountSearch returns how many documents match pattern.
func (r *Repo) CountSearch(ctx context.Context, pattern string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Count(ctx, q, postgres.Builder.Select("COUNT(*)").From("documents d").Where(matching(pattern)))
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}
