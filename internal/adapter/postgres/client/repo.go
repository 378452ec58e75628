// Package client implements client lookups for unified search. A client is a
// users row with role CLIENT plus an optional client_profiles row.
package client

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// Repo provides read access to clients backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type hitRow struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	CPF        *string   `db:"cpf"`
	CNPJ       *string   `db:"cnpj"`
	Phone      *string   `db:"phone"`
	Company    *string   `db:"company"`
	CasesCount int       `db:"cases_count"`
	CreatedAt  time.Time `db:"created_at"`
}

// searchable restricts to active clients matching pattern on any contact field.
func searchable(b sq.SelectBuilder, pattern string) sq.SelectBuilder {
	return b.From("users u").
		LeftJoin("client_profiles p ON p.user_id = u.id").
		Where(sq.Eq{"u.role": string(domain.UserRoleClient), "u.is_active": true}).
		Where(postgres.ILikeAny(pattern, "u.name", "u.email", "p.cpf", "p.cnpj", "p.phone", "p.company"))
}

// Search returns one page of clients matching pattern, newest first.
// pattern is an ILIKE pattern including wildcards.
func (r *Repo) Search(ctx context.Context, pattern string, limit, offset int) ([]domain.ClientHit, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := searchable(postgres.Builder.Select(
		"u.id", "u.name", "u.email", "p.cpf", "p.cnpj", "p.phone", "p.company", "u.created_at",
		"(SELECT COUNT(*) FROM cases c WHERE c.client_id = u.id) AS cases_count",
	), pattern).
		OrderBy("u.created_at DESC", "u.id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []hitRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}

	hits := make([]domain.ClientHit, len(rows))
	for i, row := range rows {
		hits[i] = domain.ClientHit(row)
	}
	return hits, nil
}

// CountSearch returns how many clients match pattern.
func (r *Repo) CountSearch(ctx context.Context, pattern string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Count(ctx, q, searchable(postgres.Builder.Select("COUNT(*)"), pattern))
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}
