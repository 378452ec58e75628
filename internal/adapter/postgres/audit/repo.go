// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	topUsers     = 10
)

var columns = []string{
	"id", "action", "entity", "entity_id", "entity_name", "user_id", "user_email", "user_name",
	"description", "old_data", "new_data", "metadata", "ip_address", "user_agent", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID          uuid.UUID  `db:"id"`
	Action      string     `db:"action"`
	Entity      string     `db:"entity"`
	EntityID    *uuid.UUID `db:"entity_id"`
	EntityName  *string    `db:"entity_name"`
	UserID      uuid.UUID  `db:"user_id"`
	UserEmail   string     `db:"user_email"`
	UserName    string     `db:"user_name"`
	Description *string    `db:"description"`
	OldData     []byte     `db:"old_data"`
	NewData     []byte     `db:"new_data"`
	Metadata    []byte     `db:"metadata"`
	IPAddress   *string    `db:"ip_address"`
	UserAgent   *string    `db:"user_agent"`
	CreatedAt   time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record.
func (r *Repo) Create(ctx context.Context, rec domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	oldData, err := marshalJSON(rec.OldData)
	if err != nil {
		return fmt.Errorf("audit_log marshal old_data: %w", err)
	}
	newData, err := marshalJSON(rec.NewData)
	if err != nil {
		return fmt.Errorf("audit_log marshal new_data: %w", err)
	}
	metadata, err := marshalJSON(rec.Metadata)
	if err != nil {
		return fmt.Errorf("audit_log marshal metadata: %w", err)
	}

	_, err = postgres.Exec(ctx, q, postgres.Builder.Insert("audit_logs").
		Columns(columns...).
		Values(rec.ID, string(rec.Action), string(rec.Entity), rec.EntityID, rec.EntityName,
			rec.UserID, rec.UserEmail, rec.UserName, rec.Description, oldData, newData, metadata,
			rec.IPAddress, rec.UserAgent, rec.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "audit_log", rec.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one audit record.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row auditRow
	if err := postgres.Get(ctx, q, &row, postgres.Builder.Select(columns...).From("audit_logs").Where(sq.Eq{"id": id})); err != nil {
		return nil, postgres.MapError(err, "audit_log", id)
	}

	rec, err := toDomain(row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns a page of audit records matching the filter, newest first,
// plus the total count of matches.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := filterWhere(f)

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := postgres.Count(ctx, q, postgres.Builder.Select("COUNT(*)").From("audit_logs").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count audit_logs: %w", err)
	}

	query := postgres.Builder.Select(columns...).From("audit_logs").Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(max(f.Offset, 0)))

	var rows []auditRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("list audit_logs: %w", err)
	}

	records := make([]domain.AuditRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toDomain(row)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, nil
}

// Stats groups audit records created at or after since by action, entity
// and user (top users only). A non-nil entity narrows every grouping.
func (r *Repo) Stats(ctx context.Context, since time.Time, entity *domain.EntityType) (domain.AuditStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{sq.GtOrEq{"created_at": since}}
	if entity != nil {
		where = append(where, sq.Eq{"entity": string(*entity)})
	}

	stats := domain.AuditStats{
		Since:    since,
		ByAction: []domain.CountByKey{},
		ByEntity: []domain.CountByKey{},
		ByUser:   []domain.UserActivity{},
	}

	total, err := postgres.Count(ctx, q, postgres.Builder.Select("COUNT(*)").From("audit_logs").Where(where))
	if err != nil {
		return domain.AuditStats{}, fmt.Errorf("audit stats total: %w", err)
	}
	stats.Total = total

	groups := []struct {
		column string
		dst    *[]domain.CountByKey
	}{
		{"action", &stats.ByAction},
		{"entity", &stats.ByEntity},
	}
	for _, g := range groups {
		query := postgres.Builder.Select(g.column+" AS key", "COUNT(*) AS count").
			From("audit_logs").Where(where).
			GroupBy(g.column).
			OrderBy("count DESC", "key")
		if err := postgres.Select(ctx, q, g.dst, query); err != nil {
			return domain.AuditStats{}, fmt.Errorf("audit stats by %s: %w", g.column, err)
		}
	}

	byUser := postgres.Builder.Select("user_id", "MAX(user_name) AS user_name", "MAX(user_email) AS user_email", "COUNT(*) AS count").
		From("audit_logs").Where(where).
		GroupBy("user_id").
		OrderBy("count DESC", "user_id").
		Limit(topUsers)
	if err := postgres.Select(ctx, q, &stats.ByUser, byUser); err != nil {
		return domain.AuditStats{}, fmt.Errorf("audit stats by user: %w", err)
	}

	return stats, nil
}

func filterWhere(f domain.AuditFilter) sq.And {
	where := sq.And{}
	if f.UserID != nil {
		where = append(where, sq.Eq{"user_id": *f.UserID})
	}
	if f.Entity != nil {
		where = append(where, sq.Eq{"entity": string(*f.Entity)})
	}
	if f.Action != nil {
		where = append(where, sq.Eq{"action": string(*f.Action)})
	}
	if f.EntityID != nil {
		where = append(where, sq.Eq{"entity_id": *f.EntityID})
	}
	if f.StartDate != nil {
		where = append(where, sq.GtOrEq{"created_at": *f.StartDate})
	}
	if f.EndDate != nil {
		where = append(where, sq.LtOrEq{"created_at": *f.EndDate})
	}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.ILikeAny(domain.ContainsPattern(*f.Search),
			"user_email", "user_name", "entity_name", "description"))
	}
	return where
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func marshalJSON(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func unmarshalJSON(id uuid.UUID, field string, raw []byte) (map[string]any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	m := make(map[string]any)
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("audit_log %s unmarshal %s: %w", id, field, err)
	}
	return m, nil
}

func toDomain(row auditRow) (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:          row.ID,
		Action:      domain.AuditAction(row.Action),
		Entity:      domain.EntityType(row.Entity),
		EntityID:    row.EntityID,
		EntityName:  row.EntityName,
		UserID:      row.UserID,
		UserEmail:   row.UserEmail,
		UserName:    row.UserName,
		Description: row.Description,
		IPAddress:   row.IPAddress,
		UserAgent:   row.UserAgent,
		CreatedAt:   row.CreatedAt,
	}

	var err error
	if rec.OldData, err = unmarshalJSON(row.ID, "old_data", row.OldData); err != nil {
		return domain.AuditRecord{}, err
	}
	if rec.NewData, err = unmarshalJSON(row.ID, "new_data", row.NewData); err != nil {
		return domain.AuditRecord{}, err
	}
	if rec.Metadata, err = unmarshalJSON(row.ID, "metadata", row.Metadata); err != nil {
		return domain.AuditRecord{}, err
	}
	return rec, nil
}
