package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an append-only log entry describing who did what to which
// entity. OldData, NewData and Metadata are schema-less JSON objects.
type AuditRecord struct {
	ID          uuid.UUID
	Action      AuditAction
	Entity      EntityType
	EntityID    *uuid.UUID
	EntityName  *string
	UserID      uuid.UUID
	UserEmail   string
	UserName    string
	Description *string
	OldData     map[string]any
	NewData     map[string]any
	Metadata    map[string]any
	IPAddress   *string
	UserAgent   *string
	CreatedAt   time.Time
}

// AuditFilter narrows an audit listing. Nil fields are not applied.
type AuditFilter struct {
	UserID    *uuid.UUID
	Entity    *EntityType
	Action    *AuditAction
	EntityID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Search    *string
	Limit     int
	Offset    int
}

// CountByKey is one bucket of a grouped count.
type CountByKey struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// UserActivity is the number of audit records attributed to one user.
type UserActivity struct {
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Count     int       `json:"count"`
}

// AuditStats aggregates audit records within a period window.
type AuditStats struct {
	Period   StatsPeriod
	Since    time.Time
	Total    int
	ByAction []CountByKey
	ByEntity []CountByKey
	ByUser   []UserActivity
}
