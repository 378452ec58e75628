package audit

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	maxSearchLen = 200
)

// ListInput holds the filters of an audit listing. Zero Page and Limit
// select the defaults.
type ListInput struct {
	Page      int
	Limit     int
	UserID    *uuid.UUID
	Entity    *domain.EntityType
	Action    *domain.AuditAction
	EntityID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Search    *string
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs domain.FieldErrors

	if i.Page < 0 {
		errs.Add("page", "must be at least 1")
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs.Add("limit", "must be between 1 and 100")
	}
	if i.Entity != nil && !i.Entity.IsValid() {
		errs.Add("entity", "unknown entity type")
	}
	if i.Action != nil && !i.Action.IsValid() {
		errs.Add("action", "unknown action")
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs.Add("endDate", "must not be before startDate")
	}
	domain.Page{Number: i.PageOrDefault(), Limit: i.LimitOrDefault()}.CheckRange(&errs)
	if i.Search != nil {
		trimmed := strings.TrimSpace(*i.Search)
		switch {
		case trimmed == "":
			i.Search = nil
		case len(trimmed) > maxSearchLen:
			errs.Add("search", "max 200 characters")
		default:
			i.Search = &trimmed
		}
	}

	return errs.Err()
}

// PageOrDefault returns the requested page, or 1 when none was given.
func (i ListInput) PageOrDefault() int {
	if i.Page < 1 {
		return 1
	}
	return i.Page
}

// LimitOrDefault returns the requested page size, or 20 when none was given.
func (i ListInput) LimitOrDefault() int {
	if i.Limit < 1 {
		return defaultLimit
	}
	return i.Limit
}

// StatsInput selects the statistics window. An empty Period means month.
type StatsInput struct {
	Period domain.StatsPeriod
	Entity *domain.EntityType
}

// Validate checks all fields and collects all errors.
func (i StatsInput) Validate() error {
	var errs domain.FieldErrors
	if i.Period != "" && !i.Period.IsValid() {
		errs.Add("period", "must be one of today, week, month, year")
	}
	if i.Entity != nil && !i.Entity.IsValid() {
		errs.Add("entity", "unknown entity type")
	}
	return errs.Err()
}
