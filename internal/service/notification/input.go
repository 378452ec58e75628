package notification

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const (
	maxTitleLen     = 200
	maxMessageLen   = 2000
	maxActionURLLen = 500
	defaultLimit    = 20
	maxLimit        = 100
)

// CreateInput holds the parameters for creating a notification. A nil
// UserID addresses the caller.
type CreateInput struct {
	Title         string
	Message       string
	Type          domain.NotificationType
	Priority      domain.NotificationPriority
	ActionURL     *string
	Metadata      map[string]any
	UserID        *uuid.UUID
	CaseID        *uuid.UUID
	DocumentID    *uuid.UUID
	AppointmentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	switch n := utf8.RuneCountInString(strings.TrimSpace(i.Title)); {
	case n == 0:
		errs.Add("title", "required")
	case n > maxTitleLen:
		errs.Add("title", fmt.Sprintf("max %d characters", maxTitleLen))
	}
	switch n := utf8.RuneCountInString(strings.TrimSpace(i.Message)); {
	case n == 0:
		errs.Add("message", "required")
	case n > maxMessageLen:
		errs.Add("message", fmt.Sprintf("max %d characters", maxMessageLen))
	}
	if i.Type != "" && !i.Type.IsValid() {
		errs.Add("type", "unknown notification type")
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs.Add("priority", "must be one of LOW, MEDIUM, HIGH, URGENT")
	}
	if i.ActionURL != nil && len(*i.ActionURL) > maxActionURLLen {
		errs.Add("actionUrl", fmt.Sprintf("max %d characters", maxActionURLLen))
	}
	if i.UserID != nil && *i.UserID == uuid.Nil {
		errs.Add("userId", "must be a valid id")
	}

	return errs.Err()
}

// ListInput holds the filters of the caller's notification listing.
type ListInput struct {
	IsRead *bool
	Type   *domain.NotificationType
	Page   int
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs domain.FieldErrors
	if i.Page < 0 {
		errs.Add("page", "must be at least 1")
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs.Add("limit", fmt.Sprintf("must be between 1 and %d", maxLimit))
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs.Add("type", "unknown notification type")
	}
	i.page().CheckRange(&errs)
	return errs.Err()
}

func (i ListInput) page() domain.Page {
	p := domain.Page{Number: i.Page, Limit: i.Limit}
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	return p
}
