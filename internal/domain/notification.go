package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to one user.
type Notification struct {
	ID            uuid.UUID
	Title         string
	Message       string
	Type          NotificationType
	Priority      NotificationPriority
	IsRead        bool
	ReadAt        *time.Time
	ActionURL     *string
	Metadata      map[string]any
	UserID        uuid.UUID
	CaseID        *uuid.UUID
	DocumentID    *uuid.UUID
	AppointmentID *uuid.UUID
	CreatedAt     time.Time
}

// NotificationFilter narrows a user's notification listing.
type NotificationFilter struct {
	UserID uuid.UUID
	IsRead *bool
	Type   *NotificationType
	Limit  int
	Offset int
}
