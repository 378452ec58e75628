package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents any account of the practice: staff members and clients.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor is the authenticated identity performing a request.
// It is derived from a verified token and never persisted on its own.
type Actor struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  UserRole
}

// ActorFromUser builds the request actor for a loaded user.
func ActorFromUser(u User) Actor {
	return Actor{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// IsAdmin reports whether the actor has the ADMIN role.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
