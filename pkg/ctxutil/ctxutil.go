package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

type ctxKey string

const (
	actorKey      ctxKey = "actor"
	requestIDKey  ctxKey = "request_id"
	clientInfoKey ctxKey = "client_info"
)

// WithActor stores the authenticated actor in the context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the authenticated actor from the context.
// Returns false if the value is missing or carries a nil user ID.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || actor.ID == uuid.Nil {
		return domain.Actor{}, false
	}
	return actor, true
}

// WithUserID stores a bare user ID as the actor. Role, email and name stay empty.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithActor(ctx, domain.Actor{ID: id})
}

// UserIDFromCtx extracts the actor's user ID from the context.
// Returns uuid.Nil and false if the actor is missing.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	actor, ok := ActorFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return actor.ID, true
}

// IsAdminCtx reports whether the context actor has the ADMIN role.
func IsAdminCtx(ctx context.Context) bool {
	actor, ok := ActorFromCtx(ctx)
	return ok && actor.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ClientInfo describes the remote caller of an HTTP request.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// WithClientInfo stores the caller's network details in the context.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey, info)
}

// ClientInfoFromCtx returns the caller's network details, or the zero value.
func ClientInfoFromCtx(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey).(ClientInfo)
	return info
}
