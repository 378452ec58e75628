package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts. Metrics may be nil.
type Handlers struct {
	Health        *HealthHandler
	Search        *SearchHandler
	Templates     *TemplateHandler
	Audit         *AuditHandler
	Notifications *NotificationHandler
	Metrics       http.Handler
}

// NewRouter registers every route. Health and metrics routes are public;
// the rest go through protect, which must reject anonymous callers.
func NewRouter(h Handlers, protect func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	api := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, protect(fn))
	}

	api("GET /search", h.Search.Search)
	api("GET /search/suggestions", h.Search.Suggestions)

	api("GET /templates", h.Templates.List)
	api("GET /templates/stats", h.Templates.Stats)
	api("GET /templates/{id}", h.Templates.Get)
	api("POST /templates", h.Templates.Create)
	api("PUT /templates/{id}", h.Templates.Update)
	api("DELETE /templates/{id}", h.Templates.Delete)
	api("POST /templates/{id}/duplicate", h.Templates.Duplicate)
	api("POST /templates/{id}/generate", h.Templates.Generate)

	api("GET /audit", h.Audit.List)
	api("GET /audit/stats", h.Audit.Stats)
	api("GET /audit/{id}", h.Audit.Get)

	api("GET /notifications", h.Notifications.List)
	api("GET /notifications/unread-count", h.Notifications.UnreadCount)
	api("POST /notifications", h.Notifications.Create)
	api("PATCH /notifications/read-all", h.Notifications.MarkAllRead)
	api("PATCH /notifications/{id}/read", h.Notifications.MarkRead)
	api("PATCH /notifications/{id}/unread", h.Notifications.MarkUnread)
	api("DELETE /notifications/{id}", h.Notifications.Delete)

	return mux
}
