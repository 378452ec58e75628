package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/service/audit"
)

type auditService interface {
	List(ctx context.Context, input audit.ListInput) (*audit.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error)
	Stats(ctx context.Context, input audit.StatsInput) (*domain.AuditStats, error)
}

// AuditHandler serves the read side of the audit log. All endpoints are
// admin-only; the service enforces it.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

type auditListResponse struct {
	Records    []auditRecordResponse `json:"records"`
	Pagination pagination            `json:"pagination"`
}

// List handles GET /audit.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := audit.ListInput{
		Page:      q.positiveInt("page"),
		Limit:     q.positiveInt("limit"),
		UserID:    q.optUUID("userId"),
		EntityID:  q.optUUID("entityId"),
		StartDate: q.optTime("startDate", false),
		EndDate:   q.optTime("endDate", true),
		Search:    q.optString("search"),
	}
	if e := q.optString("entity"); e != nil {
		entity := domain.EntityType(*e)
		input.Entity = &entity
	}
	if a := q.optString("action"); a != nil {
		action := domain.AuditAction(*a)
		input.Action = &action
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, auditListResponse{
		Records: mapSlice(res.Records, toAuditRecordResponse),
		Pagination: pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	})
}

// Stats handles GET /audit/stats.
func (h *AuditHandler) Stats(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := audit.StatsInput{Period: domain.StatsPeriod(q.str("period"))}
	if e := q.optString("entity"); e != nil {
		entity := domain.EntityType(*e)
		input.Entity = &entity
	}

	stats, err := h.svc.Stats(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditStatsResponse(stats))
}

// Get handles GET /audit/{id}.
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditRecordResponse(rec))
}
