package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/service/search"
)

type searchService interface {
	Search(ctx context.Context, input search.Input) (*search.Result, error)
	Suggestions(ctx context.Context, input search.SuggestInput) ([]domain.Suggestion, error)
}

// SearchHandler serves the unified search endpoints.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

type searchResultsResponse struct {
	Clients      []domain.ClientHit      `json:"clients"`
	Cases        []domain.CaseHit        `json:"cases"`
	Documents    []domain.DocumentHit    `json:"documents"`
	Appointments []domain.AppointmentHit `json:"appointments"`
}

type searchMetaResponse struct {
	Total         int               `json:"total"`
	Query         string            `json:"query"`
	Type          domain.SearchType `json:"type"`
	ExecutionTime int64             `json:"executionTime"`
	Page          int               `json:"page"`
	Limit         int               `json:"limit"`
	TotalPages    int               `json:"totalPages"`
}

type searchCountsResponse struct {
	Clients      int `json:"clients"`
	Cases        int `json:"cases"`
	Documents    int `json:"documents"`
	Appointments int `json:"appointments"`
	CurrentPage  int `json:"currentPage"`
}

type searchResponse struct {
	Results searchResultsResponse `json:"results"`
	Meta    searchMetaResponse    `json:"meta"`
	Counts  searchCountsResponse  `json:"counts"`
}

// Search handles GET /search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := search.Input{
		Query: q.values.Get("query"),
		Type:  domain.SearchType(q.str("type")),
		Page:  q.positiveInt("page"),
		Limit: q.positiveInt("limit"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Search(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results: searchResultsResponse{
			Clients:      res.Clients,
			Cases:        res.Cases,
			Documents:    res.Documents,
			Appointments: res.Appointments,
		},
		Meta: searchMetaResponse{
			Total:         res.Meta.Total,
			Query:         res.Meta.Query,
			Type:          res.Meta.Type,
			ExecutionTime: res.Meta.ExecutionTime,
			Page:          res.Meta.Page,
			Limit:         res.Meta.Limit,
			TotalPages:    res.Meta.TotalPages,
		},
		Counts: searchCountsResponse{
			Clients:      res.Counts.Clients,
			Cases:        res.Counts.Cases,
			Documents:    res.Counts.Documents,
			Appointments: res.Counts.Appointments,
			CurrentPage:  res.Counts.CurrentPage,
		},
	})
}

// Suggestions handles GET /search/suggestions.
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := search.SuggestInput{
		Query: q.values.Get("query"),
		Limit: q.positiveInt("limit"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.Suggestions(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if items == nil {
		items = []domain.Suggestion{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"suggestions": items})
}
