// Package search runs one text query against clients, cases, documents and
// appointments at once and merges the per-entity pages.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

type clientRepo interface {
	Search(ctx context.Context, pattern string, limit, offset int) ([]domain.ClientHit, error)
	CountSearch(ctx context.Context, pattern string) (int, error)
}

type caseRepo interface {
	Search(ctx context.Context, pattern string, limit, offset int) ([]domain.CaseHit, error)
	CountSearch(ctx context.Context, pattern string) (int, error)
}

type documentRepo interface {
	Search(ctx context.Context, pattern string, limit, offset int) ([]domain.DocumentHit, error)
	CountSearch(ctx context.Context, pattern string) (int, error)
}

type appointmentRepo interface {
	Search(ctx context.Context, pattern string, limit, offset int) ([]domain.AppointmentHit, error)
	CountSearch(ctx context.Context, pattern string) (int, error)
}

// suggestionCache stores autocomplete results for a short time.
type suggestionCache interface {
	Get(ctx context.Context, key string) ([]domain.Suggestion, bool, error)
	Set(ctx context.Context, key string, items []domain.Suggestion) error
}

// durationObserver is satisfied by a prometheus.Observer.
type durationObserver interface {
	Observe(seconds float64)
}

// Option configures optional collaborators of the Service.
type Option func(*Service)

// WithSuggestionCache enables caching of suggestion results.
func WithSuggestionCache(c suggestionCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithDurationObserver reports the wall time of every search.
func WithDurationObserver(o durationObserver) Option {
	return func(s *Service) { s.observer = o }
}

// Limits bounds the page sizes accepted by the service.
type Limits struct {
	DefaultLimit   int
	MaxLimit       int
	MaxSuggestions int
}

// DefaultLimits are used for every zero field of the Limits passed to NewService.
var DefaultLimits = Limits{DefaultLimit: 10, MaxLimit: 50, MaxSuggestions: 20}

// Service implements unified search and autocomplete.
type Service struct {
	log          *slog.Logger
	clients      clientRepo
	cases        caseRepo
	documents    documentRepo
	appointments appointmentRepo
	limits       Limits
	cache        suggestionCache
	observer     durationObserver
	now          func() time.Time
}

// NewService creates a new search service.
func NewService(
	logger *slog.Logger,
	clients clientRepo,
	cases caseRepo,
	documents documentRepo,
	appointments appointmentRepo,
	limits Limits,
	opts ...Option,
) *Service {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = DefaultLimits.DefaultLimit
	}
	if limits.MaxLimit <= 0 {
		limits.MaxLimit = DefaultLimits.MaxLimit
	}
	if limits.MaxSuggestions <= 0 {
		limits.MaxSuggestions = DefaultLimits.MaxSuggestions
	}

	s := &Service{
		log:          logger.With("service", "search"),
		clients:      clients,
		cases:        cases,
		documents:    documents,
		appointments: appointments,
		limits:       limits,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
