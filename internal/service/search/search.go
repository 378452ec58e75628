package search

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// Counts holds the number of matches per entity and the number of items
// returned on the requested page across all entities.
type Counts struct {
	Clients      int
	Cases        int
	Documents    int
	Appointments int
	CurrentPage  int
}

// Meta describes a search response.
type Meta struct {
	Total         int
	Query         string
	Type          domain.SearchType
	ExecutionTime int64
	Page          int
	Limit         int
	TotalPages    int
}

// Result is the merged answer of a unified search. Every entity slice is
// paginated on its own: page N holds up to Limit items of each kind.
type Result struct {
	Clients      []domain.ClientHit
	Cases        []domain.CaseHit
	Documents    []domain.DocumentHit
	Appointments []domain.AppointmentHit
	Counts       Counts
	Meta         Meta
}

// Search runs the count and page queries of every entity selected by the
// input type concurrently. The first failure cancels the rest and fails the
// whole search.
func (s *Service) Search(ctx context.Context, input Input) (*Result, error) {
	in, err := input.normalize(s.limits)
	if err != nil {
		return nil, err
	}

	start := s.now()
	pattern := domain.ContainsPattern(in.Query)
	page := domain.Page{Number: in.Page, Limit: in.Limit}
	offset := page.Offset()

	res := &Result{
		Clients:      []domain.ClientHit{},
		Cases:        []domain.CaseHit{},
		Documents:    []domain.DocumentHit{},
		Appointments: []domain.AppointmentHit{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if in.Type.Includes(domain.SearchTypeClients) {
		g.Go(func() (err error) {
			res.Counts.Clients, err = s.clients.CountSearch(gctx, pattern)
			return wrap("count clients", err)
		})
		g.Go(func() (err error) {
			res.Clients, err = s.clients.Search(gctx, pattern, in.Limit, offset)
			return wrap("search clients", err)
		})
	}
	if in.Type.Includes(domain.SearchTypeCases) {
		g.Go(func() (err error) {
			res.Counts.Cases, err = s.cases.CountSearch(gctx, pattern)
			return wrap("count cases", err)
		})
		g.Go(func() (err error) {
			res.Cases, err = s.cases.Search(gctx, pattern, in.Limit, offset)
			return wrap("search cases", err)
		})
	}
	if in.Type.Includes(domain.SearchTypeDocuments) {
		g.Go(func() (err error) {
			res.Counts.Documents, err = s.documents.CountSearch(gctx, pattern)
			return wrap("count documents", err)
		})
		g.Go(func() (err error) {
			res.Documents, err = s.documents.Search(gctx, pattern, in.Limit, offset)
			return wrap("search documents", err)
		})
	}
	if in.Type.Includes(domain.SearchTypeAppointments) {
		g.Go(func() (err error) {
			res.Counts.Appointments, err = s.appointments.CountSearch(gctx, pattern)
			return wrap("count appointments", err)
		})
		g.Go(func() (err error) {
			res.Appointments, err = s.appointments.Search(gctx, pattern, in.Limit, offset)
			return wrap("search appointments", err)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search.Search: %w", err)
	}

	// Repositories return nil for empty pages; keep JSON arrays non-null.
	if res.Clients == nil {
		res.Clients = []domain.ClientHit{}
	}
	if res.Cases == nil {
		res.Cases = []domain.CaseHit{}
	}
	if res.Documents == nil {
		res.Documents = []domain.DocumentHit{}
	}
	if res.Appointments == nil {
		res.Appointments = []domain.AppointmentHit{}
	}

	total := res.Counts.Clients + res.Counts.Cases + res.Counts.Documents + res.Counts.Appointments
	res.Counts.CurrentPage = len(res.Clients) + len(res.Cases) + len(res.Documents) + len(res.Appointments)

	elapsed := s.now().Sub(start)
	res.Meta = Meta{
		Total:         total,
		Query:         in.Query,
		Type:          in.Type,
		ExecutionTime: elapsed.Milliseconds(),
		Page:          in.Page,
		Limit:         in.Limit,
		TotalPages:    page.TotalPages(total),
	}

	if s.observer != nil {
		s.observer.Observe(elapsed.Seconds())
	}
	s.log.DebugContext(ctx, "search completed",
		slog.String("type", in.Type.String()),
		slog.Int("total", total),
		slog.Int64("execution_ms", res.Meta.ExecutionTime),
	)

	return res, nil
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
