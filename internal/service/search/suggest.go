package search

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// Suggestions returns up to limit autocomplete items: a quarter of the
// limit (rounded up) from each of clients, cases and documents, in that order.
func (s *Service) Suggestions(ctx context.Context, input SuggestInput) ([]domain.Suggestion, error) {
	in, err := input.normalize(s.limits)
	if err != nil {
		return nil, err
	}

	key := cacheKey(in)
	if s.cache != nil {
		items, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.WarnContext(ctx, "suggestion cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return items, nil
		}
	}

	pattern := domain.ContainsPattern(in.Query)
	per := (in.Limit + 3) / 4

	var (
		clients   []domain.ClientHit
		cases     []domain.CaseHit
		documents []domain.DocumentHit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = s.clients.Search(gctx, pattern, per, 0)
		return wrap("suggest clients", err)
	})
	g.Go(func() (err error) {
		cases, err = s.cases.Search(gctx, pattern, per, 0)
		return wrap("suggest cases", err)
	})
	g.Go(func() (err error) {
		documents, err = s.documents.Search(gctx, pattern, per, 0)
		return wrap("suggest documents", err)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search.Suggestions: %w", err)
	}

	items := make([]domain.Suggestion, 0, len(clients)+len(cases)+len(documents))
	for _, c := range clients {
		items = append(items, clientSuggestion(c))
	}
	for _, c := range cases {
		items = append(items, caseSuggestion(c))
	}
	for _, d := range documents {
		items = append(items, documentSuggestion(d))
	}
	if len(items) > in.Limit {
		items = items[:in.Limit]
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items); err != nil {
			s.log.WarnContext(ctx, "suggestion cache write failed", slog.String("error", err.Error()))
		}
	}
	return items, nil
}

func cacheKey(in SuggestInput) string {
	return fmt.Sprintf("suggest:%d:%s", in.Limit, in.Query)
}

func clientSuggestion(c domain.ClientHit) domain.Suggestion {
	subtitle := c.Email
	if c.Company != nil && *c.Company != "" {
		subtitle = *c.Company
	}
	return domain.Suggestion{
		ID:       c.ID,
		Text:     c.Name,
		Type:     "client",
		Subtitle: subtitle,
		URL:      "/clients/" + c.ID.String(),
	}
}

func caseSuggestion(c domain.CaseHit) domain.Suggestion {
	var subtitle string
	switch {
	case c.Number != nil && c.Client != nil:
		subtitle = *c.Number + " - " + c.Client.Name
	case c.Number != nil:
		subtitle = *c.Number
	case c.Client != nil:
		subtitle = c.Client.Name
	}
	return domain.Suggestion{
		ID:       c.ID,
		Text:     c.Title,
		Type:     "case",
		Subtitle: subtitle,
		URL:      "/cases/" + c.ID.String(),
	}
}

func documentSuggestion(d domain.DocumentHit) domain.Suggestion {
	subtitle := d.FileName
	if d.Case != nil {
		subtitle = d.Case.Name
	}
	return domain.Suggestion{
		ID:       d.ID,
		Text:     d.Name,
		Type:     "document",
		Subtitle: subtitle,
		URL:      "/documents/" + d.ID.String(),
	}
}
