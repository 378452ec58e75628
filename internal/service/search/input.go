package search

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const (
	minQueryLen           = 2
	maxQueryLen           = 100
	defaultSuggestionSize = 5
)

// Input is a unified search request. Zero Type, Page and Limit select the
// defaults (ALL, 1 and the configured default limit).
type Input struct {
	Query string
	Type  domain.SearchType
	Page  int
	Limit int
}

// normalize validates the input against limits and returns it with the query
// normalized and every default applied.
func (i Input) normalize(limits Limits) (Input, error) {
	var errs domain.FieldErrors

	i.Query = domain.NormalizeQuery(i.Query)
	checkQuery(&errs, i.Query)

	if i.Type == "" {
		i.Type = domain.SearchTypeAll
	}
	if !i.Type.IsValid() {
		errs.Add("type", "must be one of ALL, CLIENTS, CASES, DOCUMENTS, APPOINTMENTS")
	}

	if i.Page == 0 {
		i.Page = 1
	}
	if i.Page < 1 {
		errs.Add("page", "must be at least 1")
	}

	if i.Limit == 0 {
		i.Limit = limits.DefaultLimit
	}
	if i.Limit < 1 || i.Limit > limits.MaxLimit {
		errs.Add("limit", fmt.Sprintf("must be between 1 and %d", limits.MaxLimit))
	}
	domain.Page{Number: i.Page, Limit: i.Limit}.CheckRange(&errs)

	return i, errs.Err()
}

// SuggestInput is an autocomplete request. Zero Limit selects 5.
type SuggestInput struct {
	Query string
	Limit int
}

func (i SuggestInput) normalize(limits Limits) (SuggestInput, error) {
	var errs domain.FieldErrors

	i.Query = domain.NormalizeQuery(i.Query)
	checkQuery(&errs, i.Query)

	if i.Limit == 0 {
		i.Limit = defaultSuggestionSize
	}
	if i.Limit < 1 || i.Limit > limits.MaxSuggestions {
		errs.Add("limit", fmt.Sprintf("must be between 1 and %d", limits.MaxSuggestions))
	}

	return i, errs.Err()
}

func checkQuery(errs *domain.FieldErrors, q string) {
	switch n := utf8.RuneCountInString(q); {
	case n == 0:
		errs.Add("query", "required")
	case n < minQueryLen:
		errs.Add("query", "must be at least 2 characters")
	case n > maxQueryLen:
		errs.Add("query", "must be at most 100 characters")
	}
}
