package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/service/search"
)

var _ searchService = &searchServiceMock{}

type searchServiceMock struct {
	SearchFunc      func(ctx context.Context, input search.Input) (*search.Result, error)
	SuggestionsFunc func(ctx context.Context, input search.SuggestInput) ([]domain.Suggestion, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Input search.Input
		}
		Suggestions []struct {
			Ctx   context.Context
			Input search.SuggestInput
		}
	}
	lockSearch      sync.RWMutex
	lockSuggestions sync.RWMutex
}

func (mock *searchServiceMock) Search(ctx context.Context, input search.Input) (*search.Result, error) {
	if mock.SearchFunc == nil {
		panic("searchServiceMock.SearchFunc: method is nil but searchService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input search.Input
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *searchServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input search.Input
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *searchServiceMock) Suggestions(ctx context.Context, input search.SuggestInput) ([]domain.Suggestion, error) {
	if mock.SuggestionsFunc == nil {
		panic("searchServiceMock.SuggestionsFunc: method is nil but searchService.Suggestions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input search.SuggestInput
	}{Ctx: ctx, Input: input}
	mock.lockSuggestions.Lock()
	mock.calls.Suggestions = append(mock.calls.Suggestions, callInfo)
	mock.lockSuggestions.Unlock()
	return mock.SuggestionsFunc(ctx, input)
}

func (mock *searchServiceMock) SuggestionsCalls() []struct {
	Ctx   context.Context
	Input search.SuggestInput
} {
	mock.lockSuggestions.RLock()
	calls := mock.calls.Suggestions
	mock.lockSuggestions.RUnlock()
	return calls
}
