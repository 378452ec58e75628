package search

import (
	"context"
	"sync"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	SearchFunc      func(ctx context.Context, pattern string, limit int, offset int) ([]domain.DocumentHit, error)
	CountSearchFunc func(ctx context.Context, pattern string) (int, error)

	calls struct {
		Search []struct {
			Ctx     context.Context
			Pattern string
			Limit   int
			Offset  int
		}
		CountSearch []struct {
			Ctx     context.Context
			Pattern string
		}
	}
	lockSearch      sync.RWMutex
	lockCountSearch sync.RWMutex
}

func (mock *documentRepoMock) Search(ctx context.Context, pattern string, limit int, offset int) ([]domain.DocumentHit, error) {
	if mock.SearchFunc == nil {
		panic("documentRepoMock.SearchFunc: method is nil but documentRepo.Search was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Pattern string
		Limit   int
		Offset  int
	}{Ctx: ctx, Pattern: pattern, Limit: limit, Offset: offset}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, pattern, limit, offset)
}

func (mock *documentRepoMock) SearchCalls() []struct {
	Ctx     context.Context
	Pattern string
	Limit   int
	Offset  int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *documentRepoMock) CountSearch(ctx context.Context, pattern string) (int, error) {
	if mock.CountSearchFunc == nil {
		panic("documentRepoMock.CountSearchFunc: method is nil but documentRepo.CountSearch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Pattern string
	}{Ctx: ctx, Pattern: pattern}
	mock.lockCountSearch.Lock()
	mock.calls.CountSearch = append(mock.calls.CountSearch, callInfo)
	mock.lockCountSearch.Unlock()
	return mock.CountSearchFunc(ctx, pattern)
}

func (mock *documentRepoMock) CountSearchCalls() []struct {
	Ctx     context.Context
	Pattern string
} {
	mock.lockCountSearch.RLock()
	calls := mock.calls.CountSearch
	mock.lockCountSearch.RUnlock()
	return calls
}
