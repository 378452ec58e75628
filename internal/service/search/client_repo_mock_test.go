package search

import (
	"context"
	"sync"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	SearchFunc      func(ctx context.Context, pattern string, limit int, offset int) ([]domain.ClientHit, error)
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

func (mock *clientRepoMock) Search(ctx context.Context, pattern string, limit int, offset int) ([]domain.ClientHit, error) {
	if mock.SearchFunc == nil {
		panic("clientRepoMock.SearchFunc: method is nil but clientRepo.Search was just called")
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

func (mock *clientRepoMock) SearchCalls() []struct {
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

func (mock *clientRepoMock) CountSearch(ctx context.Context, pattern string) (int, error) {
	if mock.CountSearchFunc == nil {
		panic("clientRepoMock.CountSearchFunc: method is nil but clientRepo.CountSearch was just called")
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

func (mock *clientRepoMock) CountSearchCalls() []struct {
	Ctx     context.Context
	Pattern string
} {
	mock.lockCountSearch.RLock()
	calls := mock.calls.CountSearch
	mock.lockCountSearch.RUnlock()
	return calls
}
