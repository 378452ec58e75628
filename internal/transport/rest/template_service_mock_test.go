package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/service/template"
)

var _ templateService = &templateServiceMock{}

type templateServiceMock struct {
	ListFunc      func(ctx context.Context, input template.ListInput) (*template.ListResult, error)
	GetFunc       func(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	StatsFunc     func(ctx context.Context) (*domain.TemplateStats, error)
	CreateFunc    func(ctx context.Context, input template.CreateInput) (*domain.Template, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, input template.UpdateInput) (*domain.Template, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	DuplicateFunc func(ctx context.Context, id uuid.UUID, input template.DuplicateInput) (*domain.Template, error)
	GenerateFunc  func(ctx context.Context, id uuid.UUID, input template.GenerateInput) (*template.GenerateResult, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input template.ListInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Stats []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input template.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input template.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Duplicate []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input template.DuplicateInput
		}
		Generate []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input template.GenerateInput
		}
	}
	lockList      sync.RWMutex
	lockGet       sync.RWMutex
	lockStats     sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDuplicate sync.RWMutex
	lockGenerate  sync.RWMutex
}

func (mock *templateServiceMock) List(ctx context.Context, input template.ListInput) (*template.ListResult, error) {
	if mock.ListFunc == nil {
		panic("templateServiceMock.ListFunc: method is nil but templateService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input template.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *templateServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input template.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *templateServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	if mock.GetFunc == nil {
		panic("templateServiceMock.GetFunc: method is nil but templateService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *templateServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *templateServiceMock) Stats(ctx context.Context) (*domain.TemplateStats, error) {
	if mock.StatsFunc == nil {
		panic("templateServiceMock.StatsFunc: method is nil but templateService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *templateServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *templateServiceMock) Create(ctx context.Context, input template.CreateInput) (*domain.Template, error) {
	if mock.CreateFunc == nil {
		panic("templateServiceMock.CreateFunc: method is nil but templateService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input template.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *templateServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input template.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *templateServiceMock) Update(ctx context.Context, id uuid.UUID, input template.UpdateInput) (*domain.Template, error) {
	if mock.UpdateFunc == nil {
		panic("templateServiceMock.UpdateFunc: method is nil but templateService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input template.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *templateServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input template.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *templateServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("templateServiceMock.DeleteFunc: method is nil but templateService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *templateServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *templateServiceMock) Duplicate(ctx context.Context, id uuid.UUID, input template.DuplicateInput) (*domain.Template, error) {
	if mock.DuplicateFunc == nil {
		panic("templateServiceMock.DuplicateFunc: method is nil but templateService.Duplicate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input template.DuplicateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockDuplicate.Lock()
	mock.calls.Duplicate = append(mock.calls.Duplicate, callInfo)
	mock.lockDuplicate.Unlock()
	return mock.DuplicateFunc(ctx, id, input)
}

func (mock *templateServiceMock) DuplicateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input template.DuplicateInput
} {
	mock.lockDuplicate.RLock()
	calls := mock.calls.Duplicate
	mock.lockDuplicate.RUnlock()
	return calls
}

func (mock *templateServiceMock) Generate(ctx context.Context, id uuid.UUID, input template.GenerateInput) (*template.GenerateResult, error) {
	if mock.GenerateFunc == nil {
		panic("templateServiceMock.GenerateFunc: method is nil but templateService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input template.GenerateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, id, input)
}

func (mock *templateServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input template.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
