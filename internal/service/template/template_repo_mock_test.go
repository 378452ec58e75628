package template

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	ListFunc             func(ctx context.Context, f domain.TemplateFilter) ([]domain.Template, int, error)
	StatsFunc            func(ctx context.Context, viewerID *uuid.UUID) (domain.TemplateStats, error)
	CreateFunc           func(ctx context.Context, t domain.Template) (*domain.Template, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, p domain.TemplateUpdateParams) (*domain.Template, error)
	SoftDeleteFunc       func(ctx context.Context, id uuid.UUID) error
	IncrementUsageFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.TemplateFilter
		}
		Stats []struct {
			Ctx      context.Context
			ViewerID *uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			T   domain.Template
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.TemplateUpdateParams
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IncrementUsage []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockStats            sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSoftDelete       sync.RWMutex
	lockIncrementUsage   sync.RWMutex
}

func (mock *templateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	if mock.GetByIDFunc == nil {
		panic("templateRepoMock.GetByIDFunc: method is nil but templateRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *templateRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *templateRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("templateRepoMock.GetByIDForUpdateFunc: method is nil but templateRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *templateRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *templateRepoMock) List(ctx context.Context, f domain.TemplateFilter) ([]domain.Template, int, error) {
	if mock.ListFunc == nil {
		panic("templateRepoMock.ListFunc: method is nil but templateRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TemplateFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *templateRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.TemplateFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *templateRepoMock) Stats(ctx context.Context, viewerID *uuid.UUID) (domain.TemplateStats, error) {
	if mock.StatsFunc == nil {
		panic("templateRepoMock.StatsFunc: method is nil but templateRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ViewerID *uuid.UUID
	}{Ctx: ctx, ViewerID: viewerID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, viewerID)
}

func (mock *templateRepoMock) StatsCalls() []struct {
	Ctx      context.Context
	ViewerID *uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *templateRepoMock) Create(ctx context.Context, t domain.Template) (*domain.Template, error) {
	if mock.CreateFunc == nil {
		panic("templateRepoMock.CreateFunc: method is nil but templateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Template
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *templateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.Template
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *templateRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.TemplateUpdateParams) (*domain.Template, error) {
	if mock.UpdateFunc == nil {
		panic("templateRepoMock.UpdateFunc: method is nil but templateRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.TemplateUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *templateRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.TemplateUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *templateRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("templateRepoMock.SoftDeleteFunc: method is nil but templateRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *templateRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *templateRepoMock) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementUsageFunc == nil {
		panic("templateRepoMock.IncrementUsageFunc: method is nil but templateRepo.IncrementUsage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementUsage.Lock()
	mock.calls.IncrementUsage = append(mock.calls.IncrementUsage, callInfo)
	mock.lockIncrementUsage.Unlock()
	return mock.IncrementUsageFunc(ctx, id)
}

func (mock *templateRepoMock) IncrementUsageCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementUsage.RLock()
	calls := mock.calls.IncrementUsage
	mock.lockIncrementUsage.RUnlock()
	return calls
}
