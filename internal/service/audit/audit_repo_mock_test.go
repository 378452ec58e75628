package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error)
	ListFunc    func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, int, error)
	StatsFunc   func(ctx context.Context, since time.Time, entity *domain.EntityType) (domain.AuditStats, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
		Stats []struct {
			Ctx    context.Context
			Since  time.Time
			Entity *domain.EntityType
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockStats   sync.RWMutex
}

func (mock *auditRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("auditRepoMock.GetByIDFunc: method is nil but auditRepo.GetByID was just called")
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

func (mock *auditRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *auditRepoMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, int, error) {
	if mock.ListFunc == nil {
		panic("auditRepoMock.ListFunc: method is nil but auditRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *auditRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *auditRepoMock) Stats(ctx context.Context, since time.Time, entity *domain.EntityType) (domain.AuditStats, error) {
	if mock.StatsFunc == nil {
		panic("auditRepoMock.StatsFunc: method is nil but auditRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Since  time.Time
		Entity *domain.EntityType
	}{Ctx: ctx, Since: since, Entity: entity}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, since, entity)
}

func (mock *auditRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	Since  time.Time
	Entity *domain.EntityType
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
