package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	LogCreateFunc func(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, newData map[string]any)
	LogDeleteFunc func(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any)

	calls struct {
		LogCreate []struct {
			Ctx     context.Context
			Entity  domain.EntityType
			ID      uuid.UUID
			Name    string
			NewData map[string]any
		}
		LogDelete []struct {
			Ctx     context.Context
			Entity  domain.EntityType
			ID      uuid.UUID
			Name    string
			OldData map[string]any
		}
	}
	lockLogCreate sync.RWMutex
	lockLogDelete sync.RWMutex
}

func (mock *auditRecorderMock) LogCreate(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, newData map[string]any) {
	if mock.LogCreateFunc == nil {
		panic("auditRecorderMock.LogCreateFunc: method is nil but auditRecorder.LogCreate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entity  domain.EntityType
		ID      uuid.UUID
		Name    string
		NewData map[string]any
	}{Ctx: ctx, Entity: entity, ID: id, Name: name, NewData: newData}
	mock.lockLogCreate.Lock()
	mock.calls.LogCreate = append(mock.calls.LogCreate, callInfo)
	mock.lockLogCreate.Unlock()
	mock.LogCreateFunc(ctx, entity, id, name, newData)
}

func (mock *auditRecorderMock) LogCreateCalls() []struct {
	Ctx     context.Context
	Entity  domain.EntityType
	ID      uuid.UUID
	Name    string
	NewData map[string]any
} {
	mock.lockLogCreate.RLock()
	calls := mock.calls.LogCreate
	mock.lockLogCreate.RUnlock()
	return calls
}

func (mock *auditRecorderMock) LogDelete(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any) {
	if mock.LogDeleteFunc == nil {
		panic("auditRecorderMock.LogDeleteFunc: method is nil but auditRecorder.LogDelete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entity  domain.EntityType
		ID      uuid.UUID
		Name    string
		OldData map[string]any
	}{Ctx: ctx, Entity: entity, ID: id, Name: name, OldData: oldData}
	mock.lockLogDelete.Lock()
	mock.calls.LogDelete = append(mock.calls.LogDelete, callInfo)
	mock.lockLogDelete.Unlock()
	mock.LogDeleteFunc(ctx, entity, id, name, oldData)
}

func (mock *auditRecorderMock) LogDeleteCalls() []struct {
	Ctx     context.Context
	Entity  domain.EntityType
	ID      uuid.UUID
	Name    string
	OldData map[string]any
} {
	mock.lockLogDelete.RLock()
	calls := mock.calls.LogDelete
	mock.lockLogDelete.RUnlock()
	return calls
}
