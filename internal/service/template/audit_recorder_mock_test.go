package template

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	LogCreateFunc    func(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, newData map[string]any)
	LogUpdateFunc    func(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any, newData map[string]any)
	LogDeleteFunc    func(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any)
	LogDuplicateFunc func(ctx context.Context, entity domain.EntityType, original domain.Ref, dup domain.Ref)
	LogGenerateFunc  func(ctx context.Context, entity domain.EntityType, generated domain.Ref, source domain.Ref, metadata map[string]any)

	calls struct {
		LogCreate []struct {
			Ctx     context.Context
			Entity  domain.EntityType
			ID      uuid.UUID
			Name    string
			NewData map[string]any
		}
		LogUpdate []struct {
			Ctx     context.Context
			Entity  domain.EntityType
			ID      uuid.UUID
			Name    string
			OldData map[string]any
			NewData map[string]any
		}
		LogDelete []struct {
			Ctx     context.Context
			Entity  domain.EntityType
			ID      uuid.UUID
			Name    string
			OldData map[string]any
		}
		LogDuplicate []struct {
			Ctx      context.Context
			Entity   domain.EntityType
			Original domain.Ref
			Dup      domain.Ref
		}
		LogGenerate []struct {
			Ctx       context.Context
			Entity    domain.EntityType
			Generated domain.Ref
			Source    domain.Ref
			Metadata  map[string]any
		}
	}
	lockLogCreate    sync.RWMutex
	lockLogUpdate    sync.RWMutex
	lockLogDelete    sync.RWMutex
	lockLogDuplicate sync.RWMutex
	lockLogGenerate  sync.RWMutex
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

func (mock *auditRecorderMock) LogUpdate(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any, newData map[string]any) {
	if mock.LogUpdateFunc == nil {
		panic("auditRecorderMock.LogUpdateFunc: method is nil but auditRecorder.LogUpdate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entity  domain.EntityType
		ID      uuid.UUID
		Name    string
		OldData map[string]any
		NewData map[string]any
	}{Ctx: ctx, Entity: entity, ID: id, Name: name, OldData: oldData, NewData: newData}
	mock.lockLogUpdate.Lock()
	mock.calls.LogUpdate = append(mock.calls.LogUpdate, callInfo)
	mock.lockLogUpdate.Unlock()
	mock.LogUpdateFunc(ctx, entity, id, name, oldData, newData)
}

func (mock *auditRecorderMock) LogUpdateCalls() []struct {
	Ctx     context.Context
	Entity  domain.EntityType
	ID      uuid.UUID
	Name    string
	OldData map[string]any
	NewData map[string]any
} {
	mock.lockLogUpdate.RLock()
	calls := mock.calls.LogUpdate
	mock.lockLogUpdate.RUnlock()
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

func (mock *auditRecorderMock) LogDuplicate(ctx context.Context, entity domain.EntityType, original domain.Ref, dup domain.Ref) {
	if mock.LogDuplicateFunc == nil {
		panic("auditRecorderMock.LogDuplicateFunc: method is nil but auditRecorder.LogDuplicate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Entity   domain.EntityType
		Original domain.Ref
		Dup      domain.Ref
	}{Ctx: ctx, Entity: entity, Original: original, Dup: dup}
	mock.lockLogDuplicate.Lock()
	mock.calls.LogDuplicate = append(mock.calls.LogDuplicate, callInfo)
	mock.lockLogDuplicate.Unlock()
	mock.LogDuplicateFunc(ctx, entity, original, dup)
}

func (mock *auditRecorderMock) LogDuplicateCalls() []struct {
	Ctx      context.Context
	Entity   domain.EntityType
	Original domain.Ref
	Dup      domain.Ref
} {
	mock.lockLogDuplicate.RLock()
	calls := mock.calls.LogDuplicate
	mock.lockLogDuplicate.RUnlock()
	return calls
}

func (mock *auditRecorderMock) LogGenerate(ctx context.Context, entity domain.EntityType, generated domain.Ref, source domain.Ref, metadata map[string]any) {
	if mock.LogGenerateFunc == nil {
		panic("auditRecorderMock.LogGenerateFunc: method is nil but auditRecorder.LogGenerate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Entity    domain.EntityType
		Generated domain.Ref
		Source    domain.Ref
		Metadata  map[string]any
	}{Ctx: ctx, Entity: entity, Generated: generated, Source: source, Metadata: metadata}
	mock.lockLogGenerate.Lock()
	mock.calls.LogGenerate = append(mock.calls.LogGenerate, callInfo)
	mock.lockLogGenerate.Unlock()
	mock.LogGenerateFunc(ctx, entity, generated, source, metadata)
}

func (mock *auditRecorderMock) LogGenerateCalls() []struct {
	Ctx       context.Context
	Entity    domain.EntityType
	Generated domain.Ref
	Source    domain.Ref
	Metadata  map[string]any
} {
	mock.lockLogGenerate.RLock()
	calls := mock.calls.LogGenerate
	mock.lockLogGenerate.RUnlock()
	return calls
}
