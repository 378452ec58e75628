package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/service/notification"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListFunc        func(ctx context.Context, input notification.ListInput) (*notification.ListResult, error)
	UnreadCountFunc func(ctx context.Context) (int, error)
	CreateFunc      func(ctx context.Context, input notification.CreateInput) (*domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkUnreadFunc  func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkAllReadFunc func(ctx context.Context) (int64, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx   context.Context
			Input notification.ListInput
		}
		UnreadCount []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input notification.CreateInput
		}
		MarkRead []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkUnread []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkAllRead []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList        sync.RWMutex
	lockUnreadCount sync.RWMutex
	lockCreate      sync.RWMutex
	lockMarkRead    sync.RWMutex
	lockMarkUnread  sync.RWMutex
	lockMarkAllRead sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *notificationServiceMock) List(ctx context.Context, input notification.ListInput) (*notification.ListResult, error) {
	if mock.ListFunc == nil {
		panic("notificationServiceMock.ListFunc: method is nil but notificationService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notification.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *notificationServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input notification.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *notificationServiceMock) UnreadCount(ctx context.Context) (int, error) {
	if mock.UnreadCountFunc == nil {
		panic("notificationServiceMock.UnreadCountFunc: method is nil but notificationService.UnreadCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockUnreadCount.Lock()
	mock.calls.UnreadCount = append(mock.calls.UnreadCount, callInfo)
	mock.lockUnreadCount.Unlock()
	return mock.UnreadCountFunc(ctx)
}

func (mock *notificationServiceMock) UnreadCountCalls() []struct {
	Ctx context.Context
} {
	mock.lockUnreadCount.RLock()
	calls := mock.calls.UnreadCount
	mock.lockUnreadCount.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Create(ctx context.Context, input notification.CreateInput) (*domain.Notification, error) {
	if mock.CreateFunc == nil {
		panic("notificationServiceMock.CreateFunc: method is nil but notificationService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notification.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *notificationServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input notification.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationServiceMock.MarkReadFunc: method is nil but notificationService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id)
}

func (mock *notificationServiceMock) MarkReadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkUnread(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if mock.MarkUnreadFunc == nil {
		panic("notificationServiceMock.MarkUnreadFunc: method is nil but notificationService.MarkUnread was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkUnread.Lock()
	mock.calls.MarkUnread = append(mock.calls.MarkUnread, callInfo)
	mock.lockMarkUnread.Unlock()
	return mock.MarkUnreadFunc(ctx, id)
}

func (mock *notificationServiceMock) MarkUnreadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkUnread.RLock()
	calls := mock.calls.MarkUnread
	mock.lockMarkUnread.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkAllRead(ctx context.Context) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationServiceMock.MarkAllReadFunc: method is nil but notificationService.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx)
}

func (mock *notificationServiceMock) MarkAllReadCalls() []struct {
	Ctx context.Context
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("notificationServiceMock.DeleteFunc: method is nil but notificationService.Delete was just called")
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

func (mock *notificationServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
