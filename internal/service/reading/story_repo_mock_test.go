package reading

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
)

var _ storyRepo = &storyRepoMock{}

type storyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	ListFunc    func(ctx context.Context, filter domain.StoryFilter) ([]domain.Story, error)
	CountFunc   func(ctx context.Context, filter domain.StoryFilter) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.StoryFilter
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.StoryFilter
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *storyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	if mock.GetByIDFunc == nil {
		panic("storyRepoMock.GetByIDFunc: method is nil but storyRepo.GetByID was just called")
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

func (mock *storyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *storyRepoMock) List(ctx context.Context, filter domain.StoryFilter) ([]domain.Story, error) {
	if mock.ListFunc == nil {
		panic("storyRepoMock.ListFunc: method is nil but storyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.StoryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *storyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.StoryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *storyRepoMock) Count(ctx context.Context, filter domain.StoryFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("storyRepoMock.CountFunc: method is nil but storyRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.StoryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *storyRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.StoryFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
