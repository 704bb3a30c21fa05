package scrap

import (
	"context"
	"sync"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ scrapRepo = &scrapRepoMock{}

type scrapRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.ScrapEntry) error
	ListFunc   func(ctx context.Context, f domain.ScrapFilter) ([]domain.ScrapEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.ScrapEntry
		}
		List []struct {
			Ctx context.Context
			F   domain.ScrapFilter
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *scrapRepoMock) Create(ctx context.Context, e *domain.ScrapEntry) error {
	if mock.CreateFunc == nil {
		panic("scrapRepoMock.CreateFunc: method is nil but scrapRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.ScrapEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *scrapRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.ScrapEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scrapRepoMock) List(ctx context.Context, f domain.ScrapFilter) ([]domain.ScrapEntry, error) {
	if mock.ListFunc == nil {
		panic("scrapRepoMock.ListFunc: method is nil but scrapRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ScrapFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *scrapRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ScrapFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
