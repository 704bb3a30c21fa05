package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/service/scrap"
)

var _ scrapService = &scrapServiceMock{}

type scrapServiceMock struct {
	RecordFunc func(ctx context.Context, registeredBy uuid.UUID, input scrap.RecordInput) (*domain.ScrapEntry, error)
	ListFunc   func(ctx context.Context, input scrap.ListInput) ([]domain.ScrapEntry, error)

	calls struct {
		Record []struct {
			Ctx          context.Context
			RegisteredBy uuid.UUID
			Input        scrap.RecordInput
		}
		List []struct {
			Ctx   context.Context
			Input scrap.ListInput
		}
	}
	lockRecord sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *scrapServiceMock) Record(ctx context.Context, registeredBy uuid.UUID, input scrap.RecordInput) (*domain.ScrapEntry, error) {
	if mock.RecordFunc == nil {
		panic("scrapServiceMock.RecordFunc: method is nil but scrapService.Record was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		RegisteredBy uuid.UUID
		Input        scrap.RecordInput
	}{Ctx: ctx, RegisteredBy: registeredBy, Input: input}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, registeredBy, input)
}

func (mock *scrapServiceMock) RecordCalls() []struct {
	Ctx          context.Context
	RegisteredBy uuid.UUID
	Input        scrap.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *scrapServiceMock) List(ctx context.Context, input scrap.ListInput) ([]domain.ScrapEntry, error) {
	if mock.ListFunc == nil {
		panic("scrapServiceMock.ListFunc: method is nil but scrapService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scrap.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *scrapServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input scrap.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
