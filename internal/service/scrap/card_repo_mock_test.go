package scrap

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.WorkCard, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkCard, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
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

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
