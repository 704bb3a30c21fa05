package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ workerRepo = &workerRepoMock{}

type workerRepoMock struct {
	GetByPersonalIDFunc func(ctx context.Context, personalID string) (*domain.Worker, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Worker, error)

	calls struct {
		GetByPersonalID []struct {
			Ctx        context.Context
			PersonalID string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByPersonalID sync.RWMutex
	lockGetByID         sync.RWMutex
}

func (mock *workerRepoMock) GetByPersonalID(ctx context.Context, personalID string) (*domain.Worker, error) {
	if mock.GetByPersonalIDFunc == nil {
		panic("workerRepoMock.GetByPersonalIDFunc: method is nil but workerRepo.GetByPersonalID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		PersonalID string
	}{Ctx: ctx, PersonalID: personalID}
	mock.lockGetByPersonalID.Lock()
	mock.calls.GetByPersonalID = append(mock.calls.GetByPersonalID, callInfo)
	mock.lockGetByPersonalID.Unlock()
	return mock.GetByPersonalIDFunc(ctx, personalID)
}

func (mock *workerRepoMock) GetByPersonalIDCalls() []struct {
	Ctx        context.Context
	PersonalID string
} {
	mock.lockGetByPersonalID.RLock()
	calls := mock.calls.GetByPersonalID
	mock.lockGetByPersonalID.RUnlock()
	return calls
}

func (mock *workerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
	if mock.GetByIDFunc == nil {
		panic("workerRepoMock.GetByIDFunc: method is nil but workerRepo.GetByID was just called")
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

func (mock *workerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
