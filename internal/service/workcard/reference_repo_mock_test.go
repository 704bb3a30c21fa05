package workcard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ referenceRepo = &referenceRepoMock{}

type referenceRepoMock struct {
	GetAreaFunc             func(ctx context.Context, id uuid.UUID) (*domain.ProductionArea, error)
	GetOperationTypeFunc    func(ctx context.Context, id uuid.UUID) (*domain.OperationType, error)
	GetOperationSubtypeFunc func(ctx context.Context, id uuid.UUID) (*domain.OperationSubtype, error)

	calls struct {
		GetArea []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetOperationType []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetOperationSubtype []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetArea             sync.RWMutex
	lockGetOperationType    sync.RWMutex
	lockGetOperationSubtype sync.RWMutex
}

func (mock *referenceRepoMock) GetArea(ctx context.Context, id uuid.UUID) (*domain.ProductionArea, error) {
	if mock.GetAreaFunc == nil {
		panic("referenceRepoMock.GetAreaFunc: method is nil but referenceRepo.GetArea was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetArea.Lock()
	mock.calls.GetArea = append(mock.calls.GetArea, callInfo)
	mock.lockGetArea.Unlock()
	return mock.GetAreaFunc(ctx, id)
}

func (mock *referenceRepoMock) GetAreaCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetArea.RLock()
	calls := mock.calls.GetArea
	mock.lockGetArea.RUnlock()
	return calls
}

func (mock *referenceRepoMock) GetOperationType(ctx context.Context, id uuid.UUID) (*domain.OperationType, error) {
	if mock.GetOperationTypeFunc == nil {
		panic("referenceRepoMock.GetOperationTypeFunc: method is nil but referenceRepo.GetOperationType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetOperationType.Lock()
	mock.calls.GetOperationType = append(mock.calls.GetOperationType, callInfo)
	mock.lockGetOperationType.Unlock()
	return mock.GetOperationTypeFunc(ctx, id)
}

func (mock *referenceRepoMock) GetOperationTypeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetOperationType.RLock()
	calls := mock.calls.GetOperationType
	mock.lockGetOperationType.RUnlock()
	return calls
}

func (mock *referenceRepoMock) GetOperationSubtype(ctx context.Context, id uuid.UUID) (*domain.OperationSubtype, error) {
	if mock.GetOperationSubtypeFunc == nil {
		panic("referenceRepoMock.GetOperationSubtypeFunc: method is nil but referenceRepo.GetOperationSubtype was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetOperationSubtype.Lock()
	mock.calls.GetOperationSubtype = append(mock.calls.GetOperationSubtype, callInfo)
	mock.lockGetOperationSubtype.Unlock()
	return mock.GetOperationSubtypeFunc(ctx, id)
}

func (mock *referenceRepoMock) GetOperationSubtypeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetOperationSubtype.RLock()
	calls := mock.calls.GetOperationSubtype
	mock.lockGetOperationSubtype.RUnlock()
	return calls
}
