package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ operationLookup = &operationLookupMock{}

type operationLookupMock struct {
	GetOperationTypeFunc func(ctx context.Context, id uuid.UUID) (*domain.OperationType, error)

	calls struct {
		GetOperationType []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetOperationType sync.RWMutex
}

func (mock *operationLookupMock) GetOperationType(ctx context.Context, id uuid.UUID) (*domain.OperationType, error) {
	if mock.GetOperationTypeFunc == nil {
		panic("operationLookupMock.GetOperationTypeFunc: method is nil but operationLookup.GetOperationType was just called")
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

func (mock *operationLookupMock) GetOperationTypeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetOperationType.RLock()
	calls := mock.calls.GetOperationType
	mock.lockGetOperationType.RUnlock()
	return calls
}
