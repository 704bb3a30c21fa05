package seeder

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ plantRepo = &plantRepoMock{}

type plantRepoMock struct {
	UpsertAreaFunc             func(ctx context.Context, a domain.ProductionArea) (uuid.UUID, error)
	UpsertOperationTypeFunc    func(ctx context.Context, op domain.OperationType) (uuid.UUID, error)
	UpsertOperationSubtypeFunc func(ctx context.Context, sub domain.OperationSubtype) (uuid.UUID, error)
	UpsertScrapTypeFunc        func(ctx context.Context, st domain.ScrapType) (uuid.UUID, error)
	UpsertWorkerFunc           func(ctx context.Context, w domain.Worker) (uuid.UUID, error)
	UpsertOrderFunc            func(ctx context.Context, o domain.Order) error

	calls struct {
		UpsertArea []struct {
			Ctx context.Context
			A   domain.ProductionArea
		}
		UpsertOperationType []struct {
			Ctx context.Context
			Op  domain.OperationType
		}
		UpsertOperationSubtype []struct {
			Ctx context.Context
			Sub domain.OperationSubtype
		}
		UpsertScrapType []struct {
			Ctx context.Context
			St  domain.ScrapType
		}
		UpsertWorker []struct {
			Ctx context.Context
			W   domain.Worker
		}
		UpsertOrder []struct {
			Ctx context.Context
			O   domain.Order
		}
	}
	lockUpsertArea             sync.RWMutex
	lockUpsertOperationType    sync.RWMutex
	lockUpsertOperationSubtype sync.RWMutex
	lockUpsertScrapType        sync.RWMutex
	lockUpsertWorker           sync.RWMutex
	lockUpsertOrder            sync.RWMutex
}

func (mock *plantRepoMock) UpsertArea(ctx context.Context, a domain.ProductionArea) (uuid.UUID, error) {
	if mock.UpsertAreaFunc == nil {
		panic("plantRepoMock.UpsertAreaFunc: method is nil but plantRepo.UpsertArea was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.ProductionArea
	}{Ctx: ctx, A: a}
	mock.lockUpsertArea.Lock()
	mock.calls.UpsertArea = append(mock.calls.UpsertArea, callInfo)
	mock.lockUpsertArea.Unlock()
	return mock.UpsertAreaFunc(ctx, a)
}

func (mock *plantRepoMock) UpsertAreaCalls() []struct {
	Ctx context.Context
	A   domain.ProductionArea
} {
	mock.lockUpsertArea.RLock()
	calls := mock.calls.UpsertArea
	mock.lockUpsertArea.RUnlock()
	return calls
}

func (mock *plantRepoMock) UpsertOperationType(ctx context.Context, op domain.OperationType) (uuid.UUID, error) {
	if mock.UpsertOperationTypeFunc == nil {
		panic("plantRepoMock.UpsertOperationTypeFunc: method is nil but plantRepo.UpsertOperationType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Op  domain.OperationType
	}{Ctx: ctx, Op: op}
	mock.lockUpsertOperationType.Lock()
	mock.calls.UpsertOperationType = append(mock.calls.UpsertOperationType, callInfo)
	mock.lockUpsertOperationType.Unlock()
	return mock.UpsertOperationTypeFunc(ctx, op)
}

func (mock *plantRepoMock) UpsertOperationTypeCalls() []struct {
	Ctx context.Context
	Op  domain.OperationType
} {
	mock.lockUpsertOperationType.RLock()
	calls := mock.calls.UpsertOperationType
	mock.lockUpsertOperationType.RUnlock()
	return calls
}

func (mock *plantRepoMock) UpsertOperationSubtype(ctx context.Context, sub domain.OperationSubtype) (uuid.UUID, error) {
	if mock.UpsertOperationSubtypeFunc == nil {
		panic("plantRepoMock.UpsertOperationSubtypeFunc: method is nil but plantRepo.UpsertOperationSubtype was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub domain.OperationSubtype
	}{Ctx: ctx, Sub: sub}
	mock.lockUpsertOperationSubtype.Lock()
	mock.calls.UpsertOperationSubtype = append(mock.calls.UpsertOperationSubtype, callInfo)
	mock.lockUpsertOperationSubtype.Unlock()
	return mock.UpsertOperationSubtypeFunc(ctx, sub)
}

func (mock *plantRepoMock) UpsertOperationSubtypeCalls() []struct {
	Ctx context.Context
	Sub domain.OperationSubtype
} {
	mock.lockUpsertOperationSubtype.RLock()
	calls := mock.calls.UpsertOperationSubtype
	mock.lockUpsertOperationSubtype.RUnlock()
	return calls
}

func (mock *plantRepoMock) UpsertScrapType(ctx context.Context, st domain.ScrapType) (uuid.UUID, error) {
	if mock.UpsertScrapTypeFunc == nil {
		panic("plantRepoMock.UpsertScrapTypeFunc: method is nil but plantRepo.UpsertScrapType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		St  domain.ScrapType
	}{Ctx: ctx, St: st}
	mock.lockUpsertScrapType.Lock()
	mock.calls.UpsertScrapType = append(mock.calls.UpsertScrapType, callInfo)
	mock.lockUpsertScrapType.Unlock()
	return mock.UpsertScrapTypeFunc(ctx, st)
}

func (mock *plantRepoMock) UpsertScrapTypeCalls() []struct {
	Ctx context.Context
	St  domain.ScrapType
} {
	mock.lockUpsertScrapType.RLock()
	calls := mock.calls.UpsertScrapType
	mock.lockUpsertScrapType.RUnlock()
	return calls
}

func (mock *plantRepoMock) UpsertWorker(ctx context.Context, w domain.Worker) (uuid.UUID, error) {
	if mock.UpsertWorkerFunc == nil {
		panic("plantRepoMock.UpsertWorkerFunc: method is nil but plantRepo.UpsertWorker was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Worker
	}{Ctx: ctx, W: w}
	mock.lockUpsertWorker.Lock()
	mock.calls.UpsertWorker = append(mock.calls.UpsertWorker, callInfo)
	mock.lockUpsertWorker.Unlock()
	return mock.UpsertWorkerFunc(ctx, w)
}

func (mock *plantRepoMock) UpsertWorkerCalls() []struct {
	Ctx context.Context
	W   domain.Worker
} {
	mock.lockUpsertWorker.RLock()
	calls := mock.calls.UpsertWorker
	mock.lockUpsertWorker.RUnlock()
	return calls
}

func (mock *plantRepoMock) UpsertOrder(ctx context.Context, o domain.Order) error {
	if mock.UpsertOrderFunc == nil {
		panic("plantRepoMock.UpsertOrderFunc: method is nil but plantRepo.UpsertOrder was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   domain.Order
	}{Ctx: ctx, O: o}
	mock.lockUpsertOrder.Lock()
	mock.calls.UpsertOrder = append(mock.calls.UpsertOrder, callInfo)
	mock.lockUpsertOrder.Unlock()
	return mock.UpsertOrderFunc(ctx, o)
}

func (mock *plantRepoMock) UpsertOrderCalls() []struct {
	Ctx context.Context
	O   domain.Order
} {
	mock.lockUpsertOrder.RLock()
	calls := mock.calls.UpsertOrder
	mock.lockUpsertOrder.RUnlock()
	return calls
}
