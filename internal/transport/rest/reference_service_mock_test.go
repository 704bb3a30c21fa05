package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/service/reference"
)

var _ referenceService = &referenceServiceMock{}

type referenceServiceMock struct {
	ListAreasFunc             func(ctx context.Context) ([]domain.ProductionArea, error)
	ListOperationTypesFunc    func(ctx context.Context, areaID uuid.UUID) ([]domain.OperationType, error)
	ListOperationSubtypesFunc func(ctx context.Context, operationTypeID uuid.UUID) ([]domain.OperationSubtype, error)
	ListScrapTypesFunc        func(ctx context.Context) ([]domain.ScrapType, error)
	GetOrderFunc              func(ctx context.Context, orderNumber string) (*domain.Order, error)
	CurrentShiftFunc          func() reference.ShiftInfo

	calls struct {
		ListAreas []struct {
			Ctx context.Context
		}
		ListOperationTypes []struct {
			Ctx    context.Context
			AreaID uuid.UUID
		}
		ListOperationSubtypes []struct {
			Ctx             context.Context
			OperationTypeID uuid.UUID
		}
		ListScrapTypes []struct {
			Ctx context.Context
		}
		GetOrder []struct {
			Ctx         context.Context
			OrderNumber string
		}
		CurrentShift []struct{}
	}
	lockListAreas             sync.RWMutex
	lockListOperationTypes    sync.RWMutex
	lockListOperationSubtypes sync.RWMutex
	lockListScrapTypes        sync.RWMutex
	lockGetOrder              sync.RWMutex
	lockCurrentShift          sync.RWMutex
}

func (mock *referenceServiceMock) ListAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	if mock.ListAreasFunc == nil {
		panic("referenceServiceMock.ListAreasFunc: method is nil but referenceService.ListAreas was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAreas.Lock()
	mock.calls.ListAreas = append(mock.calls.ListAreas, callInfo)
	mock.lockListAreas.Unlock()
	return mock.ListAreasFunc(ctx)
}

func (mock *referenceServiceMock) ListAreasCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAreas.RLock()
	calls := mock.calls.ListAreas
	mock.lockListAreas.RUnlock()
	return calls
}

func (mock *referenceServiceMock) ListOperationTypes(ctx context.Context, areaID uuid.UUID) ([]domain.OperationType, error) {
	if mock.ListOperationTypesFunc == nil {
		panic("referenceServiceMock.ListOperationTypesFunc: method is nil but referenceService.ListOperationTypes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		AreaID uuid.UUID
	}{Ctx: ctx, AreaID: areaID}
	mock.lockListOperationTypes.Lock()
	mock.calls.ListOperationTypes = append(mock.calls.ListOperationTypes, callInfo)
	mock.lockListOperationTypes.Unlock()
	return mock.ListOperationTypesFunc(ctx, areaID)
}

func (mock *referenceServiceMock) ListOperationTypesCalls() []struct {
	Ctx    context.Context
	AreaID uuid.UUID
} {
	mock.lockListOperationTypes.RLock()
	calls := mock.calls.ListOperationTypes
	mock.lockListOperationTypes.RUnlock()
	return calls
}

func (mock *referenceServiceMock) ListOperationSubtypes(ctx context.Context, operationTypeID uuid.UUID) ([]domain.OperationSubtype, error) {
	if mock.ListOperationSubtypesFunc == nil {
		panic("referenceServiceMock.ListOperationSubtypesFunc: method is nil but referenceService.ListOperationSubtypes was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		OperationTypeID uuid.UUID
	}{Ctx: ctx, OperationTypeID: operationTypeID}
	mock.lockListOperationSubtypes.Lock()
	mock.calls.ListOperationSubtypes = append(mock.calls.ListOperationSubtypes, callInfo)
	mock.lockListOperationSubtypes.Unlock()
	return mock.ListOperationSubtypesFunc(ctx, operationTypeID)
}

func (mock *referenceServiceMock) ListOperationSubtypesCalls() []struct {
	Ctx             context.Context
	OperationTypeID uuid.UUID
} {
	mock.lockListOperationSubtypes.RLock()
	calls := mock.calls.ListOperationSubtypes
	mock.lockListOperationSubtypes.RUnlock()
	return calls
}

func (mock *referenceServiceMock) ListScrapTypes(ctx context.Context) ([]domain.ScrapType, error) {
	if mock.ListScrapTypesFunc == nil {
		panic("referenceServiceMock.ListScrapTypesFunc: method is nil but referenceService.ListScrapTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListScrapTypes.Lock()
	mock.calls.ListScrapTypes = append(mock.calls.ListScrapTypes, callInfo)
	mock.lockListScrapTypes.Unlock()
	return mock.ListScrapTypesFunc(ctx)
}

func (mock *referenceServiceMock) ListScrapTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListScrapTypes.RLock()
	calls := mock.calls.ListScrapTypes
	mock.lockListScrapTypes.RUnlock()
	return calls
}

func (mock *referenceServiceMock) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	if mock.GetOrderFunc == nil {
		panic("referenceServiceMock.GetOrderFunc: method is nil but referenceService.GetOrder was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OrderNumber string
	}{Ctx: ctx, OrderNumber: orderNumber}
	mock.lockGetOrder.Lock()
	mock.calls.GetOrder = append(mock.calls.GetOrder, callInfo)
	mock.lockGetOrder.Unlock()
	return mock.GetOrderFunc(ctx, orderNumber)
}

func (mock *referenceServiceMock) GetOrderCalls() []struct {
	Ctx         context.Context
	OrderNumber string
} {
	mock.lockGetOrder.RLock()
	calls := mock.calls.GetOrder
	mock.lockGetOrder.RUnlock()
	return calls
}

func (mock *referenceServiceMock) CurrentShift() reference.ShiftInfo {
	if mock.CurrentShiftFunc == nil {
		panic("referenceServiceMock.CurrentShiftFunc: method is nil but referenceService.CurrentShift was just called")
	}
	mock.lockCurrentShift.Lock()
	mock.calls.CurrentShift = append(mock.calls.CurrentShift, struct{}{})
	mock.lockCurrentShift.Unlock()
	return mock.CurrentShiftFunc()
}

func (mock *referenceServiceMock) CurrentShiftCalls() []struct{} {
	mock.lockCurrentShift.RLock()
	calls := mock.calls.CurrentShift
	mock.lockCurrentShift.RUnlock()
	return calls
}
