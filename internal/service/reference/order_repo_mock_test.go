package reference

import (
	"context"
	"sync"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	GetByNumberFunc func(ctx context.Context, orderNumber string) (*domain.Order, error)

	calls struct {
		GetByNumber []struct {
			Ctx         context.Context
			OrderNumber string
		}
	}
	lockGetByNumber sync.RWMutex
}

func (mock *orderRepoMock) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	if mock.GetByNumberFunc == nil {
		panic("orderRepoMock.GetByNumberFunc: method is nil but orderRepo.GetByNumber was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OrderNumber string
	}{Ctx: ctx, OrderNumber: orderNumber}
	mock.lockGetByNumber.Lock()
	mock.calls.GetByNumber = append(mock.calls.GetByNumber, callInfo)
	mock.lockGetByNumber.Unlock()
	return mock.GetByNumberFunc(ctx, orderNumber)
}

func (mock *orderRepoMock) GetByNumberCalls() []struct {
	Ctx         context.Context
	OrderNumber string
} {
	mock.lockGetByNumber.RLock()
	calls := mock.calls.GetByNumber
	mock.lockGetByNumber.RUnlock()
	return calls
}
