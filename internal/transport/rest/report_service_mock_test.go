package rest

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/laborcard-backend/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	ProductionFunc       func(ctx context.Context, dateFrom string, dateTo string) (*report.Production, error)
	ExportProductionFunc func(ctx context.Context, w io.Writer, dateFrom string, dateTo string) error

	calls struct {
		Production []struct {
			Ctx      context.Context
			DateFrom string
			DateTo   string
		}
		ExportProduction []struct {
			Ctx      context.Context
			W        io.Writer
			DateFrom string
			DateTo   string
		}
	}
	lockProduction       sync.RWMutex
	lockExportProduction sync.RWMutex
}

func (mock *reportServiceMock) Production(ctx context.Context, dateFrom string, dateTo string) (*report.Production, error) {
	if mock.ProductionFunc == nil {
		panic("reportServiceMock.ProductionFunc: method is nil but reportService.Production was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DateFrom string
		DateTo   string
	}{Ctx: ctx, DateFrom: dateFrom, DateTo: dateTo}
	mock.lockProduction.Lock()
	mock.calls.Production = append(mock.calls.Production, callInfo)
	mock.lockProduction.Unlock()
	return mock.ProductionFunc(ctx, dateFrom, dateTo)
}

func (mock *reportServiceMock) ProductionCalls() []struct {
	Ctx      context.Context
	DateFrom string
	DateTo   string
} {
	mock.lockProduction.RLock()
	calls := mock.calls.Production
	mock.lockProduction.RUnlock()
	return calls
}

func (mock *reportServiceMock) ExportProduction(ctx context.Context, w io.Writer, dateFrom string, dateTo string) error {
	if mock.ExportProductionFunc == nil {
		panic("reportServiceMock.ExportProductionFunc: method is nil but reportService.ExportProduction was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		W        io.Writer
		DateFrom string
		DateTo   string
	}{Ctx: ctx, W: w, DateFrom: dateFrom, DateTo: dateTo}
	mock.lockExportProduction.Lock()
	mock.calls.ExportProduction = append(mock.calls.ExportProduction, callInfo)
	mock.lockExportProduction.Unlock()
	return mock.ExportProductionFunc(ctx, w, dateFrom, dateTo)
}

func (mock *reportServiceMock) ExportProductionCalls() []struct {
	Ctx      context.Context
	W        io.Writer
	DateFrom string
	DateTo   string
} {
	mock.lockExportProduction.RLock()
	calls := mock.calls.ExportProduction
	mock.lockExportProduction.RUnlock()
	return calls
}
