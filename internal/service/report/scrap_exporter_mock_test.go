package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/laborcard-backend/internal/service/scrap"
)

var _ scrapExporter = &scrapExporterMock{}

type scrapExporterMock struct {
	ExportFunc func(ctx context.Context, dateFrom string, dateTo string) (*scrap.Export, error)

	calls struct {
		Export []struct {
			Ctx      context.Context
			DateFrom string
			DateTo   string
		}
	}
	lockExport sync.RWMutex
}

func (mock *scrapExporterMock) Export(ctx context.Context, dateFrom string, dateTo string) (*scrap.Export, error) {
	if mock.ExportFunc == nil {
		panic("scrapExporterMock.ExportFunc: method is nil but scrapExporter.Export was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DateFrom string
		DateTo   string
	}{Ctx: ctx, DateFrom: dateFrom, DateTo: dateTo}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, dateFrom, dateTo)
}

func (mock *scrapExporterMock) ExportCalls() []struct {
	Ctx      context.Context
	DateFrom string
	DateTo   string
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}
