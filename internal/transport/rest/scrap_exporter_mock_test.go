package rest

import (
	"context"
	"io"
	"sync"
)

var _ scrapExporter = &scrapExporterMock{}

type scrapExporterMock struct {
	ExportScrapFunc func(ctx context.Context, w io.Writer, dateFrom string, dateTo string) error

	calls struct {
		ExportScrap []struct {
			Ctx      context.Context
			W        io.Writer
			DateFrom string
			DateTo   string
		}
	}
	lockExportScrap sync.RWMutex
}

func (mock *scrapExporterMock) ExportScrap(ctx context.Context, w io.Writer, dateFrom string, dateTo string) error {
	if mock.ExportScrapFunc == nil {
		panic("scrapExporterMock.ExportScrapFunc: method is nil but scrapExporter.ExportScrap was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		W        io.Writer
		DateFrom string
		DateTo   string
	}{Ctx: ctx, W: w, DateFrom: dateFrom, DateTo: dateTo}
	mock.lockExportScrap.Lock()
	mock.calls.ExportScrap = append(mock.calls.ExportScrap, callInfo)
	mock.lockExportScrap.Unlock()
	return mock.ExportScrapFunc(ctx, w, dateFrom, dateTo)
}

func (mock *scrapExporterMock) ExportScrapCalls() []struct {
	Ctx      context.Context
	W        io.Writer
	DateFrom string
	DateTo   string
} {
	mock.lockExportScrap.RLock()
	calls := mock.calls.ExportScrap
	mock.lockExportScrap.RUnlock()
	return calls
}
