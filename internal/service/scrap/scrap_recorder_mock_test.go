package scrap

import (
	"sync"
)

var _ scrapRecorder = &scrapRecorderMock{}

type scrapRecorderMock struct {
	ObserveScrapFunc func(scrapTypeCode string, quantity int)

	calls struct {
		ObserveScrap []struct {
			ScrapTypeCode string
			Quantity      int
		}
	}
	lockObserveScrap sync.RWMutex
}

func (mock *scrapRecorderMock) ObserveScrap(scrapTypeCode string, quantity int) {
	if mock.ObserveScrapFunc == nil {
		panic("scrapRecorderMock.ObserveScrapFunc: method is nil but scrapRecorder.ObserveScrap was just called")
	}
	callInfo := struct {
		ScrapTypeCode string
		Quantity      int
	}{ScrapTypeCode: scrapTypeCode, Quantity: quantity}
	mock.lockObserveScrap.Lock()
	mock.calls.ObserveScrap = append(mock.calls.ObserveScrap, callInfo)
	mock.lockObserveScrap.Unlock()
	mock.ObserveScrapFunc(scrapTypeCode, quantity)
}

func (mock *scrapRecorderMock) ObserveScrapCalls() []struct {
	ScrapTypeCode string
	Quantity      int
} {
	mock.lockObserveScrap.RLock()
	calls := mock.calls.ObserveScrap
	mock.lockObserveScrap.RUnlock()
	return calls
}
