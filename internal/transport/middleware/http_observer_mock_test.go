package middleware

import (
	"sync"
	"time"
)

var _ httpObserver = &httpObserverMock{}

type httpObserverMock struct {
	ObserveHTTPFunc func(method string, route string, status int, elapsed time.Duration)

	calls struct {
		ObserveHTTP []struct {
			Method  string
			Route   string
			Status  int
			Elapsed time.Duration
		}
	}
	lockObserveHTTP sync.RWMutex
}

func (mock *httpObserverMock) ObserveHTTP(method string, route string, status int, elapsed time.Duration) {
	if mock.ObserveHTTPFunc == nil {
		panic("httpObserverMock.ObserveHTTPFunc: method is nil but httpObserver.ObserveHTTP was just called")
	}
	callInfo := struct {
		Method  string
		Route   string
		Status  int
		Elapsed time.Duration
	}{Method: method, Route: route, Status: status, Elapsed: elapsed}
	mock.lockObserveHTTP.Lock()
	mock.calls.ObserveHTTP = append(mock.calls.ObserveHTTP, callInfo)
	mock.lockObserveHTTP.Unlock()
	mock.ObserveHTTPFunc(method, route, status, elapsed)
}

func (mock *httpObserverMock) ObserveHTTPCalls() []struct {
	Method  string
	Route   string
	Status  int
	Elapsed time.Duration
} {
	mock.lockObserveHTTP.RLock()
	calls := mock.calls.ObserveHTTP
	mock.lockObserveHTTP.RUnlock()
	return calls
}
