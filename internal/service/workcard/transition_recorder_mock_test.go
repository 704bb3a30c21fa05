package workcard

import (
	"sync"
)

var _ transitionRecorder = &transitionRecorderMock{}

type transitionRecorderMock struct {
	ObserveTransitionFunc func(transition string, err error)

	calls struct {
		ObserveTransition []struct {
			Transition string
			Err        error
		}
	}
	lockObserveTransition sync.RWMutex
}

func (mock *transitionRecorderMock) ObserveTransition(transition string, err error) {
	if mock.ObserveTransitionFunc == nil {
		panic("transitionRecorderMock.ObserveTransitionFunc: method is nil but transitionRecorder.ObserveTransition was just called")
	}
	callInfo := struct {
		Transition string
		Err        error
	}{Transition: transition, Err: err}
	mock.lockObserveTransition.Lock()
	mock.calls.ObserveTransition = append(mock.calls.ObserveTransition, callInfo)
	mock.lockObserveTransition.Unlock()
	mock.ObserveTransitionFunc(transition, err)
}

func (mock *transitionRecorderMock) ObserveTransitionCalls() []struct {
	Transition string
	Err        error
} {
	mock.lockObserveTransition.RLock()
	calls := mock.calls.ObserveTransition
	mock.lockObserveTransition.RUnlock()
	return calls
}
