package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/service/workcard"
)

var _ workcardService = &workcardServiceMock{}

type workcardServiceMock struct {
	ResumeFunc  func(ctx context.Context, workerID uuid.UUID) (*workcard.Session, error)
	StartFunc   func(ctx context.Context, sess *workcard.Session) (*domain.WorkCard, error)
	UpdateFunc  func(ctx context.Context, sess *workcard.Session, patch domain.AccumulatorPatch) (*domain.WorkCard, error)
	FinishFunc  func(ctx context.Context, sess *workcard.Session, final workcard.Quantities) (*domain.WorkCard, error)
	HistoryFunc func(ctx context.Context, workerID uuid.UUID, limit int, offset int) ([]domain.WorkCard, int, error)

	calls struct {
		Resume []struct {
			Ctx      context.Context
			WorkerID uuid.UUID
		}
		Start []struct {
			Ctx  context.Context
			Sess *workcard.Session
		}
		Update []struct {
			Ctx   context.Context
			Sess  *workcard.Session
			Patch domain.AccumulatorPatch
		}
		Finish []struct {
			Ctx   context.Context
			Sess  *workcard.Session
			Final workcard.Quantities
		}
		History []struct {
			Ctx      context.Context
			WorkerID uuid.UUID
			Limit    int
			Offset   int
		}
	}
	lockResume  sync.RWMutex
	lockStart   sync.RWMutex
	lockUpdate  sync.RWMutex
	lockFinish  sync.RWMutex
	lockHistory sync.RWMutex
}

func (mock *workcardServiceMock) Resume(ctx context.Context, workerID uuid.UUID) (*workcard.Session, error) {
	if mock.ResumeFunc == nil {
		panic("workcardServiceMock.ResumeFunc: method is nil but workcardService.Resume was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		WorkerID uuid.UUID
	}{Ctx: ctx, WorkerID: workerID}
	mock.lockResume.Lock()
	mock.calls.Resume = append(mock.calls.Resume, callInfo)
	mock.lockResume.Unlock()
	return mock.ResumeFunc(ctx, workerID)
}

func (mock *workcardServiceMock) ResumeCalls() []struct {
	Ctx      context.Context
	WorkerID uuid.UUID
} {
	mock.lockResume.RLock()
	calls := mock.calls.Resume
	mock.lockResume.RUnlock()
	return calls
}

func (mock *workcardServiceMock) Start(ctx context.Context, sess *workcard.Session) (*domain.WorkCard, error) {
	if mock.StartFunc == nil {
		panic("workcardServiceMock.StartFunc: method is nil but workcardService.Start was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess *workcard.Session
	}{Ctx: ctx, Sess: sess}
	mock.lockStart.Lock()
	mock.calls.Start = append(mock.calls.Start, callInfo)
	mock.lockStart.Unlock()
	return mock.StartFunc(ctx, sess)
}

func (mock *workcardServiceMock) StartCalls() []struct {
	Ctx  context.Context
	Sess *workcard.Session
} {
	mock.lockStart.RLock()
	calls := mock.calls.Start
	mock.lockStart.RUnlock()
	return calls
}

func (mock *workcardServiceMock) Update(ctx context.Context, sess *workcard.Session, patch domain.AccumulatorPatch) (*domain.WorkCard, error) {
	if mock.UpdateFunc == nil {
		panic("workcardServiceMock.UpdateFunc: method is nil but workcardService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Sess  *workcard.Session
		Patch domain.AccumulatorPatch
	}{Ctx: ctx, Sess: sess, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, sess, patch)
}

func (mock *workcardServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Sess  *workcard.Session
	Patch domain.AccumulatorPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *workcardServiceMock) Finish(ctx context.Context, sess *workcard.Session, final workcard.Quantities) (*domain.WorkCard, error) {
	if mock.FinishFunc == nil {
		panic("workcardServiceMock.FinishFunc: method is nil but workcardService.Finish was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Sess  *workcard.Session
		Final workcard.Quantities
	}{Ctx: ctx, Sess: sess, Final: final}
	mock.lockFinish.Lock()
	mock.calls.Finish = append(mock.calls.Finish, callInfo)
	mock.lockFinish.Unlock()
	return mock.FinishFunc(ctx, sess, final)
}

func (mock *workcardServiceMock) FinishCalls() []struct {
	Ctx   context.Context
	Sess  *workcard.Session
	Final workcard.Quantities
} {
	mock.lockFinish.RLock()
	calls := mock.calls.Finish
	mock.lockFinish.RUnlock()
	return calls
}

func (mock *workcardServiceMock) History(ctx context.Context, workerID uuid.UUID, limit int, offset int) ([]domain.WorkCard, int, error) {
	if mock.HistoryFunc == nil {
		panic("workcardServiceMock.HistoryFunc: method is nil but workcardService.History was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		WorkerID uuid.UUID
		Limit    int
		Offset   int
	}{Ctx: ctx, WorkerID: workerID, Limit: limit, Offset: offset}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, workerID, limit, offset)
}

func (mock *workcardServiceMock) HistoryCalls() []struct {
	Ctx      context.Context
	WorkerID uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
