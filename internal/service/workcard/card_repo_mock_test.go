package workcard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetActiveByWorkerFunc     func(ctx context.Context, workerID uuid.UUID) (*domain.WorkCard, error)
	ListCompletedByWorkerFunc func(ctx context.Context, workerID uuid.UUID, limit int, offset int) ([]domain.WorkCard, int, error)
	CreateFunc                func(ctx context.Context, c *domain.WorkCard) (*domain.WorkCard, error)
	UpdateAccumulatorsFunc    func(ctx context.Context, id uuid.UUID, version int, patch domain.AccumulatorPatch, now time.Time) (*domain.WorkCard, error)
	FinishFunc                func(ctx context.Context, id uuid.UUID, version int, final domain.Accumulators, finishedAt time.Time) (*domain.WorkCard, error)

	calls struct {
		GetActiveByWorker []struct {
			Ctx      context.Context
			WorkerID uuid.UUID
		}
		ListCompletedByWorker []struct {
			Ctx      context.Context
			WorkerID uuid.UUID
			Limit    int
			Offset   int
		}
		Create []struct {
			Ctx context.Context
			C   *domain.WorkCard
		}
		UpdateAccumulators []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Version int
			Patch   domain.AccumulatorPatch
			Now     time.Time
		}
		Finish []struct {
			Ctx        context.Context
			ID         uuid.UUID
			Version    int
			Final      domain.Accumulators
			FinishedAt time.Time
		}
	}
	lockGetActiveByWorker     sync.RWMutex
	lockListCompletedByWorker sync.RWMutex
	lockCreate                sync.RWMutex
	lockUpdateAccumulators    sync.RWMutex
	lockFinish                sync.RWMutex
}

func (mock *cardRepoMock) GetActiveByWorker(ctx context.Context, workerID uuid.UUID) (*domain.WorkCard, error) {
	if mock.GetActiveByWorkerFunc == nil {
		panic("cardRepoMock.GetActiveByWorkerFunc: method is nil but cardRepo.GetActiveByWorker was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		WorkerID uuid.UUID
	}{Ctx: ctx, WorkerID: workerID}
	mock.lockGetActiveByWorker.Lock()
	mock.calls.GetActiveByWorker = append(mock.calls.GetActiveByWorker, callInfo)
	mock.lockGetActiveByWorker.Unlock()
	return mock.GetActiveByWorkerFunc(ctx, workerID)
}

func (mock *cardRepoMock) GetActiveByWorkerCalls() []struct {
	Ctx      context.Context
	WorkerID uuid.UUID
} {
	mock.lockGetActiveByWorker.RLock()
	calls := mock.calls.GetActiveByWorker
	mock.lockGetActiveByWorker.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListCompletedByWorker(ctx context.Context, workerID uuid.UUID, limit int, offset int) ([]domain.WorkCard, int, error) {
	if mock.ListCompletedByWorkerFunc == nil {
		panic("cardRepoMock.ListCompletedByWorkerFunc: method is nil but cardRepo.ListCompletedByWorker was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		WorkerID uuid.UUID
		Limit    int
		Offset   int
	}{Ctx: ctx, WorkerID: workerID, Limit: limit, Offset: offset}
	mock.lockListCompletedByWorker.Lock()
	mock.calls.ListCompletedByWorker = append(mock.calls.ListCompletedByWorker, callInfo)
	mock.lockListCompletedByWorker.Unlock()
	return mock.ListCompletedByWorkerFunc(ctx, workerID, limit, offset)
}

func (mock *cardRepoMock) ListCompletedByWorkerCalls() []struct {
	Ctx      context.Context
	WorkerID uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lockListCompletedByWorker.RLock()
	calls := mock.calls.ListCompletedByWorker
	mock.lockListCompletedByWorker.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.WorkCard) (*domain.WorkCard, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.WorkCard
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.WorkCard
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateAccumulators(ctx context.Context, id uuid.UUID, version int, patch domain.AccumulatorPatch, now time.Time) (*domain.WorkCard, error) {
	if mock.UpdateAccumulatorsFunc == nil {
		panic("cardRepoMock.UpdateAccumulatorsFunc: method is nil but cardRepo.UpdateAccumulators was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Version int
		Patch   domain.AccumulatorPatch
		Now     time.Time
	}{Ctx: ctx, ID: id, Version: version, Patch: patch, Now: now}
	mock.lockUpdateAccumulators.Lock()
	mock.calls.UpdateAccumulators = append(mock.calls.UpdateAccumulators, callInfo)
	mock.lockUpdateAccumulators.Unlock()
	return mock.UpdateAccumulatorsFunc(ctx, id, version, patch, now)
}

func (mock *cardRepoMock) UpdateAccumulatorsCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Version int
	Patch   domain.AccumulatorPatch
	Now     time.Time
} {
	mock.lockUpdateAccumulators.RLock()
	calls := mock.calls.UpdateAccumulators
	mock.lockUpdateAccumulators.RUnlock()
	return calls
}

func (mock *cardRepoMock) Finish(ctx context.Context, id uuid.UUID, version int, final domain.Accumulators, finishedAt time.Time) (*domain.WorkCard, error) {
	if mock.FinishFunc == nil {
		panic("cardRepoMock.FinishFunc: method is nil but cardRepo.Finish was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		Version    int
		Final      domain.Accumulators
		FinishedAt time.Time
	}{Ctx: ctx, ID: id, Version: version, Final: final, FinishedAt: finishedAt}
	mock.lockFinish.Lock()
	mock.calls.Finish = append(mock.calls.Finish, callInfo)
	mock.lockFinish.Unlock()
	return mock.FinishFunc(ctx, id, version, final, finishedAt)
}

func (mock *cardRepoMock) FinishCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	Version    int
	Final      domain.Accumulators
	FinishedAt time.Time
} {
	mock.lockFinish.RLock()
	calls := mock.calls.Finish
	mock.lockFinish.RUnlock()
	return calls
}
