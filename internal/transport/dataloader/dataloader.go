// Package dataloader provides per-request DataLoaders that batch reference
// name lookups for work card listings into single SQL calls. Loaders call
// repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type referenceRepo interface {
	GetAreasByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ProductionArea, error)
	GetOperationTypesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.OperationType, error)
	GetOperationSubtypesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.OperationSubtype, error)
}

type workerRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Worker, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Reference referenceRepo
	Worker    workerRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders resolves reference rows by ID. A missing row loads as nil, since
// inactive or deleted rows still back historical cards.
type Loaders struct {
	AreaByID             *dataloader.Loader[uuid.UUID, *domain.ProductionArea]
	OperationTypeByID    *dataloader.Loader[uuid.UUID, *domain.OperationType]
	OperationSubtypeByID *dataloader.Loader[uuid.UUID, *domain.OperationSubtype]
	WorkerByID           *dataloader.Loader[uuid.UUID, *domain.Worker]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AreaByID: newLoader(newByIDBatchFn(repos.Reference.GetAreasByIDs,
			func(a domain.ProductionArea) uuid.UUID { return a.ID })),
		OperationTypeByID: newLoader(newByIDBatchFn(repos.Reference.GetOperationTypesByIDs,
			func(o domain.OperationType) uuid.UUID { return o.ID })),
		OperationSubtypeByID: newLoader(newByIDBatchFn(repos.Reference.GetOperationSubtypesByIDs,
			func(s domain.OperationSubtype) uuid.UUID { return s.ID })),
		WorkerByID: newLoader(newByIDBatchFn(repos.Worker.GetByIDs,
			func(w domain.Worker) uuid.UUID { return w.ID })),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
