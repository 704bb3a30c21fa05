package workcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

type cardRepo interface {
	GetActiveByWorker(ctx context.Context, workerID uuid.UUID) (*domain.WorkCard, error)
	ListCompletedByWorker(ctx context.Context, workerID uuid.UUID, limit, offset int) ([]domain.WorkCard, int, error)
	Create(ctx context.Context, c *domain.WorkCard) (*domain.WorkCard, error)
	UpdateAccumulators(ctx context.Context, id uuid.UUID, version int, patch domain.AccumulatorPatch, now time.Time) (*domain.WorkCard, error)
	Finish(ctx context.Context, id uuid.UUID, version int, final domain.Accumulators, finishedAt time.Time) (*domain.WorkCard, error)
}

type referenceRepo interface {
	GetArea(ctx context.Context, id uuid.UUID) (*domain.ProductionArea, error)
	GetOperationType(ctx context.Context, id uuid.UUID) (*domain.OperationType, error)
	GetOperationSubtype(ctx context.Context, id uuid.UUID) (*domain.OperationSubtype, error)
}

type orderRepo interface {
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	AddCompleted(ctx context.Context, orderNumber string, qty int) (bool, error)
}

type workerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type transitionRecorder interface {
	ObserveTransition(transition string, err error)
}

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	// MinOrderLookupLength is the shortest order number worth looking up.
	MinOrderLookupLength = 3
)

// Service drives the work card lifecycle for kiosk sessions.
type Service struct {
	log     *slog.Logger
	loc     *time.Location
	cards   cardRepo
	refs    referenceRepo
	orders  orderRepo
	workers workerRepo
	tx      txManager
	rec     transitionRecorder
	locks   *workerLocks
	now     func() time.Time
}

// NewService creates a work card service. loc is the plant time zone used to
// classify shifts.
func NewService(
	log *slog.Logger,
	loc *time.Location,
	cards cardRepo,
	refs referenceRepo,
	orders orderRepo,
	workers workerRepo,
	tx txManager,
	rec transitionRecorder,
) *Service {
	return &Service{
		log:     log.With("service", "workcard"),
		loc:     loc,
		cards:   cards,
		refs:    refs,
		orders:  orders,
		workers: workers,
		tx:      tx,
		rec:     rec,
		locks:   newWorkerLocks(),
		now:     time.Now,
	}
}

// Resume builds a session for workerID, picking up the active card if the
// worker left one open on another kiosk.
func (s *Service) Resume(ctx context.Context, workerID uuid.UUID) (*Session, error) {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("get worker: %w", err)
	}
	if !worker.IsActive {
		return nil, fmt.Errorf("worker %s is inactive: %w", worker.PersonalID, domain.ErrUnauthorized)
	}

	sess := NewSession(*worker)

	card, err := s.cards.GetActiveByWorker(ctx, workerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return sess, nil
	case err != nil:
		return nil, fmt.Errorf("get active card: %w", err)
	}

	sess.adopt(card)
	return sess, nil
}

// History returns the worker's completed cards, newest first, and the total.
func (s *Service) History(ctx context.Context, workerID uuid.UUID, limit, offset int) ([]domain.WorkCard, int, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	cards, total, err := s.cards.ListCompletedByWorker(ctx, workerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list completed cards: %w", err)
	}
	return cards, total, nil
}

// CurrentShift classifies the current instant in plant time.
func (s *Service) CurrentShift() domain.Shift {
	return domain.ClassifyShift(s.clock().In(s.loc))
}

// clock returns now at the storage precision.
func (s *Service) clock() time.Time {
	return s.now().Truncate(time.Microsecond)
}

// transition runs fn under the worker's lock and records its outcome.
func (s *Service) transition(sess *Session, name string, fn func() error) error {
	unlock := s.locks.lock(sess.Worker.ID)
	defer unlock()

	err := fn()
	s.rec.ObserveTransition(name, err)
	return err
}
