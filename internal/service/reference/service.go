// Package reference serves the read-only catalogue a kiosk picks from:
// production areas, operations, subtypes, scrap types, and orders.
package reference

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

type referenceRepo interface {
	ListAreas(ctx context.Context) ([]domain.ProductionArea, error)
	ListOperationTypes(ctx context.Context, areaID uuid.UUID) ([]domain.OperationType, error)
	ListOperationSubtypes(ctx context.Context, operationTypeID uuid.UUID) ([]domain.OperationSubtype, error)
	GetOperationType(ctx context.Context, id uuid.UUID) (*domain.OperationType, error)
	ListScrapTypes(ctx context.Context) ([]domain.ScrapType, error)
}

type orderRepo interface {
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
}

// Service provides reference data lookups.
type Service struct {
	log    *slog.Logger
	loc    *time.Location
	refs   referenceRepo
	orders orderRepo
	now    func() time.Time
}

// NewService creates a reference service. loc is the plant time zone.
func NewService(log *slog.Logger, loc *time.Location, refs referenceRepo, orders orderRepo) *Service {
	return &Service{
		log:    log.With("service", "reference"),
		loc:    loc,
		refs:   refs,
		orders: orders,
		now:    time.Now,
	}
}

// ListAreas returns active production areas ordered by name.
func (s *Service) ListAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	areas, err := s.refs.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return areas, nil
}

// ListOperationTypes returns the active operations of an area.
func (s *Service) ListOperationTypes(ctx context.Context, areaID uuid.UUID) ([]domain.OperationType, error) {
	ops, err := s.refs.ListOperationTypes(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("list operation types: %w", err)
	}
	return ops, nil
}

// ListOperationSubtypes returns the active subtypes of an operation.
func (s *Service) ListOperationSubtypes(ctx context.Context, operationTypeID uuid.UUID) ([]domain.OperationSubtype, error) {
	subs, err := s.refs.ListOperationSubtypes(ctx, operationTypeID)
	if err != nil {
		return nil, fmt.Errorf("list operation subtypes: %w", err)
	}
	return subs, nil
}

// GetOperationType returns one operation, active or not.
func (s *Service) GetOperationType(ctx context.Context, id uuid.UUID) (*domain.OperationType, error) {
	op, err := s.refs.GetOperationType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get operation type: %w", err)
	}
	return op, nil
}

// ListScrapTypes returns the active scrap taxonomy.
func (s *Service) ListScrapTypes(ctx context.Context) ([]domain.ScrapType, error) {
	types, err := s.refs.ListScrapTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scrap types: %w", err)
	}
	return types, nil
}

// GetOrder looks an order up by number.
func (s *Service) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	number := strings.TrimSpace(orderNumber)
	if number == "" {
		return nil, domain.NewValidationError("order_number", "required")
	}

	order, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ShiftInfo describes the shift at a given plant-local instant.
type ShiftInfo struct {
	Shift     domain.Shift
	Start     string
	End       string
	LocalTime time.Time
}

// ShiftAt classifies t in plant time.
func (s *Service) ShiftAt(t time.Time) ShiftInfo {
	local := t.In(s.loc)
	shift := domain.ClassifyShift(local)
	start, end := shift.Window()
	return ShiftInfo{Shift: shift, Start: start, End: end, LocalTime: local}
}

// CurrentShift classifies the current instant in plant time.
func (s *Service) CurrentShift() ShiftInfo {
	return s.ShiftAt(s.now())
}
