package workcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Start opens a card from the session draft. The session is only changed when
// the card has been persisted.
func (s *Service) Start(ctx context.Context, sess *Session) (*domain.WorkCard, error) {
	var card *domain.WorkCard
	err := s.transition(sess, "start", func() error {
		var err error
		card, err = s.start(ctx, sess)
		return err
	})
	return card, err
}

func (s *Service) start(ctx context.Context, sess *Session) (*domain.WorkCard, error) {
	if sess.Current != nil {
		return nil, domain.ErrCardAlreadyActive
	}

	draft := sess.Draft
	draft.OrderNumber = strings.TrimSpace(draft.OrderNumber)
	draft.ItemNumber = strings.TrimSpace(draft.ItemNumber)

	if draft.OrderNumber != "" {
		order, err := s.orders.GetByNumber(ctx, draft.OrderNumber)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Unregistered orders are booked as typed.
		case err != nil:
			return nil, fmt.Errorf("get order: %w", err)
		case order.Status != domain.OrderStatusActive:
			return nil, fmt.Errorf("order %s is %s: %w", order.OrderNumber, order.Status, domain.ErrNotFound)
		case draft.ItemNumber == "" && order.ItemNumber != nil:
			draft.ItemNumber = *order.ItemNumber
		}
	}

	if errs := ValidateDraft(draft, sess.Mode); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	op, err := s.verifySelection(ctx, draft)
	if err != nil {
		return nil, err
	}
	if op.Code != draft.OperationCode {
		draft.OperationCode = op.Code
		if errs := ValidateQuantities(draft.Quantities, sess.Mode, op.Code); len(errs) > 0 {
			return nil, domain.NewValidationErrors(errs)
		}
	}

	now := s.clock()
	created, err := s.cards.Create(ctx, &domain.WorkCard{
		ID:                 uuid.New(),
		WorkerID:           sess.Worker.ID,
		AreaID:             draft.AreaID,
		OperationTypeID:    op.ID,
		OperationCode:      op.Code,
		OperationSubtypeID: draft.OperationSubtypeID,
		OrderNumber:        draft.OrderNumber,
		ItemNumber:         draft.ItemNumber,
		Shift:              domain.ClassifyShift(now.In(s.loc)),
		Mode:               sess.Mode,
		Accumulators:       parseQuantities(draft.Quantities, sess.Mode, op.Code),
		Status:             domain.CardStatusActive,
		StartedAt:          now,
	})
	if err != nil {
		return nil, fmt.Errorf("create work card: %w", err)
	}

	sess.adopt(created)

	s.log.InfoContext(ctx, "work card started",
		slog.String("card_id", created.ID.String()),
		slog.String("worker_id", created.WorkerID.String()),
		slog.String("mode", created.Mode.String()),
		slog.Int("shift", int(created.Shift)),
	)

	return created, nil
}

// verifySelection checks that the chosen area, operation, and subtype exist,
// are active, and belong to each other.
func (s *Service) verifySelection(ctx context.Context, d Draft) (*domain.OperationType, error) {
	area, err := s.refs.GetArea(ctx, d.AreaID)
	if err != nil {
		return nil, fmt.Errorf("get area: %w", err)
	}
	if !area.IsActive {
		return nil, fmt.Errorf("area %s is inactive: %w", area.Code, domain.ErrNotFound)
	}

	op, err := s.refs.GetOperationType(ctx, d.OperationTypeID)
	if err != nil {
		return nil, fmt.Errorf("get operation type: %w", err)
	}
	if !op.IsActive || op.AreaID != area.ID {
		return nil, fmt.Errorf("operation type %s not available in area %s: %w", op.Code, area.Code, domain.ErrNotFound)
	}

	sub, err := s.refs.GetOperationSubtype(ctx, d.OperationSubtypeID)
	if err != nil {
		return nil, fmt.Errorf("get operation subtype: %w", err)
	}
	if !sub.IsActive || sub.OperationTypeID != op.ID {
		return nil, fmt.Errorf("operation subtype %s not available for operation %s: %w", sub.Code, op.Code, domain.ErrNotFound)
	}

	return op, nil
}
