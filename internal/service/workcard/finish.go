package workcard

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Finish completes the session's active card with the final quantities and
// credits good parts to the order.
func (s *Service) Finish(ctx context.Context, sess *Session, final Quantities) (*domain.WorkCard, error) {
	var card *domain.WorkCard
	err := s.transition(sess, "finish", func() error {
		var err error
		card, err = s.finish(ctx, sess, final)
		return err
	})
	return card, err
}

func (s *Service) finish(ctx context.Context, sess *Session, final Quantities) (*domain.WorkCard, error) {
	cur := sess.Current
	if cur == nil {
		return nil, domain.ErrNoActiveCard
	}

	draft := Draft{
		AreaID:             cur.AreaID,
		OperationTypeID:    cur.OperationTypeID,
		OperationCode:      cur.OperationCode,
		OperationSubtypeID: cur.OperationSubtypeID,
		OrderNumber:        cur.OrderNumber,
		ItemNumber:         cur.ItemNumber,
		Quantities:         final,
	}
	if errs := ValidateDraft(draft, cur.Mode); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	acc := parseQuantities(final, cur.Mode, cur.OperationCode)

	finishedAt := s.clock()
	if !finishedAt.After(cur.StartedAt) {
		finishedAt = cur.StartedAt.Truncate(time.Microsecond).Add(time.Microsecond)
	}

	var finished *domain.WorkCard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		finished, err = s.cards.Finish(txCtx, cur.ID, cur.Version, acc, finishedAt)
		if err != nil {
			return fmt.Errorf("finish work card: %w", err)
		}

		if acc.GoodParts == 0 {
			return nil
		}
		found, err := s.orders.AddCompleted(txCtx, cur.OrderNumber, acc.GoodParts)
		if err != nil {
			return fmt.Errorf("credit order: %w", err)
		}
		if !found {
			s.log.DebugContext(ctx, "order not registered, nothing credited", "order_number", cur.OrderNumber)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sess.release(finished)

	s.log.InfoContext(ctx, "work card finished",
		"card_id", finished.ID,
		"worker_id", finished.WorkerID,
		"good_parts", finished.GoodParts,
		"scrap_parts", finished.ScrapParts,
		"duration", finished.Duration(finishedAt).String(),
	)

	return finished, nil
}
