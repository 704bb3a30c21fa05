package dataloader

import (
	"context"
	"fmt"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// WorkCardViews attaches area and operation names to cards. All lookups for
// the page are queued before any is awaited so each loader runs one batch.
func WorkCardViews(ctx context.Context, l *Loaders, cards []domain.WorkCard) ([]domain.WorkCardView, error) {
	type pending struct {
		area    func() (*domain.ProductionArea, error)
		op      func() (*domain.OperationType, error)
		subtype func() (*domain.OperationSubtype, error)
	}

	thunks := make([]pending, len(cards))
	for i, c := range cards {
		thunks[i] = pending{
			area:    l.AreaByID.Load(ctx, c.AreaID),
			op:      l.OperationTypeByID.Load(ctx, c.OperationTypeID),
			subtype: l.OperationSubtypeByID.Load(ctx, c.OperationSubtypeID),
		}
	}

	views := make([]domain.WorkCardView, len(cards))
	for i, c := range cards {
		views[i].WorkCard = c

		area, err := thunks[i].area()
		if err != nil {
			return nil, fmt.Errorf("load area: %w", err)
		}
		if area != nil {
			views[i].AreaName = area.Name
		}

		op, err := thunks[i].op()
		if err != nil {
			return nil, fmt.Errorf("load operation type: %w", err)
		}
		if op != nil {
			views[i].OperationTypeName = op.Name
		}

		sub, err := thunks[i].subtype()
		if err != nil {
			return nil, fmt.Errorf("load operation subtype: %w", err)
		}
		if sub != nil {
			views[i].OperationSubtypeName = sub.Name
		}
	}

	return views, nil
}
