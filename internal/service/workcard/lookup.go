package workcard

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// LookupOrder records orderNumber in the draft and tries to fill the item
// number from the order registry. A short number, a miss, or a failed lookup
// all clear the item number and return a nil order. Only a locked session
// is an error.
func (s *Service) LookupOrder(ctx context.Context, sess *Session, orderNumber string) (*domain.Order, error) {
	if err := sess.SetOrder(orderNumber); err != nil {
		return nil, err
	}

	number := sess.Draft.OrderNumber
	if utf8.RuneCountInString(number) < MinOrderLookupLength {
		sess.Draft.ItemNumber = ""
		return nil, nil
	}

	order, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "order lookup failed", "order_number", number, "error", err)
		}
		sess.Draft.ItemNumber = ""
		return nil, nil
	}

	if order.ItemNumber != nil && *order.ItemNumber != "" {
		sess.Draft.ItemNumber = *order.ItemNumber
	}
	return order, nil
}
