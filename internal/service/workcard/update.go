package workcard

import (
	"context"
	"fmt"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Update changes accumulator fields of the session's active card.
func (s *Service) Update(ctx context.Context, sess *Session, patch domain.AccumulatorPatch) (*domain.WorkCard, error) {
	var card *domain.WorkCard
	err := s.transition(sess, "update", func() error {
		var err error
		card, err = s.update(ctx, sess, patch)
		return err
	})
	return card, err
}

func (s *Service) update(ctx context.Context, sess *Session, patch domain.AccumulatorPatch) (*domain.WorkCard, error) {
	cur := sess.Current
	if cur == nil {
		return nil, domain.ErrNoActiveCard
	}
	if patch.IsEmpty() {
		return nil, domain.ErrNoUpdatableFields
	}
	if errs := validatePatch(patch); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	patch = normalizePatch(patch, cur.Mode, cur.OperationCode)

	updated, err := s.cards.UpdateAccumulators(ctx, cur.ID, cur.Version, patch, s.clock())
	if err != nil {
		return nil, fmt.Errorf("update work card: %w", err)
	}

	sess.Current = updated
	sess.Draft.Quantities = quantitiesOf(updated.Accumulators)

	s.log.DebugContext(ctx, "work card updated", "card_id", updated.ID, "version", updated.Version)

	return updated, nil
}

func validatePatch(p domain.AccumulatorPatch) []domain.FieldError {
	var errs []domain.FieldError

	checkInt := func(field string, v *int) {
		if v != nil && (*v < 0 || *v > MaxQuantity) {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be between 0 and 99999"})
		}
	}

	checkInt("good_parts", p.GoodParts)
	checkInt("scrap_parts", p.ScrapParts)
	if p.MaterialUsage != nil && (p.MaterialUsage.IsNegative() || p.MaterialUsage.GreaterThan(maxQuantityDecimal)) {
		errs = append(errs, domain.FieldError{Field: "material_usage", Message: "must be between 0 and 99999"})
	}
	checkInt("strips_rolls", p.StripsRolls)

	return errs
}

// normalizePatch pins the counters the card does not use to zero.
func normalizePatch(p domain.AccumulatorPatch, mode domain.Mode, operationCode string) domain.AccumulatorPatch {
	zero := 0
	if mode == domain.ModeProduction && p.ScrapParts != nil {
		p.ScrapParts = &zero
	}
	if mode == domain.ModeScrap && p.GoodParts != nil {
		p.GoodParts = &zero
	}
	if !domain.RequiresStripsRolls(operationCode) && p.StripsRolls != nil {
		p.StripsRolls = &zero
	}
	if p.MaterialUsage != nil {
		m := p.MaterialUsage.Round(3)
		p.MaterialUsage = &m
	}
	return p
}
