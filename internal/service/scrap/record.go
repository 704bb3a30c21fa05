package scrap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Record appends a scrap entry registered by registeredBy. Each call is
// independent of the referenced card's lifecycle state.
func (s *Service) Record(ctx context.Context, registeredBy uuid.UUID, input RecordInput) (*domain.ScrapEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.ScrapTypeCode)
	st, err := s.types.GetScrapTypeByCode(ctx, code)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.NewValidationError("scrap_type", "unknown scrap type")
	case err != nil:
		return nil, fmt.Errorf("get scrap type: %w", err)
	case !st.IsActive:
		return nil, domain.NewValidationError("scrap_type", "unknown scrap type")
	}

	if _, err := s.cards.GetByID(ctx, input.WorkCardID); err != nil {
		return nil, fmt.Errorf("get work card: %w", err)
	}

	entry := &domain.ScrapEntry{
		ID:            uuid.New(),
		WorkCardID:    input.WorkCardID,
		ScrapTypeID:   st.ID,
		ScrapTypeCode: st.Code,
		ScrapTypeName: st.Name,
		Quantity:      input.Quantity,
		MaterialWaste: input.MaterialWaste.Round(3),
		Reason:        trimOrNil(input.Reason),
		Notes:         trimOrNil(input.Notes),
		OrderNumber:   strings.TrimSpace(input.OrderNumber),
		ItemNumber:    trimOrNil(input.ItemNumber),
		RegisteredBy:  registeredBy,
		RegisteredAt:  s.now().Truncate(time.Microsecond),
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create scrap entry: %w", err)
	}

	s.rec.ObserveScrap(st.Code, entry.Quantity)

	s.log.InfoContext(ctx, "scrap recorded",
		"entry_id", entry.ID,
		"work_card_id", entry.WorkCardID,
		"scrap_type", st.Code,
		"quantity", entry.Quantity,
	)

	return entry, nil
}
