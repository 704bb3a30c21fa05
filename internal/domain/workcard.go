package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accumulators are the four quantities a work card collects while active.
type Accumulators struct {
	GoodParts     int
	ScrapParts    int
	MaterialUsage decimal.Decimal
	StripsRolls   int
}

// WorkCard is a single worker's timed session against one order and operation.
type WorkCard struct {
	ID                 uuid.UUID
	WorkerID           uuid.UUID
	AreaID             uuid.UUID
	OperationTypeID    uuid.UUID
	OperationCode      string
	OperationSubtypeID uuid.UUID
	OrderNumber        string
	ItemNumber         string
	Shift              Shift
	Mode               Mode
	Accumulators
	Status     CardStatus
	StartedAt  time.Time
	FinishedAt *time.Time
	UpdatedAt  time.Time
	Version    int
}

// IsActive reports whether the card may still be mutated.
func (c *WorkCard) IsActive() bool {
	return c.Status == CardStatusActive
}

// Duration returns the elapsed working time, measured to now for active cards.
func (c *WorkCard) Duration(now time.Time) time.Duration {
	if c.FinishedAt != nil {
		return c.FinishedAt.Sub(c.StartedAt)
	}
	return now.Sub(c.StartedAt)
}

// AccumulatorPatch is a partial update of a work card. Only the four
// accumulator fields exist; nil means "leave unchanged".
type AccumulatorPatch struct {
	GoodParts     *int
	ScrapParts    *int
	MaterialUsage *decimal.Decimal
	StripsRolls   *int
}

// IsEmpty reports whether the patch changes nothing.
func (p AccumulatorPatch) IsEmpty() bool {
	return p.GoodParts == nil && p.ScrapParts == nil && p.MaterialUsage == nil && p.StripsRolls == nil
}

// Apply returns a copy of acc with the patch applied.
func (p AccumulatorPatch) Apply(acc Accumulators) Accumulators {
	if p.GoodParts != nil {
		acc.GoodParts = *p.GoodParts
	}
	if p.ScrapParts != nil {
		acc.ScrapParts = *p.ScrapParts
	}
	if p.MaterialUsage != nil {
		acc.MaterialUsage = *p.MaterialUsage
	}
	if p.StripsRolls != nil {
		acc.StripsRolls = *p.StripsRolls
	}
	return acc
}

// WorkCardView is a completed card enriched with reference names for display.
type WorkCardView struct {
	WorkCard
	AreaName             string
	OperationTypeName    string
	OperationSubtypeName string
}
