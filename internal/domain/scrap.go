package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScrapEntry is an append-only record of scrapped parts.
type ScrapEntry struct {
	ID            uuid.UUID
	WorkCardID    uuid.UUID
	ScrapTypeID   uuid.UUID
	ScrapTypeCode string
	Quantity      int
	MaterialWaste decimal.Decimal
	Reason        *string
	Notes         *string
	OrderNumber   string
	ItemNumber    *string
	RegisteredBy  uuid.UUID
	RegisteredAt  time.Time

	// Read-side fields, filled by list queries only.
	ScrapTypeName    string
	WorkerName       string
	WorkerPersonalID string
}

var hundred = decimal.NewFromInt(100)

// WastePercentage returns MaterialWaste per scrapped part as a percentage,
// rounded to two decimals. It is zero when Quantity is zero.
func (e ScrapEntry) WastePercentage() decimal.Decimal {
	return WastePercentage(e.MaterialWaste, e.Quantity)
}

// WastePercentage computes waste / quantity * 100 rounded to two decimals.
func WastePercentage(waste decimal.Decimal, quantity int) decimal.Decimal {
	if quantity == 0 {
		return decimal.Zero
	}
	return waste.Div(decimal.NewFromInt(int64(quantity))).Mul(hundred).Round(2)
}

// ScrapSummary totals a set of scrap entries.
type ScrapSummary struct {
	Entries         int
	TotalQuantity   int
	TotalWaste      decimal.Decimal
	WastePercentage decimal.Decimal
}

// SummarizeScrap totals quantity and waste over entries.
func SummarizeScrap(entries []ScrapEntry) ScrapSummary {
	s := ScrapSummary{Entries: len(entries), TotalWaste: decimal.Zero}
	for _, e := range entries {
		s.TotalQuantity += e.Quantity
		s.TotalWaste = s.TotalWaste.Add(e.MaterialWaste)
	}
	s.WastePercentage = WastePercentage(s.TotalWaste, s.TotalQuantity)
	return s
}

// ScrapFilter selects scrap entries by registration time.
type ScrapFilter struct {
	// From is inclusive. Zero means unbounded.
	From time.Time
	// To is exclusive. Zero means unbounded.
	To     time.Time
	Limit  int
	Offset int
}
