package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AreaProductionStats aggregates completed work cards of one production area.
type AreaProductionStats struct {
	AreaID             uuid.UUID
	AreaName           string
	TotalCards         int
	TotalGoodParts     int
	TotalScrapParts    int
	TotalMaterialUsage decimal.Decimal
	AvgGoodParts       decimal.Decimal
}
