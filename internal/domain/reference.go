package domain

import (
	"slices"

	"github.com/google/uuid"
)

// ProductionArea is the top level of the reference hierarchy.
type ProductionArea struct {
	ID       uuid.UUID
	Code     string
	Name     string
	IsActive bool
}

// OperationType belongs to a production area.
type OperationType struct {
	ID       uuid.UUID
	AreaID   uuid.UUID
	Code     string
	Name     string
	IsActive bool
}

// OperationSubtype belongs to an operation type.
type OperationSubtype struct {
	ID              uuid.UUID
	OperationTypeID uuid.UUID
	Code            string
	Name            string
	IsActive        bool
}

// stripRollOperationCodes are the operations that produce strips or rolls
// and therefore must report a strips/rolls count.
var stripRollOperationCodes = []string{"26", "29"}

// RequiresStripsRolls reports whether the operation with the given code
// produces strips or rolls.
func RequiresStripsRolls(operationCode string) bool {
	return slices.Contains(stripRollOperationCodes, operationCode)
}

// Order is a production order a work card is booked against.
type Order struct {
	OrderNumber  string
	ItemNumber   *string
	PlannedQty   int
	CompletedQty int
	Status       OrderStatus
}

// ScrapType is one entry of the scrap taxonomy.
type ScrapType struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description *string
	IsActive    bool
}
