package scrap

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	maxQuantity    = 99999
	maxTextLength  = 1000
	maxOrderLength = 50
)

// RecordInput holds one scrap registration.
type RecordInput struct {
	WorkCardID    uuid.UUID
	ScrapTypeCode string
	Quantity      int
	MaterialWaste decimal.Decimal
	Reason        *string
	Notes         *string
	OrderNumber   string
	ItemNumber    *string
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkCardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "work_card_id", Message: "required"})
	}
	if strings.TrimSpace(i.ScrapTypeCode) == "" {
		errs = append(errs, domain.FieldError{Field: "scrap_type", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be greater than 0"})
	}
	if i.Quantity > maxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "max 99999"})
	}
	if i.MaterialWaste.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "material_waste", Message: "must be non-negative"})
	}

	order := strings.TrimSpace(i.OrderNumber)
	if order == "" {
		errs = append(errs, domain.FieldError{Field: "order_number", Message: "required"})
	}
	if len(order) > maxOrderLength {
		errs = append(errs, domain.FieldError{Field: "order_number", Message: "max 50 characters"})
	}

	if i.Reason != nil && len(*i.Reason) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}
	if i.Notes != nil && len(*i.Notes) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing scrap entries. Dates are plant
// calendar days, both inclusive.
type ListInput struct {
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
