package workcard

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// MaxQuantity bounds every accumulator value.
const MaxQuantity = 99999

var maxQuantityDecimal = decimal.NewFromInt(MaxQuantity)

// Draft is the card form as filled in at the kiosk. Quantities stay text
// until validated so that blank and malformed input can be told apart.
type Draft struct {
	AreaID             uuid.UUID
	OperationTypeID    uuid.UUID
	OperationCode      string
	OperationSubtypeID uuid.UUID
	OrderNumber        string
	ItemNumber         string
	Quantities
}

// Quantities are the accumulator inputs as entered.
type Quantities struct {
	GoodParts     string
	ScrapParts    string
	MaterialUsage string
	StripsRolls   string
}

// ValidateDraft returns every missing or malformed field of d for mode.
// Blank optional fields are not errors.
func ValidateDraft(d Draft, mode domain.Mode) []domain.FieldError {
	var errs []domain.FieldError

	if d.AreaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "area", Message: "required"})
	}
	if d.OperationTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "operation_type", Message: "required"})
	}
	if d.OperationSubtypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "operation_subtype", Message: "required"})
	}
	if strings.TrimSpace(d.OrderNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "order_number", Message: "required"})
	}
	if strings.TrimSpace(d.ItemNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "item_number", Message: "required"})
	}

	return append(errs, ValidateQuantities(d.Quantities, mode, d.OperationCode)...)
}

// ValidateQuantities checks the accumulator inputs alone. Material usage is
// always required; good or scrap parts depending on mode; strips/rolls for
// strip and roll operations.
func ValidateQuantities(q Quantities, mode domain.Mode, operationCode string) []domain.FieldError {
	var errs []domain.FieldError

	check := func(field, value string, required, whole bool) {
		value = strings.TrimSpace(value)
		if value == "" {
			if required {
				errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			}
			return
		}
		if msg := checkNumber(value, whole); msg != "" {
			errs = append(errs, domain.FieldError{Field: field, Message: msg})
		}
	}

	check("good_parts", q.GoodParts, mode == domain.ModeProduction, true)
	check("scrap_parts", q.ScrapParts, mode == domain.ModeScrap, true)
	check("material_usage", q.MaterialUsage, true, false)
	check("strips_rolls", q.StripsRolls, domain.RequiresStripsRolls(operationCode), true)

	return errs
}

// ReadyToStart reports whether d may start a card in mode.
func ReadyToStart(d Draft, mode domain.Mode) bool {
	return len(ValidateDraft(d, mode)) == 0
}

// ReadyToFinish reports whether d carries valid final quantities for a card
// in mode. The selection rules are the same as for starting.
func ReadyToFinish(d Draft, mode domain.Mode) bool {
	return len(ValidateDraft(d, mode)) == 0
}

func checkNumber(value string, whole bool) string {
	if whole {
		n, err := strconv.Atoi(value)
		if err != nil {
			return "must be a whole number"
		}
		if n < 0 || n > MaxQuantity {
			return "must be between 0 and 99999"
		}
		return ""
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return "must be a number"
	}
	if d.IsNegative() || d.GreaterThan(maxQuantityDecimal) {
		return "must be between 0 and 99999"
	}
	return ""
}

// parseQuantities converts validated inputs to accumulators, zeroing the
// counter the mode does not use and strips/rolls for operations without them.
func parseQuantities(q Quantities, mode domain.Mode, operationCode string) domain.Accumulators {
	acc := domain.Accumulators{
		GoodParts:     atoi(q.GoodParts),
		ScrapParts:    atoi(q.ScrapParts),
		MaterialUsage: decimal.Zero,
		StripsRolls:   atoi(q.StripsRolls),
	}
	if v := strings.TrimSpace(q.MaterialUsage); v != "" {
		acc.MaterialUsage = decimal.RequireFromString(v).Round(3)
	}
	return normalize(acc, mode, operationCode)
}

func normalize(acc domain.Accumulators, mode domain.Mode, operationCode string) domain.Accumulators {
	switch mode {
	case domain.ModeProduction:
		acc.ScrapParts = 0
	case domain.ModeScrap:
		acc.GoodParts = 0
	}
	if !domain.RequiresStripsRolls(operationCode) {
		acc.StripsRolls = 0
	}
	return acc
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// quantitiesOf renders accumulators back into form inputs.
func quantitiesOf(acc domain.Accumulators) Quantities {
	return Quantities{
		GoodParts:     strconv.Itoa(acc.GoodParts),
		ScrapParts:    strconv.Itoa(acc.ScrapParts),
		MaterialUsage: acc.MaterialUsage.String(),
		StripsRolls:   strconv.Itoa(acc.StripsRolls),
	}
}
