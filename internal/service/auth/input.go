package auth

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

const maxPersonalIDLength = 20

// LoginInput holds the personal number typed at the kiosk.
type LoginInput struct {
	PersonalID string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	id := strings.TrimSpace(i.PersonalID)

	var errs []domain.FieldError
	switch {
	case id == "":
		errs = append(errs, domain.FieldError{Field: "personal_id", Message: "required"})
	case len(id) > maxPersonalIDLength:
		errs = append(errs, domain.FieldError{Field: "personal_id", Message: "max 20 characters"})
	case strings.IndexFunc(id, unicode.IsSpace) >= 0:
		errs = append(errs, domain.FieldError{Field: "personal_id", Message: "must not contain spaces"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
