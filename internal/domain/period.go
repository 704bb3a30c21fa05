package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted in report filters.
const DateLayout = "2006-01-02"

// Period is a half-open time range [From, To). Zero ends are unbounded.
type Period struct {
	From time.Time
	To   time.Time
}

// ParsePeriod turns inclusive calendar dates into a half-open range of plant
// days in loc. Either date may be blank.
func ParsePeriod(dateFrom, dateTo string, loc *time.Location) (Period, error) {
	var (
		p    Period
		errs []FieldError
	)

	if s := strings.TrimSpace(dateFrom); s != "" {
		d, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			errs = append(errs, FieldError{Field: "date_from", Message: "must be YYYY-MM-DD"})
		} else {
			p.From = d
		}
	}
	if s := strings.TrimSpace(dateTo); s != "" {
		d, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			errs = append(errs, FieldError{Field: "date_to", Message: "must be YYYY-MM-DD"})
		} else {
			p.To = d.AddDate(0, 0, 1)
		}
	}

	if len(errs) > 0 {
		return Period{}, NewValidationErrors(errs)
	}
	if !p.From.IsZero() && !p.To.IsZero() && !p.From.Before(p.To) {
		return Period{}, NewValidationError("date_to", "must not be before date_from")
	}
	return p, nil
}

// Label renders the period as "from - to" dates in loc, for report titles.
func (p Period) Label(loc *time.Location) string {
	from, to := "…", "…"
	if !p.From.IsZero() {
		from = p.From.In(loc).Format(DateLayout)
	}
	if !p.To.IsZero() {
		to = p.To.In(loc).AddDate(0, 0, -1).Format(DateLayout)
	}
	return from + " - " + to
}
