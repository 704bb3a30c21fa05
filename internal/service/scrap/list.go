package scrap

import (
	"context"
	"fmt"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// ExportLimit caps the rows of a single export.
const ExportLimit = 10000

// List returns entries newest first within the input's plant-day range.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.ScrapEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	period, err := domain.ParsePeriod(input.DateFrom, input.DateTo, s.loc)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	return s.list(ctx, period, limit, input.Offset)
}

// Export is a full extract of the ledger for one period.
type Export struct {
	Period  domain.Period
	Entries []domain.ScrapEntry
	Summary domain.ScrapSummary
}

// Export returns every entry of the plant-day range, up to ExportLimit,
// with its summary.
func (s *Service) Export(ctx context.Context, dateFrom, dateTo string) (*Export, error) {
	period, err := domain.ParsePeriod(dateFrom, dateTo, s.loc)
	if err != nil {
		return nil, err
	}

	entries, err := s.list(ctx, period, ExportLimit, 0)
	if err != nil {
		return nil, err
	}
	if len(entries) == ExportLimit {
		s.log.WarnContext(ctx, "scrap export truncated", "limit", ExportLimit, "period", period.Label(s.loc))
	}

	return &Export{Period: period, Entries: entries, Summary: Summary(entries)}, nil
}

func (s *Service) list(ctx context.Context, period domain.Period, limit, offset int) ([]domain.ScrapEntry, error) {
	entries, err := s.entries.List(ctx, domain.ScrapFilter{
		From:   period.From,
		To:     period.To,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list scrap entries: %w", err)
	}
	return entries, nil
}

// Summary totals quantity and waste over entries.
func Summary(entries []domain.ScrapEntry) domain.ScrapSummary {
	return domain.SummarizeScrap(entries)
}
