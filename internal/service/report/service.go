// Package report aggregates production statistics and renders exports.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/report/xlsx"
	"github.com/heartmarshall/laborcard-backend/internal/service/scrap"
)

type statsRepo interface {
	AggregateProduction(ctx context.Context, from, to time.Time) ([]domain.AreaProductionStats, error)
}

type scrapExporter interface {
	Export(ctx context.Context, dateFrom, dateTo string) (*scrap.Export, error)
}

// Service builds production statistics and XLSX exports.
type Service struct {
	log   *slog.Logger
	loc   *time.Location
	stats statsRepo
	scrap scrapExporter
}

// NewService creates a report service. loc is the plant time zone.
func NewService(log *slog.Logger, loc *time.Location, stats statsRepo, scrap scrapExporter) *Service {
	return &Service{
		log:   log.With("service", "report"),
		loc:   loc,
		stats: stats,
		scrap: scrap,
	}
}

// Production is the per-area aggregate of completed cards in a period.
type Production struct {
	Period domain.Period
	Areas  []domain.AreaProductionStats
}

// Production aggregates completed cards started within the plant-day range.
func (s *Service) Production(ctx context.Context, dateFrom, dateTo string) (*Production, error) {
	period, err := domain.ParsePeriod(dateFrom, dateTo, s.loc)
	if err != nil {
		return nil, err
	}

	areas, err := s.stats.AggregateProduction(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("aggregate production: %w", err)
	}
	return &Production{Period: period, Areas: areas}, nil
}

// ExportProduction writes the production aggregate as a workbook.
func (s *Service) ExportProduction(ctx context.Context, w io.Writer, dateFrom, dateTo string) error {
	p, err := s.Production(ctx, dateFrom, dateTo)
	if err != nil {
		return err
	}

	title := "Production " + p.Period.Label(s.loc)
	if err := xlsx.ProductionStats(w, title, p.Areas); err != nil {
		return fmt.Errorf("render production export: %w", err)
	}

	s.log.InfoContext(ctx, "production exported", "areas", len(p.Areas), "period", p.Period.Label(s.loc))
	return nil
}

// ExportScrap writes the scrap ledger extract as a workbook.
func (s *Service) ExportScrap(ctx context.Context, w io.Writer, dateFrom, dateTo string) error {
	export, err := s.scrap.Export(ctx, dateFrom, dateTo)
	if err != nil {
		return fmt.Errorf("export scrap: %w", err)
	}

	title := "Scrap " + export.Period.Label(s.loc)
	if err := xlsx.ScrapEntries(w, title, export.Entries, export.Summary, s.loc); err != nil {
		return fmt.Errorf("render scrap export: %w", err)
	}

	s.log.InfoContext(ctx, "scrap exported", "entries", len(export.Entries), "period", export.Period.Label(s.loc))
	return nil
}

// Filename suggests a download name such as "scrap_2026-03-01_2026-03-31.xlsx".
func Filename(kind, dateFrom, dateTo string) string {
	name := kind
	if dateFrom != "" {
		name += "_" + dateFrom
	}
	if dateTo != "" {
		name += "_" + dateTo
	}
	return name + ".xlsx"
}
