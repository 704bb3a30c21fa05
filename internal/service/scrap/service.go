package scrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

type scrapRepo interface {
	Create(ctx context.Context, e *domain.ScrapEntry) error
	List(ctx context.Context, f domain.ScrapFilter) ([]domain.ScrapEntry, error)
}

type scrapTypeRepo interface {
	GetScrapTypeByCode(ctx context.Context, code string) (*domain.ScrapType, error)
}

type cardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkCard, error)
}

type scrapRecorder interface {
	ObserveScrap(scrapTypeCode string, quantity int)
}

// Service is the append-only scrap ledger.
type Service struct {
	log     *slog.Logger
	loc     *time.Location
	entries scrapRepo
	types   scrapTypeRepo
	cards   cardRepo
	rec     scrapRecorder
	now     func() time.Time
}

// NewService creates a scrap ledger service. loc is the plant time zone used
// to interpret date filters.
func NewService(
	log *slog.Logger,
	loc *time.Location,
	entries scrapRepo,
	types scrapTypeRepo,
	cards cardRepo,
	rec scrapRecorder,
) *Service {
	return &Service{
		log:     log.With("service", "scrap"),
		loc:     loc,
		entries: entries,
		types:   types,
		cards:   cards,
		rec:     rec,
		now:     time.Now,
	}
}
