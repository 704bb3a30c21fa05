package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/auth"
	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// workerRepo defines the worker lookups needed by the auth service.
type workerRepo interface {
	GetByPersonalID(ctx context.Context, personalID string) (*domain.Worker, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error)
}

// sessionManager issues and validates kiosk session tokens.
type sessionManager interface {
	Issue(workerID uuid.UUID, personalID string) (string, time.Time, error)
	Validate(token string) (auth.Session, error)
}

// Service implements kiosk sign-in.
type Service struct {
	log      *slog.Logger
	workers  workerRepo
	sessions sessionManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, workers workerRepo, sessions sessionManager) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		workers:  workers,
		sessions: sessions,
	}
}
