package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Login validates the worker's personal number and issues a session token.
// Unknown and inactive workers both fail with domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	personalID := strings.TrimSpace(input.PersonalID)

	worker, err := s.workers.GetByPersonalID(ctx, personalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "unknown personal id", "personal_id", personalID)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get worker: %w", err)
	}

	token, expiresAt, err := s.sessions.Issue(worker.ID, worker.PersonalID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue session: %w", err)
	}

	s.log.InfoContext(ctx, "worker signed in", "worker_id", worker.ID, "personal_id", worker.PersonalID)

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Worker: worker}, nil
}

// ValidateToken checks a session token and returns the worker it belongs to.
// A worker deactivated after sign-in is rejected.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	sess, err := s.sessions.Validate(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	worker, err := s.workers.GetByID(ctx, sess.WorkerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("auth.ValidateToken get worker: %w", err)
	}
	if !worker.IsActive {
		return uuid.Nil, domain.ErrUnauthorized
	}

	return worker.ID, nil
}
