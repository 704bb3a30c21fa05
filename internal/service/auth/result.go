package auth

import (
	"time"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Worker    *domain.Worker
}
