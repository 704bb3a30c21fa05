package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/service/auth"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

// SessionHandler serves kiosk login.
type SessionHandler struct {
	svc authService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc authService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type loginRequest struct {
	PersonalID string `json:"personal_id"`
}

type sessionResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Worker    workerResponse `json:"worker"`
}

type workerResponse struct {
	ID         string `json:"id"`
	PersonalID string `json:"personal_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
}

// Login handles POST /api/sessions.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{PersonalID: req.PersonalID})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Worker:    toWorkerResponse(*result.Worker),
	})
}

func toWorkerResponse(w domain.Worker) workerResponse {
	return workerResponse{
		ID:         w.ID.String(),
		PersonalID: w.PersonalID,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		FullName:   w.FullName(),
	}
}
