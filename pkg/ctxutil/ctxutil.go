// Package ctxutil carries per-request identity through context.Context and
// onto log records.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type (
	workerIDKey  struct{}
	requestIDKey struct{}
)

// WithWorkerID marks ctx as acting for the worker behind a session token.
func WithWorkerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, workerIDKey{}, id)
}

// WorkerIDFromCtx reports the worker on ctx. A nil UUID counts as absent.
func WorkerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(workerIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" when ctx has no request ID.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogHandler adds request_id and worker_id from the record's context to
// every record that does not already carry them.
type LogHandler struct {
	slog.Handler
}

func NewLogHandler(h slog.Handler) *LogHandler {
	return &LogHandler{Handler: h}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	var hasRequest, hasWorker bool
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			hasRequest = true
		case "worker_id":
			hasWorker = true
		}
		return true
	})

	if id := RequestIDFromCtx(ctx); id != "" && !hasRequest {
		r.AddAttrs(slog.String("request_id", id))
	}
	if id, ok := WorkerIDFromCtx(ctx); ok && !hasWorker {
		r.AddAttrs(slog.String("worker_id", id.String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{Handler: h.Handler.WithGroup(name)}
}
