package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/laborcard-backend/pkg/ctxutil"
)

// Logger writes one "http.request" record per request. 5xx responses log at
// ERROR and 4xx at WARN, so a rejected card submission stands out from
// routine polling.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := make([]slog.Attr, 0, 8)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("client", clientHost(r)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			if workerID, ok := ctxutil.WorkerIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("worker_id", workerID.String()))
			}

			logger.LogAttrs(ctx, levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
