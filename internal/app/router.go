package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/laborcard-backend/internal/config"
	"github.com/heartmarshall/laborcard-backend/internal/metrics"
	authsvc "github.com/heartmarshall/laborcard-backend/internal/service/auth"
	"github.com/heartmarshall/laborcard-backend/internal/transport/dataloader"
	"github.com/heartmarshall/laborcard-backend/internal/transport/middleware"
	"github.com/heartmarshall/laborcard-backend/internal/transport/rest"
)

type handlers struct {
	health    *rest.HealthHandler
	session   *rest.SessionHandler
	reference *rest.ReferenceHandler
	workcard  *rest.WorkCardHandler
	scrap     *rest.ScrapHandler
	stats     *rest.StatsHandler
}

// newRouter registers every route and wraps the mux in the global chain.
// Metrics sits directly on the mux so it sees the matched route pattern.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	h handlers,
	tokens *authsvc.Service,
	loaderRepos *dataloader.Repos,
	limiter *middleware.RateLimiter,
	m *metrics.Metrics,
) http.Handler {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler())
	}

	// Sign-in.
	mux.Handle("POST /api/sessions",
		limiter.Limit(cfg.RateLimit.LoginPerMinute)(http.HandlerFunc(h.session.Login)))

	// Reference data and reports are readable without a kiosk session.
	mux.HandleFunc("GET /api/production-areas", h.reference.Areas)
	mux.HandleFunc("GET /api/work-types/{areaId}", h.reference.OperationTypes)
	mux.HandleFunc("GET /api/work-subtypes/{workTypeId}", h.reference.OperationSubtypes)
	mux.HandleFunc("GET /api/orders/{orderNumber}", h.reference.Order)
	mux.HandleFunc("GET /api/scrap-types", h.reference.ScrapTypes)
	mux.HandleFunc("GET /api/shift", h.reference.Shift)
	mux.HandleFunc("GET /api/scrap-entries", h.scrap.List)
	mux.HandleFunc("GET /api/scrap-entries/export", h.scrap.Export)
	mux.HandleFunc("GET /api/statistics/production", h.stats.Production)
	mux.HandleFunc("GET /api/statistics/production/export", h.stats.Export)

	// Kiosk session routes.
	worker := middleware.Chain(
		middleware.RequireWorker,
		middleware.Middleware(dataloader.Middleware(loaderRepos)),
	)
	mux.Handle("GET /api/work-cards/active", worker(http.HandlerFunc(h.workcard.Active)))
	mux.Handle("GET /api/work-cards", worker(http.HandlerFunc(h.workcard.History)))
	mux.Handle("POST /api/work-cards", worker(http.HandlerFunc(h.workcard.Start)))
	mux.Handle("PUT /api/work-cards/{cardId}", worker(http.HandlerFunc(h.workcard.Update)))
	mux.Handle("PATCH /api/work-cards/{cardId}/finish", worker(http.HandlerFunc(h.workcard.Finish)))
	mux.Handle("POST /api/scrap-entries", worker(http.HandlerFunc(h.scrap.Record)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens, logger),
		middleware.Unless(middleware.PathIn("/live", "/ready"), middleware.Logger(logger)),
		middleware.Timeout(cfg.Server.RequestTimeout),
		middleware.Metrics(m),
	)(mux)
}
