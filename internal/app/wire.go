package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	orderrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/order"
	refrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/reference"
	scraprepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/scrap"
	statsrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/stats"
	workcardrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/workcard"
	workerrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/worker"
	authpkg "github.com/heartmarshall/laborcard-backend/internal/auth"
	"github.com/heartmarshall/laborcard-backend/internal/config"
	"github.com/heartmarshall/laborcard-backend/internal/metrics"
	authsvc "github.com/heartmarshall/laborcard-backend/internal/service/auth"
	refsvc "github.com/heartmarshall/laborcard-backend/internal/service/reference"
	reportsvc "github.com/heartmarshall/laborcard-backend/internal/service/report"
	scrapsvc "github.com/heartmarshall/laborcard-backend/internal/service/scrap"
	workcardsvc "github.com/heartmarshall/laborcard-backend/internal/service/workcard"
	"github.com/heartmarshall/laborcard-backend/internal/transport/dataloader"
	"github.com/heartmarshall/laborcard-backend/internal/transport/middleware"
	"github.com/heartmarshall/laborcard-backend/internal/transport/rest"
)

// server is the assembled HTTP surface together with the resources it owns.
type server struct {
	handler http.Handler
	limiter *middleware.RateLimiter
}

// Close releases background resources held by the server.
func (s *server) Close() {
	s.limiter.Stop()
}

// newServer builds repositories, services, and handlers on top of pool and
// returns the routed handler.
func newServer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, m *metrics.Metrics) *server {
	loc := cfg.Plant.Location
	txm := postgres.NewTxManager(pool)

	// Repositories.
	workers := workerrepo.New(pool)
	refs := refrepo.New(pool)
	orders := orderrepo.New(pool)
	cards := workcardrepo.New(pool)
	entries := scraprepo.New(pool)
	stats := statsrepo.New(pool)

	// Services.
	sessions := authpkg.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL)
	authService := authsvc.NewService(logger, workers, sessions)
	refService := refsvc.NewService(logger, loc, refs, orders)
	cardService := workcardsvc.NewService(logger, loc, cards, refs, orders, workers, txm, m)
	scrapService := scrapsvc.NewService(logger, loc, entries, refs, cards, m)
	reportService := reportsvc.NewService(logger, loc, stats, scrapService)

	h := handlers{
		health: rest.NewHealthHandler(BuildVersion(), rest.Check{
			Name: "database",
			Ping: pool.Ping,
		}),
		session:   rest.NewSessionHandler(authService, logger),
		reference: rest.NewReferenceHandler(refService, logger),
		workcard:  rest.NewWorkCardHandler(cardService, refService, logger),
		scrap:     rest.NewScrapHandler(scrapService, reportService, logger),
		stats:     rest.NewStatsHandler(reportService, logger),
	}

	loaderRepos := &dataloader.Repos{
		Reference: refs,
		Worker:    workers,
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	return &server{
		handler: newRouter(cfg, logger, h, authService, loaderRepos, limiter, m),
		limiter: limiter,
	}
}
