package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

const namespace = "laborcard"

// Outcome labels for transitions.
const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation"
	OutcomeNotFound   = "not_found"
	OutcomeState      = "invalid_state"
	OutcomeConflict   = "conflict"
	OutcomeTransport  = "transport"
	OutcomeError      = "error"
)

// Metrics owns the service's collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	transitions   *prometheus.CounterVec
	scrapEntries  *prometheus.CounterVec
	scrapQuantity *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workcard_transitions_total",
			Help:      "Work card lifecycle transitions by outcome.",
		}, []string{"transition", "outcome"}),
		scrapEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scrap_entries_total",
			Help:      "Recorded scrap entries by scrap type.",
		}, []string{"scrap_type"}),
		scrapQuantity: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scrap_parts_total",
			Help:      "Scrapped parts by scrap type.",
		}, []string{"scrap_type"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transitions,
		m.scrapEntries,
		m.scrapQuantity,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Registry exposes the registry for extra collectors such as pool stats.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveTransition counts one lifecycle transition.
func (m *Metrics) ObserveTransition(transition string, err error) {
	m.transitions.WithLabelValues(transition, Outcome(err)).Inc()
}

// ObserveScrap counts one recorded scrap entry.
func (m *Metrics) ObserveScrap(scrapTypeCode string, quantity int) {
	m.scrapEntries.WithLabelValues(scrapTypeCode).Inc()
	m.scrapQuantity.WithLabelValues(scrapTypeCode).Add(float64(quantity))
}

// ObserveHTTP records one served request. route is the mux pattern, not the
// raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Outcome classifies err into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrTransport):
		return OutcomeTransport
	case errors.Is(err, domain.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, domain.ErrInvalidState):
		return OutcomeState
	default:
		return OutcomeError
	}
}
