package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleAfter is how long a host may stay quiet before its limiter is dropped.
const idleAfter = 10 * time.Minute

// RateLimiter throttles requests per client host. Each Limit call keeps its
// own table, so two routes with different budgets never share a limiter.
// Kiosks are keyed by host so a reconnect from a new port hits the same one.
type RateLimiter struct {
	mu     sync.Mutex
	tables []*hostTable
	stop   chan struct{}
	once   sync.Once
}

type hostTable struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	clients map[string]*hostLimit
}

type hostLimit struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewRateLimiter starts a janitor that sweeps idle hosts every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.sweepLoop(cleanupInterval)
	return rl
}

// Stop ends the janitor. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per host, with bursts up to perMinute.
// Rejected requests get 429 and a Retry-After in whole seconds.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	t := &hostTable{
		every:   rate.Limit(float64(perMinute) / 60),
		burst:   perMinute,
		clients: make(map[string]*hostLimit),
	}
	rl.mu.Lock()
	rl.tables = append(rl.tables, t)
	rl.mu.Unlock()

	retryAfter := strconv.Itoa(int(time.Minute/time.Second)/max(perMinute, 1) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !t.allow(clientHost(r), time.Now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (t *hostTable) allow(host string, now time.Time) bool {
	t.mu.Lock()
	c, ok := t.clients[host]
	if !ok {
		c = &hostLimit{lim: rate.NewLimiter(t.every, t.burst)}
		t.clients[host] = c
	}
	c.seen = now
	t.mu.Unlock()

	return c.lim.AllowN(now, 1)
}

func (t *hostTable) sweep(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for host, c := range t.clients {
		if now.Sub(c.seen) > idleAfter {
			delete(t.clients, host)
		}
	}
}

func (t *hostTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.clients)
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	tables := append([]*hostTable(nil), rl.tables...)
	rl.mu.Unlock()
	for _, t := range tables {
		t.sweep(now)
	}
}

func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
