package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/JaimeStill/storefront/pkg/handlers"
)

// ErrRateLimited is the body of 429 responses.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	TrustProxy        bool    `toml:"trust_proxy"`
	IdleTTL           string  `toml:"idle_ttl"`
}

// RateLimitEnv maps environment variable names for rate limit configuration.
type RateLimitEnv struct {
	Enabled           string
	RequestsPerSecond string
	Burst             string
}

// IdleTTLDuration returns how long an idle client's limiter is retained.
func (c *RateLimitConfig) IdleTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies overlay values. Enabled and TrustProxy always take the overlay value.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	c.Enabled = overlay.Enabled
	c.TrustProxy = overlay.TrustProxy
	if overlay.RequestsPerSecond != 0 {
		c.RequestsPerSecond = overlay.RequestsPerSecond
	}
	if overlay.Burst != 0 {
		c.Burst = overlay.Burst
	}
	if overlay.IdleTTL != "" {
		c.IdleTTL = overlay.IdleTTL
	}
}

func (c *RateLimitConfig) loadDefaults() {
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = 10
	}
	if c.Burst == 0 {
		c.Burst = 20
	}
	if c.IdleTTL == "" {
		c.IdleTTL = "5m"
	}
}

func (c *RateLimitConfig) loadEnv(env *RateLimitEnv) {
	if v := lookup(env.Enabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := lookup(env.RequestsPerSecond); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			c.RequestsPerSecond = rps
		}
	}
	if v := lookup(env.Burst); v != "" {
		if burst, err := strconv.Atoi(v); err == nil {
			c.Burst = burst
		}
	}
}

func (c *RateLimitConfig) validate() error {
	if c.RequestsPerSecond <= 0 || math.IsNaN(c.RequestsPerSecond) {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1")
	}
	if _, err := time.ParseDuration(c.IdleTTL); err != nil {
		return fmt.Errorf("invalid idle_ttl: %w", err)
	}
	return nil
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter tracks one token bucket per client address.
type Limiter struct {
	cfg     RateLimitConfig
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	clients map[string]*client
	swept   time.Time
}

// NewLimiter creates a Limiter from cfg. cfg should already be finalized.
func NewLimiter(cfg RateLimitConfig) *Limiter {
	return &Limiter{
		cfg:     cfg,
		ttl:     cfg.IdleTTLDuration(),
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

// WithClock replaces the time source. Used by tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Allow reports whether a request from key may proceed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Clients returns the number of tracked clients.
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops idle clients at most once per ttl. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if l.ttl <= 0 || now.Sub(l.swept) < l.ttl {
		return
	}
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.ttl {
			delete(l.clients, key)
		}
	}
	l.swept = now
}

// RateLimit rejects requests over the per-client rate with 429.
func RateLimit(l *Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !l.cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientIP(r, l.cfg.TrustProxy)) {
				w.Header().Set("Retry-After", "1")
				handlers.RespondError(w, logger, http.StatusTooManyRequests, ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
