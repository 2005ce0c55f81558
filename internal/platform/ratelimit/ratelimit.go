// Package ratelimit provides per-client request rate limiting for the
// HTTP layer. Each client key (by default the remote IP) gets its own
// token bucket sized from the configured permit/window pair, and idle
// buckets are reclaimed by a background janitor. An optional
// StatsRecorder observes every decision for operational visibility.
package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyFunc derives the limiter key for a request.
type KeyFunc func(r *http.Request) string

// LimiterStore hands out one rate.Limiter per key, creating limiters on
// first use and dropping entries not seen for idleTTL.
type LimiterStore struct {
	mu      sync.Mutex
	entries map[string]*storeEntry

	limit        rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
}

type storeEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewLimiterStore builds a store where each key may make permitLimit
// requests per window, with bursts capped at permitLimit. This mirrors
// a fixed-window limiter configured as permit/window.
func NewLimiterStore(permitLimit int, window time.Duration) *LimiterStore {
	if permitLimit < 1 {
		permitLimit = 1
	}
	if window <= 0 {
		window = time.Second
	}
	return &LimiterStore{
		entries:      make(map[string]*storeEntry),
		limit:        rate.Limit(float64(permitLimit) / window.Seconds()),
		burst:        permitLimit,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
	}
}

// Get returns the limiter for key, creating it if needed.
func (s *LimiterStore) Get(key string) *rate.Limiter {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(s.limit, s.burst)
	s.entries[key] = &storeEntry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup drops entries idle for longer than the store's TTL.
func (s *LimiterStore) Cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor periodically reclaims idle entries until ctx is done.
func (s *LimiterStore) StartJanitor(ctx context.Context) {
	t := time.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

// ClientIPKey keys requests by client IP: the RemoteAddr host, which
// the RealIP middleware has already resolved from X-Forwarded-For when
// the proxy headers are present.
func ClientIPKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// Options configures the rate limit middleware.
type Options struct {
	Store *LimiterStore
	Stats StatsRecorder // optional
	KeyFn KeyFunc       // defaults to ClientIPKey

	// RetryAfter is advertised to rejected clients.
	RetryAfter time.Duration
}

// Middleware rejects requests that exceed the per-key budget with a
// 429 and a Retry-After header.
func Middleware(opts Options) func(http.Handler) http.Handler {
	if opts.KeyFn == nil {
		opts.KeyFn = ClientIPKey
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = time.Second
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			allowed := opts.Store.Get(key).Allow()

			if opts.Stats != nil {
				_ = opts.Stats.Record(r.Context(), Event{
					Key:     key,
					Allowed: allowed,
					Method:  r.Method,
					Path:    r.URL.Path,
					At:      time.Now(),
				})
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(opts.RetryAfter.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Too many requests"}` + "\n"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
