package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event describes one rate-limit decision.
type Event struct {
	Key     string
	Allowed bool
	Method  string
	Path    string
	At      time.Time
}

// StatsRecorder observes rate-limit decisions. Recording failures must
// never block or fail the request path; callers discard the error.
type StatsRecorder interface {
	Record(ctx context.Context, ev Event) error
}

// MemoryStats counts allowed and denied decisions in process memory.
type MemoryStats struct {
	mu      sync.Mutex
	allowed int64
	denied  int64
}

// NewMemoryStats returns an empty in-process recorder.
func NewMemoryStats() *MemoryStats {
	return &MemoryStats{}
}

// Record implements StatsRecorder.
func (s *MemoryStats) Record(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.Allowed {
		s.allowed++
	} else {
		s.denied++
	}
	return nil
}

// Counts returns the allowed and denied totals recorded so far.
func (s *MemoryStats) Counts() (allowed, denied int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allowed, s.denied
}

// RedisStats records decisions into Redis hashes so counts survive
// restarts and aggregate across instances. Totals are cumulative;
// per-minute buckets expire after the configured TTL.
type RedisStats struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStats returns a recorder writing under "ratelimit:stats".
func NewRedisStats(rdb *redis.Client) *RedisStats {
	return &RedisStats{
		rdb:    rdb,
		prefix: "ratelimit:stats",
		ttl:    24 * time.Hour,
	}
}

// Record implements StatsRecorder with one pipelined round trip.
func (s *RedisStats) Record(ctx context.Context, ev Event) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	field := "denied"
	if ev.Allowed {
		field = "allowed"
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":total", field, 1)

	bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
	pipe.HIncrBy(ctx, bucketKey, field, 1)
	if s.ttl > 0 {
		pipe.Expire(ctx, bucketKey, s.ttl)
	}

	if ev.Method != "" && ev.Path != "" {
		pipe.HIncrBy(ctx, s.prefix+":route", ev.Method+" "+ev.Path+":"+field, 1)
	}

	_, err := pipe.Exec(ctx)
	return err
}
