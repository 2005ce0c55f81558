package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/platform/cache"
	"github.com/taskboard/taskboard-api/internal/platform/metrics"
	"github.com/taskboard/taskboard-api/internal/platform/ratelimit"
	"github.com/taskboard/taskboard-api/internal/store"
)

// application holds the process-wide dependencies. The store is
// constructed exactly once here and handed to handlers by reference;
// nothing else owns mutable state.
type application struct {
	config *config.Config
	logger *slog.Logger
	store  *store.Store

	limiterStore *ratelimit.LimiterStore
	limiterStats ratelimit.StatsRecorder
	usersCache   *cache.Policy
	tasksCache   *cache.Policy
	metrics      *metrics.Metrics
}

// newApplication wires all dependencies from configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		store:  store.NewSeeded(),
	}

	app.limiterStore = ratelimit.NewLimiterStore(
		cfg.RateLimit.PermitLimit,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		app.limiterStats = ratelimit.NewRedisStats(redis.NewClient(opts))
	} else {
		app.limiterStats = ratelimit.NewMemoryStats()
	}

	app.usersCache = cache.NewPolicy("users", time.Duration(cfg.Cache.UsersTTLSeconds)*time.Second)
	app.tasksCache = cache.NewPolicy("tasks", time.Duration(cfg.Cache.TasksTTLSeconds)*time.Second)
	app.metrics = metrics.New()

	return app, nil
}
