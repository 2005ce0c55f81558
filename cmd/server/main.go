// Package main implements the entry point for the taskboard API
// server: an in-memory users/tasks service with validation, rate
// limiting, output caching, and Prometheus metrics.
package main

import (
	"context"
	"log"
	"os"

	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server.LogLevel)
	logg.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_permit", cfg.RateLimit.PermitLimit,
		"rate_limit_window_seconds", cfg.RateLimit.WindowSeconds,
		"redis_stats", cfg.Redis.URL != "")

	app, err := newApplication(cfg, logg)
	if err != nil {
		logg.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.run(context.Background()); err != nil {
		logg.Error("server terminated unexpectedly", "error", err)
		os.Exit(1)
	}
}
