package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables on top of the
// built-in defaults, then validates the result. Settings map to
// TASKBOARD_-prefixed variables (e.g. TASKBOARD_SERVER_LOG_LEVEL); the
// server port additionally honors the plain PORT variable, which takes
// precedence in container platforms that inject it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("ratelimit.permit_limit", 1)
	v.SetDefault("ratelimit.window_seconds", 1)
	v.SetDefault("cache.users_ttl_seconds", 3)
	v.SetDefault("cache.tasks_ttl_seconds", 3)
	v.SetDefault("redis.url", "")

	v.SetEnvPrefix("TASKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "PORT", "TASKBOARD_SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
