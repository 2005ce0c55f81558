// Package config loads and validates the application configuration
// from environment variables, with sensible defaults for local runs.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit" validate:"required"`
	Cache     CacheConfig     `mapstructure:"cache" validate:"required"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// RateLimitConfig describes the per-client request budget applied to
// the /api/users group: PermitLimit requests per WindowSeconds.
type RateLimitConfig struct {
	PermitLimit   int `mapstructure:"permit_limit" validate:"required,gte=1"`
	WindowSeconds int `mapstructure:"window_seconds" validate:"required,gte=1"`
}

// CacheConfig holds the output-cache TTLs per policy, in seconds.
type CacheConfig struct {
	UsersTTLSeconds int `mapstructure:"users_ttl_seconds" validate:"required,gte=1"`
	TasksTTLSeconds int `mapstructure:"tasks_ttl_seconds" validate:"required,gte=1"`
}

// RedisConfig is optional; when URL is set, rate-limit statistics are
// recorded to Redis instead of process memory.
type RedisConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,uri"`
}
