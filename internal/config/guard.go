package config

import (
	"fmt"
	"time"
)

// GuardConfig holds rate guard configuration for public write endpoints.
type GuardConfig struct {
	// Window is the sliding window duration.
	Window time.Duration
	// MaxAttempts is the maximum number of attempts per client key per window.
	MaxAttempts int
	// MinInterval is the minimum spacing between two attempts from the same key.
	MinInterval time.Duration
	// Backend selects the limiter store (memory, redis).
	Backend string
	// RedisAddr is the redis address, used when Backend is redis.
	RedisAddr string
	// RedisPassword is the redis password, used when Backend is redis.
	RedisPassword string
}

// LoadGuardConfigFromEnv loads rate guard configuration from environment variables.
func LoadGuardConfigFromEnv() GuardConfig {
	return GuardConfig{
		Window:        GetEnvDuration("RATE_LIMIT_WINDOW", time.Hour),
		MaxAttempts:   GetEnvInt("RATE_LIMIT_MAX_ATTEMPTS", 5),
		MinInterval:   GetEnvDuration("RATE_LIMIT_MIN_INTERVAL", time.Minute),
		Backend:       GetEnv("RATE_LIMIT_BACKEND", "memory"),
		RedisAddr:     GetEnv("RATE_LIMIT_REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnv("RATE_LIMIT_REDIS_PASSWORD", ""),
	}
}

// Validate validates rate guard configuration.
func (c GuardConfig) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("Window must be greater than 0")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MaxAttempts must be greater than 0")
	}
	if c.MinInterval < 0 {
		return fmt.Errorf("MinInterval must be non-negative")
	}
	validBackends := map[string]bool{
		"memory": true,
		"redis":  true,
	}
	if !validBackends[c.Backend] {
		return fmt.Errorf("invalid RATE_LIMIT_BACKEND: %s (must be: memory, redis)", c.Backend)
	}
	return nil
}
