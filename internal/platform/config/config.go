// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Flow      FlowConfig      `koanf:"flow"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// MaxUploadBytes caps request bodies, including profile pictures.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// FlowConfig holds registration flow settings.
type FlowConfig struct {
	// SubmitDelay is the simulated latency of the account and profile submits.
	SubmitDelay time.Duration `koanf:"submit_delay"`

	// Celebration is how long a flow reports the success celebration.
	Celebration time.Duration `koanf:"celebration"`

	// SessionTTL is how long an untouched flow is kept in memory.
	SessionTTL time.Duration `koanf:"session_ttl"`

	// SweepInterval is how often expired flows are removed.
	SweepInterval time.Duration `koanf:"sweep_interval"`

	// MaxSessions caps the number of live flows. Zero means unlimited.
	MaxSessions int `koanf:"max_sessions"`

	// PasswordCost is the bcrypt cost for draft password hashes.
	PasswordCost int `koanf:"password_cost"`
}

// AnalyticsConfig holds analytics sink settings.
type AnalyticsConfig struct {
	// CollectorEnabled forwards events to an external collector over HTTP.
	CollectorEnabled bool `koanf:"collector_enabled"`

	// CollectorPath is appended to Client.BaseURL for each event.
	CollectorPath string `koanf:"collector_path"`

	// MaxWorkers bounds how many sinks receive an event concurrently.
	MaxWorkers int `koanf:"max_workers"`

	Client ClientConfig `koanf:"client"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A RequestsPerSecond of zero disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
