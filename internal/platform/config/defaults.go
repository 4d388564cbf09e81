package config

const (
	defaultServerPort     = 8080
	defaultMaxUploadBytes = 5 << 20

	defaultMaxSessions  = 10000
	defaultPasswordCost = 10

	defaultAnalyticsWorkers = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.max_upload_bytes": defaultMaxUploadBytes,

		"log.level":  "info",
		"log.format": "json",

		"flow.submit_delay":   "1s",
		"flow.celebration":    "3s",
		"flow.session_ttl":    "30m",
		"flow.sweep_interval": "1m",
		"flow.max_sessions":   defaultMaxSessions,
		"flow.password_cost":  defaultPasswordCost,

		"analytics.collector_enabled": false,
		"analytics.collector_path":    "/v1/events",
		"analytics.max_workers":       defaultAnalyticsWorkers,

		"analytics.client.base_url":                        "http://localhost:4319",
		"analytics.client.timeout":                         "5s",
		"analytics.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"analytics.client.retry.initial_interval":          "100ms",
		"analytics.client.retry.max_interval":              "2s",
		"analytics.client.retry.multiplier":                defaultRetryMultiplier,
		"analytics.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"analytics.client.circuit_breaker.timeout":         "30s",
		"analytics.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"analytics.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"analytics.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "registration-flow",
	}
}
