package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Flow.validate(),
		c.Analytics.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_upload_bytes must be positive, got %d", s.MaxUploadBytes))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (f *FlowConfig) validate() error {
	var errs []error

	if f.SubmitDelay < 0 {
		errs = append(errs, errors.New("flow.submit_delay must not be negative"))
	}
	if f.Celebration <= 0 {
		errs = append(errs, errors.New("flow.celebration must be positive"))
	}
	if f.SessionTTL <= 0 {
		errs = append(errs, errors.New("flow.session_ttl must be positive"))
	}
	if f.SweepInterval <= 0 {
		errs = append(errs, errors.New("flow.sweep_interval must be positive"))
	}
	if f.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("flow.max_sessions must be >= 0, got %d", f.MaxSessions))
	}
	if f.PasswordCost < bcrypt.MinCost || f.PasswordCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("flow.password_cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, f.PasswordCost))
	}

	return errors.Join(errs...)
}

func (a *AnalyticsConfig) validate() error {
	var errs []error

	if a.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("analytics.max_workers must be >= 1, got %d", a.MaxWorkers))
	}
	if !a.CollectorEnabled {
		return errors.Join(errs...)
	}

	if !strings.HasPrefix(a.CollectorPath, "/") {
		errs = append(errs, fmt.Errorf("analytics.collector_path must start with /, got %q", a.CollectorPath))
	}
	errs = append(errs, a.Client.validate("analytics.client"))

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			prefix, cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
