package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/platform/httpclient"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

// CollectorServiceName identifies the collector in traces, metrics and
// readiness results.
const CollectorServiceName = "analytics-collector"

// Compile-time interface checks.
var (
	_ ports.AnalyticsSink = (*CollectorSink)(nil)
	_ ports.HealthChecker = (*CollectorSink)(nil)
)

// eventPayload is the collector's wire format for a single event.
type eventPayload struct {
	Event          string    `json:"event"`
	RegistrationID string    `json:"registration_id"`
	Screen         string    `json:"screen"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func toPayload(e registration.Event) eventPayload {
	return eventPayload{
		Event:          e.Name.String(),
		RegistrationID: e.FlowID,
		Screen:         e.Screen.String(),
		OccurredAt:     e.At.UTC(),
	}
}

// CollectorSink forwards events to an external analytics collector through
// the instrumented [httpclient.Client], inheriting its circuit breaker, rate
// limiter and retry policy.
type CollectorSink struct {
	client *httpclient.Client
	path   string
	logger *slog.Logger
}

// NewCollectorSink creates a CollectorSink posting to client's base URL plus path.
func NewCollectorSink(client *httpclient.Client, path string, logger *slog.Logger) *CollectorSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CollectorSink{client: client, path: path, logger: logger}
}

// Name implements ports.AnalyticsSink and ports.HealthChecker.
func (s *CollectorSink) Name() string {
	return CollectorServiceName
}

// HealthCheck reports the collector's availability from the client's
// circuit breaker; no network call is made.
func (s *CollectorSink) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// Record posts event to the collector. Any 2xx response is success.
func (s *CollectorSink) Record(ctx context.Context, event registration.Event) error {
	resp, err := s.client.PostJSON(ctx, s.path, toPayload(event))
	if resp != nil {
		defer s.closeBody(ctx, resp)
	}
	if err != nil {
		// PostJSON returns both resp and err when retries are exhausted on a
		// retryable status; translate the response in that case.
		if resp != nil && !isSuccess(resp.StatusCode) {
			return TranslateHTTPError(resp)
		}
		return fmt.Errorf("POST %s %s: %w", s.path, event.Name, err)
	}

	if !isSuccess(resp.StatusCode) {
		s.logger.DebugContext(ctx, "collector rejected event",
			slog.String("event", event.Name.String()),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}
	return nil
}

func (s *CollectorSink) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
