package analytics

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/platform/telemetry"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

var _ ports.AnalyticsSink = (*MetricsSink)(nil)

// MetricsSink counts events on the registration.events.total instrument,
// labelled by event name and screen.
type MetricsSink struct {
	metrics *telemetry.Metrics
}

// NewMetricsSink creates a MetricsSink over pre-registered instruments.
func NewMetricsSink(metrics *telemetry.Metrics) *MetricsSink {
	return &MetricsSink{metrics: metrics}
}

// Name implements ports.AnalyticsSink.
func (s *MetricsSink) Name() string {
	return "metrics"
}

// Record implements ports.AnalyticsSink.
func (s *MetricsSink) Record(ctx context.Context, event registration.Event) error {
	if s.metrics == nil || s.metrics.RegistrationEventsTotal == nil {
		return errors.New("metrics sink: instruments not initialized")
	}

	s.metrics.RegistrationEventsTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEvent.String(event.Name.String()),
		telemetry.AttrScreen.String(event.Screen.String()),
	))
	return nil
}
