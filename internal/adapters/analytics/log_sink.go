package analytics

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/platform/logging"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

var _ ports.AnalyticsSink = (*LogSink)(nil)

// LogSink writes each event as a structured log line. It prefers the
// request-scoped logger from the context so request and correlation IDs are
// attached.
type LogSink struct {
	fallback *slog.Logger
}

// NewLogSink creates a LogSink. fallback is used when the context carries
// no logger; nil selects slog.Default().
func NewLogSink(fallback *slog.Logger) *LogSink {
	return &LogSink{fallback: fallback}
}

// Name implements ports.AnalyticsSink.
func (s *LogSink) Name() string {
	return "log"
}

// Record implements ports.AnalyticsSink. It never fails.
func (s *LogSink) Record(ctx context.Context, event registration.Event) error {
	logging.FromContextOr(ctx, s.fallback).InfoContext(ctx, "analytics event",
		slog.String("event", event.Name.String()),
		slog.String("registration_id", event.FlowID),
		slog.String("screen", event.Screen.String()),
		slog.Time("occurred_at", event.At),
	)
	return nil
}
