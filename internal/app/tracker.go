package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/registration-flow/internal/app/fanout"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

const defaultTrackerWorkers = 4

// Tracker delivers analytics events to every configured sink concurrently.
// Sink failures are logged and swallowed.
type Tracker struct {
	sinks      []ports.AnalyticsSink
	maxWorkers int
	logger     *slog.Logger
}

// NewTracker creates a Tracker over the given sinks. A maxWorkers below 1
// falls back to a small default.
func NewTracker(sinks []ports.AnalyticsSink, maxWorkers int, logger *slog.Logger) *Tracker {
	if maxWorkers < 1 {
		maxWorkers = defaultTrackerWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{
		sinks:      sinks,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// Emit records event on every sink and waits for all of them.
func (t *Tracker) Emit(ctx context.Context, event registration.Event) {
	if t == nil || len(t.sinks) == 0 {
		return
	}

	results := fanout.Run(ctx, t.maxWorkers, t.sinks,
		func(ctx context.Context, sink ports.AnalyticsSink) (struct{}, error) {
			return struct{}{}, sink.Record(ctx, event)
		},
	)

	for i, r := range results {
		if r.Err != nil {
			t.logger.WarnContext(ctx, "analytics sink failed",
				slog.String("operation", "Tracker.Emit"),
				slog.String("sink", t.sinks[i].Name()),
				slog.String("event", event.Name.String()),
				slog.String("registration_id", event.FlowID),
				slog.Any("error", r.Err),
			)
		}
	}
}
