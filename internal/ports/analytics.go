package ports

import (
	"context"

	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
)

// AnalyticsSink receives analytics markers emitted by the registration flow.
// A sink failure never fails the registration operation that emitted it.
type AnalyticsSink interface {
	// Name identifies the sink in logs (e.g. "log", "metrics", "collector").
	Name() string

	// Record delivers one event.
	Record(ctx context.Context, event registration.Event) error
}
