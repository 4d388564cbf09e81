package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
)

// FlowStore holds registration flows for the lifetime of the process.
// Implementations must make Update atomic with respect to other calls for
// the same ID.
type FlowStore interface {
	// Create stores a new flow. Returns domain.ErrConflict if the ID exists.
	Create(ctx context.Context, flow *registration.Flow) error

	// Get returns a copy of the flow.
	// Returns domain.ErrNotFound if the flow does not exist.
	Get(ctx context.Context, id string) (*registration.Flow, error)

	// Update applies fn to the stored flow and persists the result only if
	// fn returns nil. The returned flow is a copy of the stored state.
	// Returns domain.ErrNotFound if the flow does not exist.
	Update(ctx context.Context, id string, fn func(*registration.Flow) error) (*registration.Flow, error)

	// Sweep removes flows not updated since before cutoff and returns how
	// many were removed.
	Sweep(ctx context.Context, cutoff time.Time) int
}
