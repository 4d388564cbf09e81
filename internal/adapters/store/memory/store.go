// Package memory provides the in-process implementation of
// [ports.FlowStore]. Flows live only as long as the process; idle flows are
// removed by a background sweeper.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/registration-flow/internal/domain"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.FlowStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is a mutex-guarded map of flows. Every read returns a deep copy so
// callers never share state with the store.
type Store struct {
	mu       sync.Mutex
	flows    map[string]*registration.Flow
	capacity int
}

// New creates an empty store. A capacity of zero means unlimited.
func New(capacity int) *Store {
	return &Store{
		flows:    make(map[string]*registration.Flow),
		capacity: capacity,
	}
}

// Create stores a copy of flow.
func (s *Store) Create(_ context.Context, flow *registration.Flow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.flows[flow.ID]; ok {
		return fmt.Errorf("registration %s: %w", flow.ID, domain.ErrConflict)
	}
	if s.capacity > 0 && len(s.flows) >= s.capacity {
		return fmt.Errorf("flow store full (%d flows): %w", s.capacity, domain.ErrUnavailable)
	}
	s.flows[flow.ID] = flow.Clone()
	return nil
}

// Get returns a copy of the flow with the given ID.
func (s *Store) Get(_ context.Context, id string) (*registration.Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[id]
	if !ok {
		return nil, notFound(id)
	}
	return f.Clone(), nil
}

// Update runs fn against a working copy of the flow while holding the store
// lock. The copy replaces the stored flow only when fn returns nil.
func (s *Store) Update(
	_ context.Context,
	id string,
	fn func(*registration.Flow) error,
) (*registration.Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[id]
	if !ok {
		return nil, notFound(id)
	}

	working := f.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	s.flows[id] = working
	return working.Clone(), nil
}

// Sweep deletes every flow whose last update is before cutoff.
func (s *Store) Sweep(_ context.Context, cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, f := range s.flows {
		if f.UpdatedAt.Before(cutoff) {
			delete(s.flows, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored flows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.flows)
}

// Name returns the identifier used in readiness results.
func (s *Store) Name() string {
	return "flow-store"
}

// HealthCheck fails only when a capacity is configured and reached; new
// registrations would be rejected in that state.
func (s *Store) HealthCheck(_ context.Context) error {
	n := s.Len()
	if s.capacity > 0 && n >= s.capacity {
		return fmt.Errorf("flow-store: at capacity (%d/%d flows)", n, s.capacity)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("registration %s: %w", id, domain.ErrNotFound)
}

// Sweeper periodically removes idle flows from a [ports.FlowStore].
type Sweeper struct {
	store    ports.FlowStore
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewSweeper creates a Sweeper that deletes flows idle for longer than ttl,
// checking every interval.
func NewSweeper(store ports.FlowStore, ttl, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sweeper{
		store:    store,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run blocks, sweeping on every tick, until ctx is cancelled.
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.SweepOnce(ctx)
		}
	}
}

// SweepOnce performs a single sweep and returns the number of removed flows.
func (w *Sweeper) SweepOnce(ctx context.Context) int {
	removed := w.store.Sweep(ctx, w.now().Add(-w.ttl))
	if removed > 0 {
		w.logger.InfoContext(ctx, "expired registrations removed",
			slog.Int("removed", removed),
			slog.Duration("ttl", w.ttl),
		)
	}
	return removed
}
