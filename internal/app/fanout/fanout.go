// Package fanout runs one function across a slice of items with bounded
// concurrency, keeping results in input order. The tracker uses it to
// deliver each analytics event to every sink at once.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines and
// returns one Result per item, in input order. A failing item never stops
// the others.
//
// Items that have not started when ctx is canceled record ctx.Err() without
// calling fn. Items already running are expected to watch ctx themselves.
//
// A maxWorkers below 1 runs every item concurrently.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	if maxWorkers >= 1 {
		g.SetLimit(maxWorkers)
	}

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
