package pipeline

import (
	"context"
	"log/slog"
	"time"

	meshmcp "github.com/lukeylias/MeshMCP"
	"golang.org/x/sync/errgroup"
)

// DefaultSweepConcurrency bounds how many background refreshes a sweep runs
// at once.
const DefaultSweepConcurrency = 4

// Invalidator supports explicit refresh-now requests and a periodic sweep
// of expired entries. Both route through the Coordinator so refreshes also
// benefit from single-flight coalescing. The sweep never deletes an entry
// for being expired; it only attempts to replace it.
type Invalidator struct {
	Coordinator *Coordinator
	Store       meshmcp.CacheStore

	// SweepConcurrency bounds concurrent background refreshes. Zero means
	// DefaultSweepConcurrency.
	SweepConcurrency int

	// Logger records sweep outcomes. Optional.
	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Refresh forces a re-extraction for a key, joining any extraction already
// in flight.
func (i *Invalidator) Refresh(ctx context.Context, key meshmcp.CacheKey) (*Result, error) {
	return i.Coordinator.Get(ctx, key, true)
}

// Sweep finds entries eligible for refresh and re-extracts them in the
// background. It is a best-effort warm-up: failures are logged, never
// surfaced, and no caller of Get ever blocks on it. Sweep returns once all
// scheduled refreshes have settled, with the number of keys attempted.
func (i *Invalidator) Sweep(ctx context.Context) int {
	now := i.now()
	keys, err := i.Store.ListExpired(ctx, now)
	if err != nil {
		i.logger().Warn("sweep: failed to list expired entries", "err", err)
		return 0
	}
	if len(keys) == 0 {
		return 0
	}

	concurrency := i.SweepConcurrency
	if concurrency <= 0 {
		concurrency = DefaultSweepConcurrency
	}

	g := &errgroup.Group{}
	g.SetLimit(concurrency)
	for _, key := range keys {
		g.Go(func() error {
			if _, err := i.Refresh(ctx, key); err != nil {
				i.logger().Warn("sweep: background refresh failed",
					"key", key.String(),
					"err", err,
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return len(keys)
}

// Run sweeps at the given interval until the context is canceled.
func (i *Invalidator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := i.Sweep(ctx)
			if n > 0 {
				i.logger().Info("sweep completed", "refreshed", n)
			}
		}
	}
}

func (i *Invalidator) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

func (i *Invalidator) logger() *slog.Logger {
	if i.Logger != nil {
		return i.Logger
	}
	return slog.Default()
}
