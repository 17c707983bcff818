package slog

import (
	"context"
	"log/slog"
	"time"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Ensure LoggingStore implements meshmcp.CacheStore.
var _ meshmcp.CacheStore = (*LoggingStore)(nil)

// LoggingStore wraps a CacheStore with debug logging on reads and writes.
type LoggingStore struct {
	next   meshmcp.CacheStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next meshmcp.CacheStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Read delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) Read(ctx context.Context, key meshmcp.CacheKey) (entry *meshmcp.CacheEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache read",
			"key", key.String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, key)
}

// Write delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) Write(ctx context.Context, entry *meshmcp.CacheEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache write",
			"key", entry.Key.String(),
			"source", string(entry.Source),
			"bytes", len(entry.Value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, entry)
}

// Delete delegates to the wrapped store.
func (s *LoggingStore) Delete(ctx context.Context, key meshmcp.CacheKey) error {
	return s.next.Delete(ctx, key)
}

// ListExpired delegates to the wrapped store.
func (s *LoggingStore) ListExpired(ctx context.Context, now time.Time) ([]meshmcp.CacheKey, error) {
	return s.next.ListExpired(ctx, now)
}

// Stats delegates to the wrapped store.
func (s *LoggingStore) Stats(ctx context.Context, now time.Time) (meshmcp.CacheStats, error) {
	return s.next.Stats(ctx, now)
}

// Clear delegates to the wrapped store.
func (s *LoggingStore) Clear(ctx context.Context) error {
	return s.next.Clear(ctx)
}
