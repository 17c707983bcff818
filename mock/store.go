// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import (
	"context"
	"time"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Ensure CacheStore implements meshmcp.CacheStore.
var _ meshmcp.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of meshmcp.CacheStore.
type CacheStore struct {
	ReadFn        func(ctx context.Context, key meshmcp.CacheKey) (*meshmcp.CacheEntry, error)
	WriteFn       func(ctx context.Context, entry *meshmcp.CacheEntry) error
	DeleteFn      func(ctx context.Context, key meshmcp.CacheKey) error
	ListExpiredFn func(ctx context.Context, now time.Time) ([]meshmcp.CacheKey, error)
	StatsFn       func(ctx context.Context, now time.Time) (meshmcp.CacheStats, error)
	ClearFn       func(ctx context.Context) error
}

func (s *CacheStore) Read(ctx context.Context, key meshmcp.CacheKey) (*meshmcp.CacheEntry, error) {
	return s.ReadFn(ctx, key)
}

func (s *CacheStore) Write(ctx context.Context, entry *meshmcp.CacheEntry) error {
	return s.WriteFn(ctx, entry)
}

func (s *CacheStore) Delete(ctx context.Context, key meshmcp.CacheKey) error {
	return s.DeleteFn(ctx, key)
}

func (s *CacheStore) ListExpired(ctx context.Context, now time.Time) ([]meshmcp.CacheKey, error) {
	return s.ListExpiredFn(ctx, now)
}

func (s *CacheStore) Stats(ctx context.Context, now time.Time) (meshmcp.CacheStats, error) {
	return s.StatsFn(ctx, now)
}

func (s *CacheStore) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
