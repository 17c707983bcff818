package mock

import (
	"context"
	"encoding/json"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Ensure Extractor implements meshmcp.Extractor.
var _ meshmcp.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of meshmcp.Extractor.
type Extractor struct {
	FetchFn func(ctx context.Context, key meshmcp.CacheKey) (json.RawMessage, error)
	CloseFn func() error
}

func (e *Extractor) Fetch(ctx context.Context, key meshmcp.CacheKey) (json.RawMessage, error) {
	return e.FetchFn(ctx, key)
}

func (e *Extractor) Close() error {
	if e.CloseFn == nil {
		return nil
	}
	return e.CloseFn()
}
