package mock

import (
	"encoding/json"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Ensure FallbackTable implements meshmcp.FallbackTable.
var _ meshmcp.FallbackTable = (*FallbackTable)(nil)

// FallbackTable is a mock implementation of meshmcp.FallbackTable.
type FallbackTable struct {
	LookupFn  func(key meshmcp.CacheKey) (json.RawMessage, bool)
	VersionFn func() string
}

func (t *FallbackTable) Lookup(key meshmcp.CacheKey) (json.RawMessage, bool) {
	return t.LookupFn(key)
}

func (t *FallbackTable) Version() string {
	if t.VersionFn == nil {
		return "mock"
	}
	return t.VersionFn()
}
