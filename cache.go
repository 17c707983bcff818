package meshmcp

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Namespace identifies a cache data family. Each namespace has an
// independently configured default TTL.
type Namespace string

// Cache namespaces, one per data family.
const (
	NamespaceComponentList   Namespace = "component-list"
	NamespaceComponentDetail Namespace = "component-detail"
	NamespaceDesignTokens    Namespace = "design-tokens"
)

// IdentifierAll is the sentinel identifier for "everything in this
// namespace" (the full component list, the full token set).
const IdentifierAll = "all"

// KnownNamespace reports whether ns is one of the three cache namespaces.
func KnownNamespace(ns Namespace) bool {
	switch ns {
	case NamespaceComponentList, NamespaceComponentDetail, NamespaceDesignTokens:
		return true
	}
	return false
}

// CacheKey identifies a cache slot. Identifiers are case-normalized and
// whitespace-trimmed, so keys that are equal after normalization share a slot.
type CacheKey struct {
	Namespace  Namespace `json:"namespace"`
	Identifier string    `json:"identifier"`
}

// NewCacheKey returns a normalized CacheKey for the given namespace and
// identifier.
func NewCacheKey(ns Namespace, identifier string) CacheKey {
	return CacheKey{
		Namespace:  ns,
		Identifier: strings.ToLower(strings.TrimSpace(identifier)),
	}
}

// Validate returns an error if the key cannot address a cache slot.
func (k CacheKey) Validate() error {
	if !KnownNamespace(k.Namespace) {
		return Errorf(EINVALID, "unknown cache namespace %q", k.Namespace)
	}
	if k.Identifier == "" {
		return Errorf(EINVALID, "cache identifier required")
	}
	return nil
}

// String returns the serialized form used for persistence and for the
// per-key single-flight lock.
func (k CacheKey) String() string {
	return string(k.Namespace) + "/" + k.Identifier
}

// Source records how a cache entry's value was obtained.
type Source string

// Entry sources.
const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// CacheEntry is a cached value together with its freshness metadata.
// Entries are immutable once written; a fresher fetch replaces the whole
// entry rather than mutating it in place.
type CacheEntry struct {
	Key       CacheKey        `json:"key"`
	Value     json.RawMessage `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
	TTL       time.Duration   `json:"ttl"`
	Source    Source          `json:"source"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CacheEntry) Validate() error {
	if err := e.Key.Validate(); err != nil {
		return err
	}
	if len(e.Value) == 0 {
		return Errorf(EINVALID, "cache entry value required")
	}
	if e.Source != SourceLive && e.Source != SourceFallback {
		return Errorf(EINVALID, "unknown cache entry source %q", e.Source)
	}
	return nil
}

// ExpiresAt returns the entry's expiry instant.
func (e *CacheEntry) ExpiresAt() time.Time {
	return e.FetchedAt.Add(e.TTL)
}

// Age returns how long ago the entry was fetched.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// Expired reports whether the entry is eligible for refresh at the given
// instant. Fallback-sourced entries are never authoritative for freshness,
// so they are always eligible for replacement by a live fetch.
func (e *CacheEntry) Expired(now time.Time) bool {
	if e.Source == SourceFallback {
		return true
	}
	return now.After(e.ExpiresAt())
}

// CacheStats summarizes the contents of a cache store.
type CacheStats struct {
	Total   int `json:"total"`
	Expired int `json:"expired"`
}

// CacheStore is a durable key to entry mapping. It survives process
// restarts so a cold start does not force an immediate re-scrape storm.
// Writes for a single key are serialized by the Coordinator's single-flight
// guarantee; a read racing a write for the same key observes either the old
// or the new entry, never a partial one.
type CacheStore interface {
	// Read retrieves the entry for a key.
	// Returns ENOTFOUND if no entry exists.
	Read(ctx context.Context, key CacheKey) (*CacheEntry, error)

	// Write atomically replaces the entry for entry.Key.
	Write(ctx context.Context, entry *CacheEntry) error

	// Delete removes the entry for a key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key CacheKey) error

	// ListExpired returns the keys of all entries eligible for refresh at
	// the given instant. Expired entries are not removed; they remain
	// available as a last-resort stale value if refresh fails.
	ListExpired(ctx context.Context, now time.Time) ([]CacheKey, error)

	// Stats returns entry counts for the store.
	Stats(ctx context.Context, now time.Time) (CacheStats, error)

	// Clear removes every entry. Equivalent to a full cold cache; safe at
	// any time.
	Clear(ctx context.Context) error
}

// FallbackTable is a versioned, in-process table of known keys and minimal
// records. It is consulted only when live extraction fails and no cached
// value (even stale) exists.
type FallbackTable interface {
	// Lookup returns the minimal record for a key, if the table knows it.
	Lookup(key CacheKey) (json.RawMessage, bool)

	// Version identifies the revision of the embedded data.
	Version() string
}
