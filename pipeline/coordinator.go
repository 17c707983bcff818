// Package pipeline provides the fetch-parse-cache orchestration core.
// The Coordinator decides, for any requested key, whether to serve a cached
// record or trigger a fresh extraction, degrades gracefully through the
// live -> stale -> fallback -> error chain, and coalesces concurrent
// requests for the same key into a single extraction.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/lukeylias/MeshMCP/prometheus"
	"golang.org/x/sync/singleflight"
)

// DefaultExtractTimeout bounds a single extraction. Extractions run on a
// context detached from the requesting caller, so one waiter's
// disconnection never cancels work other waiters depend on; this timeout is
// the only thing that stops a hung extraction.
const DefaultExtractTimeout = 60 * time.Second

// Default per-namespace TTLs, applied when no override is configured.
var defaultTTLs = map[meshmcp.Namespace]time.Duration{
	meshmcp.NamespaceComponentList:   1 * time.Hour,
	meshmcp.NamespaceComponentDetail: 2 * time.Hour,
	meshmcp.NamespaceDesignTokens:    2 * time.Hour,
}

// Result is the outcome of a coordinator lookup.
type Result struct {
	Entry *meshmcp.CacheEntry

	// Stale is true when the entry's TTL window has passed and the serve is
	// best-effort (a live refresh failed). Fallback-sourced entries report
	// their provenance through Entry.Source instead.
	Stale bool

	// Age is how long ago the entry was fetched.
	Age time.Duration
}

// Coordinator orchestrates cache reads, single-flight extraction, and the
// graceful-degradation chain. All fields must be set before first use
// except the optional ones noted below.
type Coordinator struct {
	Store     meshmcp.CacheStore
	Extractor meshmcp.Extractor

	// Fallback is consulted only when extraction fails and no cached value
	// (even stale) exists. Optional; nil disables fallback serving.
	Fallback meshmcp.FallbackTable

	// TTLs overrides the default per-namespace TTLs. Optional.
	TTLs map[meshmcp.Namespace]time.Duration

	// ExtractTimeout bounds a single extraction. Zero means
	// DefaultExtractTimeout.
	ExtractTimeout time.Duration

	// Logger is used for refresh outcomes. Optional.
	Logger *slog.Logger

	// Metrics observes cache traffic. Optional (nil-safe).
	Metrics *prometheus.Metrics

	// Now returns the current time. Defaults to time.Now; tests inject a
	// fixed clock to probe expiry boundaries.
	Now func() time.Time

	group singleflight.Group
}

// Get returns the value for a key, extracting it from the upstream source
// when the cache has no fresh entry. force bypasses the freshness check but
// still joins any extraction already in flight for the key, preserving the
// at-most-one-extraction-per-key invariant.
func (c *Coordinator) Get(ctx context.Context, key meshmcp.CacheKey, force bool) (*Result, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	now := c.now()

	// Fast path: a fresh entry is returned without suspension.
	entry, err := c.Store.Read(ctx, key)
	if err != nil && meshmcp.ErrorCode(err) != meshmcp.ENOTFOUND {
		return nil, err
	}
	if entry != nil && !force && !entry.Expired(now) {
		c.Metrics.Hit(string(key.Namespace))
		return &Result{Entry: entry, Age: entry.Age(now)}, nil
	}
	c.Metrics.Miss(string(key.Namespace))

	// Join (or start) the in-flight extraction for this exact key. Late
	// joiners observe that extraction's result rather than starting their
	// own; the handle is removed from the registry once settled.
	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		return c.extract(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// extract performs one extraction for a key and resolves the
// live -> stale -> fallback -> error chain. Exactly one extract runs per
// key at a time, so this is the only writer for the key's cache slot.
func (c *Coordinator) extract(ctx context.Context, key meshmcp.CacheKey) (*Result, error) {
	// Detach from the first caller's cancellation so other waiters on the
	// same key are not starved by one waiter disconnecting.
	timeout := c.ExtractTimeout
	if timeout <= 0 {
		timeout = DefaultExtractTimeout
	}
	ectx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	prior, readErr := c.Store.Read(ectx, key)
	if readErr != nil && meshmcp.ErrorCode(readErr) != meshmcp.ENOTFOUND {
		return nil, readErr
	}

	value, err := c.Extractor.Fetch(ectx, key)
	if err == nil {
		return c.install(ectx, key, value, prior)
	}

	code := meshmcp.ErrorCode(err)
	c.Metrics.ExtractionFailure(string(key.Namespace), code)

	// NotFound is terminal: the upstream has no such key. The static
	// fallback table is still checked once, but a stale cached value is
	// not a substitute for a key the source says does not exist.
	if code == meshmcp.ENOTFOUND {
		if res, ok := c.serveFallback(ectx, key); ok {
			return res, nil
		}
		return nil, err
	}

	// The fetch or parse broke. Freshness is best-effort, availability is
	// preferred: serve the prior value stale if one exists.
	if prior != nil {
		now := c.now()
		c.Metrics.StaleServe(string(key.Namespace))
		c.logger().Warn("extraction failed, serving stale entry",
			"key", key.String(),
			"age", prior.Age(now),
			"err", err,
		)
		return &Result{
			Entry: prior,
			Stale: prior.Source == meshmcp.SourceLive && c.now().After(prior.ExpiresAt()),
			Age:   prior.Age(now),
		}, nil
	}

	if res, ok := c.serveFallback(ectx, key); ok {
		c.logger().Warn("extraction failed, serving fallback entry",
			"key", key.String(),
			"err", err,
		)
		return res, nil
	}

	return nil, err
}

// install writes a new LIVE entry, replacing any prior entry for the key.
func (c *Coordinator) install(ctx context.Context, key meshmcp.CacheKey, value []byte, prior *meshmcp.CacheEntry) (*Result, error) {
	entry := &meshmcp.CacheEntry{
		Key:       key,
		Value:     value,
		FetchedAt: c.now(),
		TTL:       c.ttl(key.Namespace),
		Source:    meshmcp.SourceLive,
	}
	if err := c.Store.Write(ctx, entry); err != nil {
		return nil, err
	}

	changed := prior == nil || xxhash.Sum64(prior.Value) != xxhash.Sum64(value)
	c.Metrics.Extraction(string(key.Namespace))
	c.logger().Info("installed live entry",
		"key", key.String(),
		"bytes", len(value),
		"changed", changed,
	)

	return &Result{Entry: entry}, nil
}

// serveFallback installs and returns a FALLBACK entry if the table knows
// the key. Fallback entries are never authoritative for freshness, so the
// next access will attempt a live extraction again.
func (c *Coordinator) serveFallback(ctx context.Context, key meshmcp.CacheKey) (*Result, bool) {
	if c.Fallback == nil {
		return nil, false
	}
	value, ok := c.Fallback.Lookup(key)
	if !ok {
		return nil, false
	}

	entry := &meshmcp.CacheEntry{
		Key:       key,
		Value:     value,
		FetchedAt: c.now(),
		TTL:       c.ttl(key.Namespace),
		Source:    meshmcp.SourceFallback,
	}
	if err := c.Store.Write(ctx, entry); err != nil {
		c.logger().Warn("failed to persist fallback entry", "key", key.String(), "err", err)
	}

	c.Metrics.FallbackServe(string(key.Namespace))
	return &Result{Entry: entry}, true
}

// ttl returns the configured TTL for a namespace.
func (c *Coordinator) ttl(ns meshmcp.Namespace) time.Duration {
	if d, ok := c.TTLs[ns]; ok && d > 0 {
		return d
	}
	return defaultTTLs[ns]
}

func (c *Coordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
