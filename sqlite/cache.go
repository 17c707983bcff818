package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Compile-time interface verification.
var _ meshmcp.CacheStore = (*CacheStore)(nil)

// CacheStore implements meshmcp.CacheStore using SQLite. One row per
// CacheKey; writes replace the whole row, so readers observe either the
// old or the new entry, never a partial one.
type CacheStore struct {
	db *DB
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(db *DB) *CacheStore {
	return &CacheStore{db: db}
}

// Read retrieves the entry for a key.
func (s *CacheStore) Read(ctx context.Context, key meshmcp.CacheKey) (*meshmcp.CacheEntry, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var entry meshmcp.CacheEntry
	var fetchedAt string
	var ttlSeconds int64
	var source string

	err := s.db.QueryRowContext(ctx, `
		SELECT namespace, identifier, value, fetched_at, ttl_seconds, source
		FROM cache_entries
		WHERE namespace = ? AND identifier = ?
	`, string(key.Namespace), key.Identifier).Scan(
		&entry.Key.Namespace, &entry.Key.Identifier, &entry.Value,
		&fetchedAt, &ttlSeconds, &source)

	if err == sql.ErrNoRows {
		return nil, meshmcp.Errorf(meshmcp.ENOTFOUND, "no cache entry for %s", key)
	}
	if err != nil {
		return nil, err
	}

	entry.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	entry.TTL = time.Duration(ttlSeconds) * time.Second
	entry.Source = meshmcp.Source(source)

	return &entry, nil
}

// Write atomically replaces the entry for entry.Key. The TTL is stored on
// the entry at write time so later configuration changes do not
// retroactively alter an already-written entry's expiry.
func (s *CacheStore) Write(ctx context.Context, entry *meshmcp.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO cache_entries
			(namespace, identifier, value, fetched_at, ttl_seconds, expires_at, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, string(entry.Key.Namespace), entry.Key.Identifier, []byte(entry.Value),
		entry.FetchedAt.UTC().Format(time.RFC3339Nano),
		int64(entry.TTL/time.Second),
		entry.ExpiresAt().UTC().Format(time.RFC3339Nano),
		string(entry.Source))

	return err
}

// Delete removes the entry for a key. Deleting an absent key is a no-op.
func (s *CacheStore) Delete(ctx context.Context, key meshmcp.CacheKey) error {
	if err := key.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM cache_entries WHERE namespace = ? AND identifier = ?
	`, string(key.Namespace), key.Identifier)

	return err
}

// ListExpired returns the keys of all entries eligible for refresh at the
// given instant. Fallback-sourced entries are always eligible regardless
// of their own age.
func (s *CacheStore) ListExpired(ctx context.Context, now time.Time) ([]meshmcp.CacheKey, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT namespace, identifier
		FROM cache_entries
		WHERE source = ? OR expires_at <= ?
		ORDER BY namespace, identifier
	`, string(meshmcp.SourceFallback), now.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []meshmcp.CacheKey
	for rows.Next() {
		var key meshmcp.CacheKey
		if err := rows.Scan(&key.Namespace, &key.Identifier); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// Stats returns entry counts for the store.
func (s *CacheStore) Stats(ctx context.Context, now time.Time) (meshmcp.CacheStats, error) {
	var stats meshmcp.CacheStats

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN source = ? OR expires_at <= ? THEN 1 END)
		FROM cache_entries
	`, string(meshmcp.SourceFallback), now.UTC().Format(time.RFC3339Nano)).
		Scan(&stats.Total, &stats.Expired)

	return stats, err
}

// Clear removes every entry.
func (s *CacheStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM cache_entries")
	return err
}
