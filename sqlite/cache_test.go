package sqlite_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/lukeylias/MeshMCP/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func liveEntry(identifier string, fetchedAt time.Time, ttl time.Duration) *meshmcp.CacheEntry {
	return &meshmcp.CacheEntry{
		Key:       meshmcp.NewCacheKey(meshmcp.NamespaceComponentDetail, identifier),
		Value:     json.RawMessage(`{"name":"` + identifier + `"}`),
		FetchedAt: fetchedAt,
		TTL:       ttl,
		Source:    meshmcp.SourceLive,
	}
}

func TestCacheStore_ReadWrite(t *testing.T) {
	t.Parallel()

	t.Run("round-trips an entry", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()

		fetchedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		entry := liveEntry("button", fetchedAt, time.Hour)
		require.NoError(t, store.Write(ctx, entry))

		got, err := store.Read(ctx, entry.Key)
		require.NoError(t, err)

		assert.Equal(t, entry.Key, got.Key)
		assert.JSONEq(t, string(entry.Value), string(got.Value))
		assert.True(t, got.FetchedAt.Equal(fetchedAt))
		assert.Equal(t, time.Hour, got.TTL)
		assert.Equal(t, meshmcp.SourceLive, got.Source)
	})

	t.Run("missing key returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))

		_, err := store.Read(context.Background(), meshmcp.NewCacheKey(meshmcp.NamespaceComponentDetail, "ghost"))
		require.Error(t, err)
		assert.Equal(t, meshmcp.ENOTFOUND, meshmcp.ErrorCode(err))
	})

	t.Run("write replaces the whole entry", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()

		first := liveEntry("button", time.Now().UTC().Add(-2*time.Hour), time.Hour)
		require.NoError(t, store.Write(ctx, first))

		second := liveEntry("button", time.Now().UTC(), 2*time.Hour)
		second.Value = json.RawMessage(`{"name":"button","description":"updated"}`)
		require.NoError(t, store.Write(ctx, second))

		got, err := store.Read(ctx, second.Key)
		require.NoError(t, err)
		assert.JSONEq(t, string(second.Value), string(got.Value))
		assert.Equal(t, 2*time.Hour, got.TTL)

		stats, err := store.Stats(ctx, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Total, "replace should not create a second row")
	})

	t.Run("rejects invalid entry", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))

		err := store.Write(context.Background(), &meshmcp.CacheEntry{
			Key:    meshmcp.NewCacheKey(meshmcp.NamespaceComponentDetail, "button"),
			Source: meshmcp.SourceLive,
		})
		require.Error(t, err)
		assert.Equal(t, meshmcp.EINVALID, meshmcp.ErrorCode(err))
	})

	t.Run("namespaces are isolated", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()

		entry := &meshmcp.CacheEntry{
			Key:       meshmcp.NewCacheKey(meshmcp.NamespaceDesignTokens, "all"),
			Value:     json.RawMessage(`{"colors":{}}`),
			FetchedAt: time.Now().UTC(),
			TTL:       time.Hour,
			Source:    meshmcp.SourceLive,
		}
		require.NoError(t, store.Write(ctx, entry))

		_, err := store.Read(ctx, meshmcp.NewCacheKey(meshmcp.NamespaceComponentList, "all"))
		require.Error(t, err)
		assert.Equal(t, meshmcp.ENOTFOUND, meshmcp.ErrorCode(err))
	})
}

func TestCacheStore_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the entry", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()

		entry := liveEntry("button", time.Now().UTC(), time.Hour)
		require.NoError(t, store.Write(ctx, entry))
		require.NoError(t, store.Delete(ctx, entry.Key))

		_, err := store.Read(ctx, entry.Key)
		assert.Equal(t, meshmcp.ENOTFOUND, meshmcp.ErrorCode(err))
	})

	t.Run("deleting an absent key is a no-op", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		assert.NoError(t, store.Delete(context.Background(), meshmcp.NewCacheKey(meshmcp.NamespaceComponentDetail, "ghost")))
	})
}

func TestCacheStore_ListExpired(t *testing.T) {
	t.Parallel()

	t.Run("returns expired and fallback entries only", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		fresh := liveEntry("alert", now.Add(-10*time.Minute), time.Hour)
		expired := liveEntry("button", now.Add(-2*time.Hour), time.Hour)
		fromFallback := &meshmcp.CacheEntry{
			Key:       meshmcp.NewCacheKey(meshmcp.NamespaceComponentDetail, "card"),
			Value:     json.RawMessage(`{"name":"Card"}`),
			FetchedAt: now, // just written, but fallback is always refresh-eligible
			TTL:       time.Hour,
			Source:    meshmcp.SourceFallback,
		}

		for _, e := range []*meshmcp.CacheEntry{fresh, expired, fromFallback} {
			require.NoError(t, store.Write(ctx, e))
		}

		keys, err := store.ListExpired(ctx, now)
		require.NoError(t, err)
		assert.ElementsMatch(t, []meshmcp.CacheKey{expired.Key, fromFallback.Key}, keys)
	})

	t.Run("expired entries remain readable", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()
		now := time.Now().UTC()

		expired := liveEntry("button", now.Add(-2*time.Hour), time.Hour)
		require.NoError(t, store.Write(ctx, expired))

		_, err := store.ListExpired(ctx, now)
		require.NoError(t, err)

		got, err := store.Read(ctx, expired.Key)
		require.NoError(t, err)
		assert.True(t, got.Expired(now))
	})
}

func TestCacheStore_Stats(t *testing.T) {
	t.Parallel()

	store := sqlite.NewCacheStore(setupTestDB(t))
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Write(ctx, liveEntry("alert", now.Add(-10*time.Minute), time.Hour)))
	require.NoError(t, store.Write(ctx, liveEntry("button", now.Add(-3*time.Hour), time.Hour)))

	stats, err := store.Stats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, meshmcp.CacheStats{Total: 2, Expired: 1}, stats)
}

func TestCacheStore_Clear(t *testing.T) {
	t.Parallel()

	store := sqlite.NewCacheStore(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, liveEntry("button", time.Now().UTC(), time.Hour)))
	require.NoError(t, store.Clear(ctx))

	stats, err := store.Stats(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

func TestCacheStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	entry := liveEntry("button", time.Now().UTC(), time.Hour)
	require.NoError(t, sqlite.NewCacheStore(db).Write(ctx, entry))
	require.NoError(t, db.Close())

	db = sqlite.NewDB(path)
	require.NoError(t, db.Open())
	defer db.Close()

	got, err := sqlite.NewCacheStore(db).Read(ctx, entry.Key)
	require.NoError(t, err)
	assert.JSONEq(t, string(entry.Value), string(got.Value))
}
