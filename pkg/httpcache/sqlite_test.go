package httpcache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T, ttl time.Duration) *SQLite {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "cache.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLite_SetGet(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t, time.Hour)

	_, ok := store.Get(ctx, "http://example.com/a.xml")
	assert.False(t, ok)

	body := []byte("<Data/>")
	require.NoError(t, store.Set(ctx, "http://example.com/a.xml", body))

	got, ok := store.Get(ctx, "http://example.com/a.xml")
	require.True(t, ok)
	assert.Equal(t, body, got)
}

func TestSQLite_Expiry(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t, -time.Second)

	require.NoError(t, store.Set(ctx, "key", []byte("stale")))

	_, ok := store.Get(ctx, "key")
	assert.False(t, ok, "expired entry must be a miss")
}

func TestSQLite_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t, 0)

	require.NoError(t, store.Set(ctx, "key", []byte("keep")))

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("keep"), got)
}

func TestSQLite_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t, time.Hour)

	require.NoError(t, store.Set(ctx, "key", []byte("old")))
	require.NoError(t, store.Set(ctx, "key", []byte("new")))

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestSQLite_Prune(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t, -time.Second)

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))

	removed, err := store.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
