package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadCached(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, SaveCached(dir, []byte(validIndex)))

	cat, err := LoadCached(dir)
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "2.1.0", cat.Version)

	// SaveCached must leave no temp file behind.
	_, err = os.Stat(CachedIndexPath(dir) + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadCachedMissing(t *testing.T) {
	cat, err := LoadCached(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cat)
}

func TestResolveFallsBackToBuiltin(t *testing.T) {
	dir := t.TempDir()

	cat, err := Resolve(dir)
	require.NoError(t, err)
	require.NotNil(t, cat)

	// With no cache, Resolve returns the built-in catalog.
	_, ok := cat.BundleByName("starter")
	assert.True(t, ok)
}

func TestResolveCorruptCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("items: 12"), 0644))

	cat, err := Resolve(dir)
	assert.Error(t, err)
	require.NotNil(t, cat, "corrupt cache must still yield the built-in catalog")
	_, ok := cat.BundleByName("starter")
	assert.True(t, ok)
}

func TestFreshnessMarker(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, IsStale(dir, DefaultMaxAge), "missing marker is stale")

	WriteFreshnessMarker(dir)
	assert.False(t, IsStale(dir, DefaultMaxAge))
	assert.WithinDuration(t, time.Now(), ReadFreshnessMarker(dir), 5*time.Second)

	assert.True(t, IsStale(dir, 0), "zero max age means always stale")
}

func TestReadFreshnessMarkerGarbage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".catalog-updated"), []byte("not-a-number"), 0644))

	assert.True(t, ReadFreshnessMarker(dir).IsZero())
}
