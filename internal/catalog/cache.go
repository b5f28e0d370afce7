package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// cachedIndexFile is the file name of the cached remote index.
	cachedIndexFile = "catalog.yaml"

	// freshnessFile is the name of the timestamp marker file.
	freshnessFile = ".catalog-updated"

	// DefaultMaxAge is the default staleness threshold (7 days).
	DefaultMaxAge = 7 * 24 * time.Hour
)

// CachedIndexPath returns the path of the cached remote index under configDir.
func CachedIndexPath(configDir string) string {
	return filepath.Join(configDir, cachedIndexFile)
}

// SaveCached atomically writes a validated remote index to the cache. The
// data must already have passed Parse; callers should not cache unvalidated
// bytes.
func SaveCached(configDir string, data []byte) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := CachedIndexPath(configDir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing catalog cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing catalog cache: %w", err)
	}

	WriteFreshnessMarker(configDir)
	return nil
}

// LoadCached reads and parses the cached remote index. Returns nil, nil if
// no cache exists.
func LoadCached(configDir string) (*Catalog, error) {
	data, err := os.ReadFile(CachedIndexPath(configDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog cache: %w", err)
	}
	return Parse(data)
}

// Resolve returns the catalog to install from: the cached remote index when
// present and parseable, otherwise the built-in default. A corrupt cache is
// reported so the caller can suggest `catalog update`, but never blocks
// installation.
func Resolve(configDir string) (*Catalog, error) {
	cached, err := LoadCached(configDir)
	if err != nil {
		return Default(), fmt.Errorf("cached catalog index is invalid (using built-in): %w", err)
	}
	if cached != nil {
		return cached, nil
	}
	return Default(), nil
}

// WriteFreshnessMarker writes the current Unix timestamp to the freshness file.
func WriteFreshnessMarker(configDir string) {
	markerPath := filepath.Join(configDir, freshnessFile)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	_ = os.WriteFile(markerPath, []byte(ts), 0644)
}

// ReadFreshnessMarker reads the timestamp from the freshness file.
// Returns zero time if the file doesn't exist or can't be parsed.
func ReadFreshnessMarker(configDir string) time.Time {
	markerPath := filepath.Join(configDir, freshnessFile)
	data, err := os.ReadFile(markerPath)
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale returns true if the cached index is older than maxAge. Returns
// true if the freshness marker doesn't exist.
func IsStale(configDir string, maxAge time.Duration) bool {
	lastUpdated := ReadFreshnessMarker(configDir)
	if lastUpdated.IsZero() {
		return true
	}
	return time.Since(lastUpdated) > maxAge
}
