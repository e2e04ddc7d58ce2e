package scraper

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/raxod502/hyposchedule/pkg/catalog"
)

// cacheDuration determines how long a downloaded catalog is kept before
// refreshing. The portal only updates a few times a day during registration.
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time        `json:"timestamp"`
	Records   []catalog.Record `json:"records"`
}

func getCachePath(portalURL string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".hyposchedule_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// Different portals cache separately; hash the URL for a safe filename
	name := fmt.Sprintf("%x.json", sha1.Sum([]byte(portalURL)))
	return filepath.Join(cacheDir, name), nil
}

// readCache checks if a valid, unexpired catalog cache exists for this portal
func readCache(portalURL string) ([]catalog.Record, bool) {
	path, err := getCachePath(portalURL)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false // Expired
	}

	return entry.Records, true
}

// writeCache saves the downloaded catalog to disk
func writeCache(portalURL string, records []catalog.Record) {
	path, err := getCachePath(portalURL)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Records:   records,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
