package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default input filenames, relative to the working directory. Runs are meant
// to be reproducible, so these stay constant unless overridden in config or
// by flags.
const (
	DefaultCatalogPath     = "courses.json"
	DefaultSelectedPath    = "selected.txt"
	DefaultBlacklistedPath = "blacklisted.txt"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	CatalogPath     string `json:"catalog_path,omitempty"`
	SelectedPath    string `json:"selected_path,omitempty"`
	BlacklistedPath string `json:"blacklisted_path,omitempty"`
	PortalURL       string `json:"portal_url,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
	SemesterStart   string `json:"semester_start,omitempty"` // YYYY-MM-DD
	SemesterWeeks   int    `json:"semester_weeks,omitempty"`
}

// getConfigPath returns the absolute path to ~/.hyposchedule.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".hyposchedule.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Catalog returns the configured catalog path, falling back to the default.
func (c *AppConfig) Catalog() string {
	if c != nil && c.CatalogPath != "" {
		return c.CatalogPath
	}
	return DefaultCatalogPath
}

// Selected returns the configured selection-file path, falling back to the default.
func (c *AppConfig) Selected() string {
	if c != nil && c.SelectedPath != "" {
		return c.SelectedPath
	}
	return DefaultSelectedPath
}

// Blacklisted returns the configured blacklist-file path, falling back to the default.
func (c *AppConfig) Blacklisted() string {
	if c != nil && c.BlacklistedPath != "" {
		return c.BlacklistedPath
	}
	return DefaultBlacklistedPath
}
