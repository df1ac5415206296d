// Package config handles repository layout and configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paperdex/paperdex/internal/resolve"
)

// Config represents repository configuration stored in .paperdex/config.json.
// Zero fields fall back to built-in defaults.
type Config struct {
	SearchThreshold    float64 `json:"search_threshold,omitempty"`    // Match acceptance against external search results
	ReferenceThreshold float64 `json:"reference_threshold,omitempty"` // Match acceptance for reference linking
	RequestDelayMS     int     `json:"request_delay_ms,omitempty"`    // Minimum delay between external requests
}

const (
	PaperdexDir = ".paperdex"
	ConfigFile  = "config.json"
	PapersFile  = "papers.jsonl"
	VenuesFile  = "venues.yml"
	BackupDir   = "backups"
	CacheDir    = "cache"
	DBFile      = "papers.db"
)

// PaperdexPath returns the path to the .paperdex directory from a root path.
func PaperdexPath(root string) string {
	return filepath.Join(root, PaperdexDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, PaperdexDir, ConfigFile)
}

// PapersPath returns the path to papers.jsonl from a root path.
func PapersPath(root string) string {
	return filepath.Join(root, PaperdexDir, PapersFile)
}

// VenuesPath returns the path to venues.yml from a root path.
func VenuesPath(root string) string {
	return filepath.Join(root, PaperdexDir, VenuesFile)
}

// BackupPath returns the path to the backup directory from a root path.
func BackupPath(root string) string {
	return filepath.Join(root, PaperdexDir, BackupDir)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, PaperdexDir, CacheDir)
}

// DBPath returns the path to the ephemeral papers.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, PaperdexDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a paperdex repository.
func IsRepository(root string) bool {
	info, err := os.Stat(PaperdexPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a paperdex repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a paperdex repository (no %s directory found)", PaperdexDir)
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root. A missing
// config file yields the defaults.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(PaperdexPath(root), 0755); err != nil {
		return fmt.Errorf("creating repository directory: %w", err)
	}
	if err := os.WriteFile(ConfigPath(root), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// EffectiveSearchThreshold returns the configured search threshold or the
// built-in default.
func (c *Config) EffectiveSearchThreshold() float64 {
	if c.SearchThreshold > 0 {
		return c.SearchThreshold
	}
	return resolve.SearchThreshold
}

// EffectiveReferenceThreshold returns the configured reference threshold or
// the built-in default.
func (c *Config) EffectiveReferenceThreshold() float64 {
	if c.ReferenceThreshold > 0 {
		return c.ReferenceThreshold
	}
	return resolve.ReferenceThreshold
}
