// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/marketpulse/internal/indexing"
	"github.com/jonathan/marketpulse/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to the item catalog JSON file
	Schema  string `json:"schema,omitempty"`  // Path to the catalog JSON schema (empty skips schema validation)
	OutDir  string `json:"out_dir,omitempty"` // Output directory for generated pages

	// Site
	BaseURL  string `json:"base_url,omitempty"`  // Absolute site origin for canonical URLs
	PageSize int    `json:"page_size,omitempty"` // Items per listing page

	// Generation limits
	NumRelated int `json:"num_related,omitempty"` // Related items per page
	MaxLinks   int `json:"max_links,omitempty"`   // Auto-link budget per page
	Workers    int `json:"workers,omitempty"`     // Concurrent page workers

	// Thin-content thresholds keyed by item type; unset types use defaults.
	Thresholds map[string]int `json:"thresholds,omitempty"`

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.PageSize < 0 {
		return fmt.Errorf("config error: 'page_size' must be non-negative")
	}
	if c.NumRelated < 0 {
		return fmt.Errorf("config error: 'num_related' must be non-negative")
	}
	if c.MaxLinks < 0 {
		return fmt.Errorf("config error: 'max_links' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	for itemType, threshold := range c.Thresholds {
		if threshold < 0 {
			return fmt.Errorf("config error: threshold for %q must be non-negative", itemType)
		}
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.PageSize == 0 {
		result.PageSize = defaults.PageSize
	}
	if result.NumRelated == 0 {
		result.NumRelated = defaults.NumRelated
	}
	if result.MaxLinks == 0 {
		result.MaxLinks = defaults.MaxLinks
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	if result.Thresholds == nil {
		result.Thresholds = defaults.Thresholds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Policy builds the thin-content policy: production defaults overlaid with
// the configured per-type thresholds.
func (c *Config) Policy() indexing.Policy {
	policy := indexing.DefaultPolicy()
	for itemType, threshold := range c.Thresholds {
		policy[types.ItemType(itemType)] = threshold
	}
	return policy
}
