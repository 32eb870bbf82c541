// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/rendering"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	File      string `json:"file,omitempty"`      // Path to the résumé document
	Companies string `json:"companies,omitempty"` // Path to extra company profiles (JSON array)

	// Targets
	Company  string `json:"company,omitempty"`  // Company to match against
	Industry string `json:"industry,omitempty"` // Industry for skill suggestions
	Role     string `json:"role,omitempty"`     // Target role
	Template string `json:"template,omitempty"` // Résumé template id

	// Output
	OutDir string `json:"out_dir,omitempty"` // Directory for extracted text and metadata
	JSON   bool   `json:"json,omitempty"`    // Print machine-readable JSON

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
	if c.Template != "" && !rendering.IsKnownTemplate(c.Template) {
		return fmt.Errorf("config error: unknown template %q", c.Template)
	}

	if c.File != "" {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.File)
		}
	}

	if c.Companies != "" {
		if _, err := os.Stat(c.Companies); os.IsNotExist(err) {
			return fmt.Errorf("config error: companies file not found: %s", c.Companies)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}
	fill(&result.File, defaults.File)
	fill(&result.Companies, defaults.Companies)
	fill(&result.Company, defaults.Company)
	fill(&result.Industry, defaults.Industry)
	fill(&result.Role, defaults.Role)
	fill(&result.Template, defaults.Template)
	fill(&result.OutDir, defaults.OutDir)
	fill(&result.DatabaseURL, defaults.DatabaseURL)

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
