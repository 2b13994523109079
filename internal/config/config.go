// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile string `json:"profile,omitempty"`  // Path to candidate profile JSON
	Claims  string `json:"claims,omitempty"`   // Path to extracted claim set JSON
	Job     string `json:"job,omitempty"`      // Path to a single job posting file
	JobsDir string `json:"jobs_dir,omitempty"` // Directory of job postings for batch scoring
	Out     string `json:"out,omitempty"`      // Output path for JSON artifacts

	// Behavior
	Draft   string `json:"draft,omitempty"`   // Label for the import batch during extraction
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
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
	if c.Job != "" && c.JobsDir != "" {
		return fmt.Errorf("config error: 'job' and 'jobs_dir' are mutually exclusive")
	}

	for _, check := range []struct {
		label, path string
	}{
		{"profile", c.Profile},
		{"claims", c.Claims},
		{"job", c.Job},
	} {
		if check.path == "" {
			continue
		}
		if _, err := os.Stat(check.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", check.label, check.path)
		}
	}

	if c.JobsDir != "" {
		info, err := os.Stat(c.JobsDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs directory not found: %s", c.JobsDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: jobs_dir is not a directory: %s", c.JobsDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Claims == "" {
		result.Claims = defaults.Claims
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobsDir == "" {
		result.JobsDir = defaults.JobsDir
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Draft == "" {
		result.Draft = defaults.Draft
	}
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}
