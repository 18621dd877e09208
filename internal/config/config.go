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
	KnowledgeBase string `json:"knowledge_base,omitempty"` // Knowledge-base directory
	Job           string `json:"job,omitempty"`            // Path to job description text file
	JobURL        string `json:"job_url,omitempty"`        // URL to fetch job description from
	Output        string `json:"output,omitempty"`         // Output .tex path

	// Generation
	JobTitle    string `json:"job_title,omitempty"`    // Target job title for the summary paragraph
	MaxProjects int    `json:"max_projects,omitempty"` // Optional lower cap on project entries

	// Behavior
	Compile  bool `json:"compile,omitempty"`   // Run pdflatex on the generated document
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed generation information
	JSONLogs bool `json:"json_logs,omitempty"` // Emit logs as JSON instead of console format
	Port     int  `json:"port,omitempty"`      // HTTP server port (serve command)
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

// Validate checks that the configuration has valid values. Required fields
// are enforced after CLI flag merging, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.MaxProjects < 0 {
		return fmt.Errorf("config error: 'max_projects' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	if c.KnowledgeBase != "" {
		if _, err := os.Stat(c.KnowledgeBase); os.IsNotExist(err) {
			return fmt.Errorf("config error: knowledge base directory not found: %s", c.KnowledgeBase)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values underneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.KnowledgeBase == "" {
		result.KnowledgeBase = defaults.KnowledgeBase
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.MaxProjects == 0 {
		result.MaxProjects = defaults.MaxProjects
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Compile {
		result.Compile = defaults.Compile
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.JSONLogs {
		result.JSONLogs = defaults.JSONLogs
	}

	return result
}
