package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Target settings
	BaseURL      string
	HealthPath   string
	ProbeTimeout time.Duration

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	BaseURL    string
	SuitePath  string
	NameFilter string
	HealthPath string
	Verbose    bool
	Progress   bool
	Save       bool
	XLSXPath   string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		HealthPath:     DefaultHealthPath,
		ProbeTimeout:   DefaultProbeTimeout,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config, applies the environment and then flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyFlags stores flags and lets the non-empty ones override current values
func (c *Config) ApplyFlags(flags Flags) error {
	c.Flags = flags
	if flags.BaseURL != "" {
		c.BaseURL = flags.BaseURL
	}
	if flags.HealthPath != "" {
		c.HealthPath = flags.HealthPath
	}
	return c.Validate()
}

// Validate checks that the target settings can be used to build requests
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}
	if !strings.HasPrefix(c.HealthPath, "/") {
		return fmt.Errorf("invalid health path %q: must start with /", c.HealthPath)
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("invalid probe timeout %s", c.ProbeTimeout)
	}
	return nil
}

// GetBaseURL returns the base URL without a trailing slash so paths can be appended
func (c *Config) GetBaseURL() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// GetHealthURL returns the full URL of the admin health endpoint
func (c *Config) GetHealthURL() string {
	return c.GetBaseURL() + c.HealthPath
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
