package config

import "time"

const (
	// DefaultBaseURL is the mock server address used when none is given
	DefaultBaseURL = "http://localhost:4010"
	// DefaultHealthPath is the admin endpoint probed before any case runs
	DefaultHealthPath = "/__admin/health"
	// DefaultProbeTimeout is the connect timeout of the health probe
	DefaultProbeTimeout = 2 * time.Second
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "mockcheck-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
)

// Environment variables that override the defaults above.
const (
	EnvBaseURL      = "MOCKCHECK_BASE_URL"
	EnvHealthPath   = "MOCKCHECK_HEALTH_PATH"
	EnvProbeTimeout = "MOCKCHECK_PROBE_TIMEOUT"
)
