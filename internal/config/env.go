package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from an env file into the process environment.
// A missing file is not an error; variables already set are not overridden.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides defaults with MOCKCHECK_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvHealthPath); v != "" {
		c.HealthPath = v
	}
	if v := os.Getenv(EnvProbeTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvProbeTimeout, err)
		}
		c.ProbeTimeout = d
	}
	return nil
}
