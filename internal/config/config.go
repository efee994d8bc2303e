// Package config holds the configurable values for the filemutex CLI.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/stryku/file-mutex/internal/fsutil"
)

// Config holds the settings shared by the filemutex CLI commands. Commands
// populate it from their flags and validate it before running.
type Config struct {
	Suffix   string
	Count    int
	Interval time.Duration
	HoldFor  time.Duration
	Timeout  time.Duration
	Shared   bool
}

// Default returns a Config with the default values the CLI flags advertise.
func Default() *Config {
	return &Config{
		Suffix:   ".lock",
		Count:    10,
		Interval: time.Second,
		HoldFor:  5 * time.Second,
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Suffix == "" {
		return fmt.Errorf("suffix must not be empty")
	}
	if strings.ContainsAny(c.Suffix, `/\`) {
		return fmt.Errorf("suffix must not contain a path separator")
	}
	if c.Count < 1 || c.Count > 100000 {
		return fmt.Errorf("count must be between 1 and 100000")
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	if c.HoldFor < 0 {
		return fmt.Errorf("hold duration must not be negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// ValidateTarget checks that target names a lockable resource: a non-empty
// path whose directory exists and is writable (the lock file is created
// alongside the target).
func ValidateTarget(target string) error {
	if target == "" {
		return fmt.Errorf("target path is required")
	}
	if err := fsutil.CheckDirectoryIsWritable(filepath.Dir(target)); err != nil {
		return fmt.Errorf("target directory is not usable: %w", err)
	}
	return nil
}
