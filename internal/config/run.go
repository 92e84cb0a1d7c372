// Package config loads and validates the configuration of both tools: the
// session runner and the reporting tool. Values come from an optional config
// file with command-line flags taking precedence, and every path is checked
// before any lock or target is touched.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// ConfigError reports the first invalid path found while resolving a run
// configuration. Resolution happens before any side effect on the lock or
// the target.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Path, e.Reason)
}

// RunConfig describes one guarded session: which testplans to execute
// against which environment, and where the engine writes its artifacts.
type RunConfig struct {
	Testplans      []string
	EnvPath        string
	OutputDir      string
	TestcaseFilter string
	Verbosity      int
	JSONOutput     bool
}

// DefaultOutputDir returns a fresh randomized directory path under the temp
// root. ULIDs sort by creation time, which keeps sibling run directories in
// chronological order.
func DefaultOutputDir() string {
	return filepath.Join(os.TempDir(), "benchrig", "run-"+ulid.Make().String())
}

// Resolve validates every configured path, failing fast on the first invalid
// one. The output directory is created (with parents) if absent; nothing else
// is touched.
func (c *RunConfig) Resolve() error {
	if len(c.Testplans) == 0 {
		return &ConfigError{Path: "(testplan)", Reason: "at least one testplan path is required"}
	}
	for _, plan := range c.Testplans {
		if _, err := os.Stat(plan); err != nil {
			return &ConfigError{Path: plan, Reason: "testplan not found"}
		}
	}

	if c.EnvPath == "" {
		return &ConfigError{Path: "(environment)", Reason: "environment path is required"}
	}
	if _, err := os.Stat(c.EnvPath); err != nil {
		return &ConfigError{Path: c.EnvPath, Reason: "environment definition not found"}
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir()
	}
	if err := os.MkdirAll(c.OutputDir, 0o750); err != nil {
		return &ConfigError{Path: c.OutputDir, Reason: fmt.Sprintf("cannot create output directory: %v", err)}
	}

	return nil
}
