// Package config provides configuration management for the tsstrip CLI.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SourceKind selects whether a buffer is treated as an ES module or a
// classic script.
type SourceKind string

const (
	SourceModule SourceKind = "module"
	SourceScript SourceKind = "script"
)

// IsValid reports whether k is a recognized SourceKind.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceModule, SourceScript:
		return true
	default:
		return false
	}
}

// Config is the complete tsstrip project configuration, loaded from an
// optional tsstrip.toml.
type Config struct {
	// SourceKind controls whether top-level `await`/import semantics are
	// treated as a module or a classic script. The strip engine's output
	// is identical either way; this only affects which parser entry point
	// a caller wires in B.1's contract.
	SourceKind SourceKind `toml:"source_kind"`

	// KeepEmptyDeclareWarning controls whether the CLI prints the
	// diagnostics of a successful Transpile as warnings. Ambient
	// declarations are ALWAYS erased regardless of this flag, and
	// Transpile emits no diagnostic for an erased `declare` block, so
	// nothing is printed for one.
	KeepEmptyDeclareWarning bool `toml:"warn_on_declare_strip"`

	// OutputSuffix replaces the source file's own extension to produce
	// the output path (e.g. ".js" for a ".ts" input).
	OutputSuffix string `toml:"output_suffix"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SourceKind:              SourceModule,
		KeepEmptyDeclareWarning: false,
		OutputSuffix:            ".js",
	}
}

// Load loads configuration from an optional tsstrip.toml in the current
// directory, falling back to defaults when the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "tsstrip.toml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration holds recognized values.
func (c *Config) Validate() error {
	if !c.SourceKind.IsValid() {
		return fmt.Errorf("invalid source_kind: %q (must be %q or %q)", c.SourceKind, SourceModule, SourceScript)
	}
	if c.OutputSuffix == "" {
		return fmt.Errorf("output_suffix must not be empty")
	}
	return nil
}
