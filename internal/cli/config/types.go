// Package config provides configuration management for the smartgen CLI.
//
// This package extends the shared configuration types from pkg/core with
// CLI-specific fields. The shared types are re-exported here via type
// aliases for convenience.
package config

import (
	intconfig "github.com/leapstack-labs/smartgen/internal/config"
	"github.com/leapstack-labs/smartgen/pkg/core"
)

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// FixConfig is an alias for the shared fix configuration.
type FixConfig = core.FixConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	Snapshots    []string    `koanf:"snapshots"`
	Parallel     bool        `koanf:"parallel"`
	Concurrency  int         `koanf:"concurrency"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Lint         *LintConfig `koanf:"lint"`
	Fix          *FixConfig  `koanf:"fix"`

	// ProjectRoot anchors relative snapshot patterns. It is inferred, never read.
	ProjectRoot string `koanf:"-"`
}

// Project returns the shared project view of the configuration.
func (c *Config) Project() *core.ProjectConfig {
	return &core.ProjectConfig{
		Snapshots: c.Snapshots,
		Parallel:  c.Parallel,
		Lint:      c.Lint,
		Fix:       c.Fix,
	}
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultOutput = intconfig.DefaultOutput
	EnvPrefix     = "SMARTGEN_"
)
