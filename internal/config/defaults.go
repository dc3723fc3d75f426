// Package config loads the project configuration file. It is free of CLI
// concerns so tooling other than the command line can share it.
package config

import "github.com/leapstack-labs/smartgen/pkg/core"

// ProjectConfig is the configuration stored in smartgen.yaml.
type ProjectConfig = core.ProjectConfig

// Default configuration values.
const (
	DefaultSnapshotsDir = "snapshots"
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultSnapshots returns the snapshot patterns used when none are configured.
func DefaultSnapshots() []string {
	return []string{DefaultSnapshotsDir}
}

// ApplyDefaults applies default values to a ProjectConfig.
func ApplyDefaults(c *core.ProjectConfig) {
	if c == nil {
		return
	}
	if len(c.Snapshots) == 0 {
		c.Snapshots = DefaultSnapshots()
	}
	if c.Lint == nil {
		c.Lint = &core.LintConfig{}
	}
	if c.Fix == nil {
		c.Fix = &core.FixConfig{}
	}
	if c.Fix.MaxPasses <= 0 {
		c.Fix.MaxPasses = core.DefaultMaxFixPasses
	}
}
