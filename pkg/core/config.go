package core

// ProjectConfig holds the configuration stored in smartgen.yaml.
type ProjectConfig struct {
	Snapshots []string    `koanf:"snapshots"` // Glob patterns for declaration snapshots
	Parallel  bool        `koanf:"parallel"`  // Run rules of one declaration concurrently
	Lint      *LintConfig `koanf:"lint"`
	Fix       *FixConfig  `koanf:"fix"`
}

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`

	// DocsURL is the base URL of rule documentation links (default: hosted reference)
	DocsURL string `koanf:"docs_url"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// FixConfig holds configuration for the fix command.
type FixConfig struct {
	// MaxPasses bounds the synthesize/apply loop per declaration (default: 8)
	MaxPasses int `koanf:"max_passes"`
}

// DefaultMaxFixPasses is used when FixConfig.MaxPasses is unset.
const DefaultMaxFixPasses = 8

// GetMaxPasses returns the configured pass limit or the default.
func (c *FixConfig) GetMaxPasses() int {
	if c == nil || c.MaxPasses <= 0 {
		return DefaultMaxFixPasses
	}
	return c.MaxPasses
}
