// Package core defines the shared language of the smartgen system.
//
// This package contains:
//   - Diagnostic severities and rule metadata (Severity, RuleInfo)
//   - Configuration types (ProjectConfig, LintConfig, FixConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
