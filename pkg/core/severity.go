package core

import (
	"fmt"
	"strings"
)

// Severity indicates the importance of a diagnostic. Lower values are more
// severe, so a threshold filter keeps every s <= threshold.
type Severity int

// Severity levels for diagnostics.
const (
	SeverityError   Severity = iota // Blocks dependent fragments and fails check
	SeverityWarning                 // Reported, generation continues
	SeverityInfo
	SeverityHint
)

var severityNames = [...]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
	SeverityHint:    "hint",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// ParseSeverity reads a severity name case-insensitively. Unknown names
// yield SeverityWarning and false.
func ParseSeverity(s string) (Severity, bool) {
	for i, name := range severityNames {
		if strings.EqualFold(s, name) {
			return Severity(i), true
		}
	}
	return SeverityWarning, false
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", string(text))
	}
	*s = sev
	return nil
}

// RuleInfo describes a registered rule for documentation and tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Categories      []string `json:"categories,omitempty"` // Type categories the rule inspects; empty means all
	Arity           int      `json:"arity"`                // Number of message arguments
	Fixable         bool     `json:"fixable"`              // Diagnostics carry a fix descriptor
	Blocks          []string `json:"blocks,omitempty"`     // Fragment kinds suppressed by a diagnostic

	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}
