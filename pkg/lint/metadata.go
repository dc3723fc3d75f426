package lint

import (
	"strings"
	"sync/atomic"
)

// DefaultDocsBaseURL is the hosted rule reference.
const DefaultDocsBaseURL = "https://smartgen.dev/docs/rules"

var docsBaseURL atomic.Value // string; empty means the default

// BuildDocURL returns the documentation page of a rule.
func BuildDocURL(ruleID string) string {
	base, _ := docsBaseURL.Load().(string)
	if base == "" {
		base = DefaultDocsBaseURL
	}
	return base + "/" + strings.ToLower(ruleID)
}

// SetDocsBaseURL points documentation links at another site, such as a
// local docs server.
func SetDocsBaseURL(url string) {
	docsBaseURL.Store(strings.TrimSuffix(url, "/"))
}

// ResetDocsBaseURL restores DefaultDocsBaseURL.
func ResetDocsBaseURL() {
	docsBaseURL.Store("")
}

// ImpactLevel scores a diagnostic on a 0-100 scale for tooling that ranks
// findings.
type ImpactLevel int

// Predefined impact scores.
const (
	ImpactLow      ImpactLevel = 20
	ImpactMedium   ImpactLevel = 50
	ImpactHigh     ImpactLevel = 70
	ImpactCritical ImpactLevel = 90
)

// Int returns the impact score as an integer.
func (l ImpactLevel) Int() int {
	return int(l)
}

// defaultImpact is used for rules that declare no impact of their own.
func defaultImpact(s Severity) ImpactLevel {
	switch s {
	case SeverityError:
		return ImpactHigh
	case SeverityWarning:
		return ImpactMedium
	}
	return ImpactLow
}
