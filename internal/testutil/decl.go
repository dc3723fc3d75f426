package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/pkg/extract"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// Decl parses a YAML snapshot document and returns its first type.
func Decl(t testing.TB, doc string) *syntax.Decl {
	t.Helper()
	snap, err := syntax.ParseSnapshot([]byte(doc))
	require.NoError(t, err)
	require.NotEmpty(t, snap.Types, "snapshot has no types")
	return snap.Types[0]
}

// Lint runs the globally registered rules over the first type of doc and
// returns the diagnostics of ruleID.
func Lint(t testing.TB, doc, ruleID string) []lint.Diagnostic {
	t.Helper()
	return LintWith(t, lint.NewConfig(), doc, ruleID)
}

// LintWith is Lint with an explicit configuration.
func LintWith(t testing.TB, cfg *lint.Config, doc, ruleID string) []lint.Diagnostic {
	t.Helper()
	decl := Decl(t, doc)
	diags := lint.NewAnalyzer(cfg).Analyze(extract.Extract(decl), decl)
	return lint.Filter(diags, ruleID)
}
