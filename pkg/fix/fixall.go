package fix

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/smartgen/pkg/core"
	"github.com/leapstack-labs/smartgen/pkg/extract"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// ErrNoFixpoint is returned by FixAll when fixable diagnostics remain after
// the pass limit.
var ErrNoFixpoint = errors.New("fixes did not converge")

// Result is the outcome of FixAll.
type Result struct {
	Decl    *syntax.Decl
	Applied []Rewrite
	Passes  int
	// Remaining are the diagnostics of the final declaration.
	Remaining []lint.Diagnostic
}

// Changed reports whether any rewrite was applied.
func (r *Result) Changed() bool {
	return len(r.Applied) > 0
}

// FixAll repeatedly extracts, analyzes and applies every available rewrite
// until no fixable diagnostic is left. Within a pass at most one rewrite is
// applied per node; the others wait for the next pass, which sees the
// updated node. maxPasses <= 0 uses core.DefaultMaxFixPasses.
func FixAll(decl *syntax.Decl, a *lint.Analyzer, maxPasses int) (*Result, error) {
	if decl == nil {
		return nil, fmt.Errorf("fix all: nil declaration: %w", ErrNodeNotFound)
	}
	if maxPasses <= 0 {
		maxPasses = core.DefaultMaxFixPasses
	}

	res := &Result{Decl: decl}
	for res.Passes < maxPasses {
		m := extract.Extract(res.Decl)
		diags := a.Analyze(m, res.Decl)
		res.Remaining = diags

		var pending []Rewrite
		touched := make(map[string]bool)
		for _, d := range diags {
			rw, ok := Synthesize(d, m, res.Decl)
			if !ok || touched[rw.Node.String()] {
				continue
			}
			touched[rw.Node.String()] = true
			pending = append(pending, rw)
		}
		if len(pending) == 0 {
			return res, nil
		}

		res.Passes++
		progressed := false
		for _, rw := range pending {
			next, err := Apply(res.Decl, rw)
			if err != nil {
				return res, err
			}
			if !Equal(next, res.Decl) {
				progressed = true
				res.Applied = append(res.Applied, rw)
			}
			res.Decl = next
		}
		if !progressed {
			return res, fmt.Errorf("%s: %d rewrites made no change: %w", decl.Name, len(pending), ErrNoFixpoint)
		}
	}

	m := extract.Extract(res.Decl)
	res.Remaining = a.Analyze(m, res.Decl)
	for _, d := range res.Remaining {
		if _, ok := Synthesize(d, m, res.Decl); ok {
			return res, fmt.Errorf("%s: still fixable after %d passes: %w", decl.Name, maxPasses, ErrNoFixpoint)
		}
	}
	return res, nil
}
