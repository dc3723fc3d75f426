package lint

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// Analyzer runs registered rules against extracted models.
type Analyzer struct {
	config   *Config
	registry *Registry
	parallel bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRegistry runs the rules of r instead of the global registry.
func WithRegistry(r *Registry) Option {
	return func(a *Analyzer) { a.registry = r }
}

// WithParallel runs the rules of one model concurrently.
func WithParallel(parallel bool) Option {
	return func(a *Analyzer) { a.parallel = parallel }
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, opts ...Option) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{config: config, registry: globalRegistry}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Rules returns the enabled rules that apply to category c, sorted by ID.
func (a *Analyzer) Rules(c model.Category) []RuleDef {
	var rules []RuleDef
	for _, rule := range a.registry.All() {
		if a.config.IsDisabled(rule.ID) || !rule.AppliesTo(c) {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// Analyze runs every enabled rule against the model and returns the
// diagnostics sorted by anchor.
func (a *Analyzer) Analyze(m *model.TypeModel, decl *syntax.Decl) []Diagnostic {
	if m == nil || decl == nil {
		return nil
	}

	rules := a.Rules(m.Category)
	results := make([][]Diagnostic, len(rules))

	run := func(i int) {
		rule := rules[i]
		diags := rule.Check(&Pass{
			Rule:    rule,
			Model:   m,
			Decl:    decl,
			Options: a.config.GetRuleOptions(rule.ID),
		})
		for j := range diags {
			diags[j].Severity = a.config.GetSeverity(rule.ID, diags[j].Severity)
		}
		results[i] = diags
	}

	if a.parallel {
		var g errgroup.Group
		var mu sync.Mutex
		var panicked any
		for i := range rules {
			g.Go(func() error {
				defer func() {
					if r := recover(); r != nil {
						mu.Lock()
						if panicked == nil {
							panicked = r
						}
						mu.Unlock()
					}
				}()
				run(i)
				return nil
			})
		}
		_ = g.Wait()
		// Re-raise on the calling goroutine so callers can recover it.
		if panicked != nil {
			panic(panicked)
		}
	} else {
		for i := range rules {
			run(i)
		}
	}

	var diagnostics []Diagnostic
	for _, r := range results {
		diagnostics = append(diagnostics, r...)
	}
	Sort(diagnostics)
	return diagnostics
}

// Blocked returns the fragment kinds the diagnostics suppress. Only
// error-severity diagnostics block generation.
func (a *Analyzer) Blocked(diags []Diagnostic) map[string]bool {
	blocked := make(map[string]bool)
	for _, d := range diags {
		if d.Severity != SeverityError {
			continue
		}
		rule, ok := a.registry.ByID(d.RuleID)
		if !ok {
			continue
		}
		for _, kind := range rule.Blocks {
			blocked[kind] = true
		}
	}
	return blocked
}

// Sort orders diagnostics by file, anchor start, anchor end, severity
// (most severe first), rule ID and message.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		di, dj := diags[i].Anchor, diags[j].Anchor
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start.Before(dj.Span.Start)
		}
		if di.Span.End != dj.Span.End {
			return di.Span.End.Before(dj.Span.End)
		}
		if diags[i].Severity != diags[j].Severity {
			return diags[i].Severity < diags[j].Severity
		}
		if diags[i].RuleID != diags[j].RuleID {
			return diags[i].RuleID < diags[j].RuleID
		}
		return diags[i].Message < diags[j].Message
	})
}

// Filter returns the diagnostics of the given rule.
func Filter(diags []Diagnostic, ruleID string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.RuleID == ruleID {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
