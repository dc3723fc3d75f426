package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/pkg/core"
	"github.com/leapstack-labs/smartgen/pkg/extract"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
	"github.com/leapstack-labs/smartgen/pkg/token"
)

func span(line, col, endCol int) token.Span {
	return token.Span{
		Start: token.Position{Line: line, Column: col},
		End:   token.Position{Line: line, Column: endCol},
	}
}

// itemRule reports every item of an enum.
var itemRule = lint.RuleDef{
	ID:            "TS01",
	Name:          "test.items",
	Group:         "test",
	Severity:      lint.SeverityWarning,
	Categories:    []model.Category{model.CategoryEnum},
	MessageFormat: "item '%s'",
	Arity:         1,
	Check: func(p *lint.Pass) []lint.Diagnostic {
		var diags []lint.Diagnostic
		for _, item := range p.Model.Items {
			diags = append(diags, p.Report(p.At(item.NameSpan, item.Node()), item.Name))
		}
		return diags
	},
}

// typeRule reports the type once for every category.
var typeRule = lint.RuleDef{
	ID:            "TS02",
	Name:          "test.type",
	Group:         "test",
	Severity:      lint.SeverityError,
	MessageFormat: "type '%s'",
	Arity:         1,
	Blocks:        []string{"equals"},
	Check: func(p *lint.Pass) []lint.Diagnostic {
		return []lint.Diagnostic{p.Report(p.TypeAnchor(), p.Model.Name)}
	},
}

// optionRule echoes its "label" option.
var optionRule = lint.RuleDef{
	ID:            "TS03",
	Name:          "test.option",
	Group:         "test",
	Severity:      lint.SeverityInfo,
	MessageFormat: "label %s",
	Arity:         1,
	ConfigKeys:    []string{"label"},
	Check: func(p *lint.Pass) []lint.Diagnostic {
		label := lint.GetStringOption(p.Options, "label", "none")
		return []lint.Diagnostic{p.Report(p.TypeAnchor(), label)}
	},
}

func testRegistry(rules ...lint.RuleDef) *lint.Registry {
	r := lint.NewRegistry()
	for _, rule := range rules {
		r.Register(rule)
	}
	return r
}

const colorDoc = `
file: Color.cs
types:
  - name: Color
    name_span: "2:14-2:19"
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, name_span: "4:33-4:36", type: {name: Color}, modifiers: [public, static, readonly]}
      - {kind: field, name: Blue, name_span: "3:33-3:37", type: {name: Color}, modifiers: [public, static, readonly]}
`

func analyze(t *testing.T, a *lint.Analyzer, doc string) []lint.Diagnostic {
	t.Helper()
	snap, err := syntax.ParseSnapshot([]byte(doc))
	require.NoError(t, err)
	decl := snap.Types[0]
	return a.Analyze(extract.Extract(decl), decl)
}

func TestAnalyzer_SortsByAnchor(t *testing.T) {
	a := lint.NewAnalyzer(nil, lint.WithRegistry(testRegistry(itemRule, typeRule)))
	diags := analyze(t, a, colorDoc)

	require.Len(t, diags, 3)
	assert.Equal(t, "type 'Color'", diags[0].Message)
	assert.Equal(t, "item 'Blue'", diags[1].Message)
	assert.Equal(t, "item 'Red'", diags[2].Message)
	for _, d := range diags {
		assert.Equal(t, "Color.cs", d.Anchor.File)
	}
}

func TestAnalyzer_CategoryFilter(t *testing.T) {
	a := lint.NewAnalyzer(nil, lint.WithRegistry(testRegistry(itemRule, typeRule)))
	diags := analyze(t, a, `
types:
  - name: Age
    kind: class
    annotations: [{name: ValueObject, type_args: [{name: int}]}]
`)
	require.Len(t, diags, 1)
	assert.Equal(t, "TS02", diags[0].RuleID)
}

func TestAnalyzer_UnannotatedTypeHasNoRules(t *testing.T) {
	a := lint.NewAnalyzer(nil, lint.WithRegistry(testRegistry(typeRule)))
	assert.Empty(t, analyze(t, a, "types: [{name: Plain, kind: class}]"))
	assert.Empty(t, a.Rules(model.CategoryUnknown))
}

func TestAnalyzer_NilInputs(t *testing.T) {
	a := lint.NewAnalyzer(nil)
	assert.Nil(t, a.Analyze(nil, nil))
	assert.Nil(t, a.Analyze(&model.TypeModel{}, nil))
}

func TestConfig_DisableRule(t *testing.T) {
	cfg := lint.NewConfig().Disable("TS01")
	a := lint.NewAnalyzer(cfg, lint.WithRegistry(testRegistry(itemRule, typeRule)))
	diags := analyze(t, a, colorDoc)
	require.Len(t, diags, 1)
	assert.Equal(t, "TS02", diags[0].RuleID)
}

func TestConfig_SeverityOverride(t *testing.T) {
	cfg := lint.NewConfig().SetSeverity("TS02", lint.SeverityHint)
	a := lint.NewAnalyzer(cfg, lint.WithRegistry(testRegistry(typeRule)))
	diags := analyze(t, a, colorDoc)
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityHint, diags[0].Severity)
	assert.Empty(t, a.Blocked(diags), "downgraded diagnostics must not block")
}

func TestConfig_RuleOptions(t *testing.T) {
	reg := testRegistry(optionRule)

	diags := analyze(t, lint.NewAnalyzer(nil, lint.WithRegistry(reg)), colorDoc)
	require.Len(t, diags, 1)
	assert.Equal(t, "label none", diags[0].Message)

	cfg := lint.NewConfig().SetRuleOptions("TS03", map[string]any{"label": "custom"})
	diags = analyze(t, lint.NewAnalyzer(cfg, lint.WithRegistry(reg)), colorDoc)
	require.Len(t, diags, 1)
	assert.Equal(t, "label custom", diags[0].Message)
}

func TestConfig_FromCore(t *testing.T) {
	cfg, err := lint.NewConfigFromCore(&core.LintConfig{
		Disabled: []string{"EN07"},
		Severity: map[string]string{"CM04": "error"},
		Rules:    map[string]core.RuleOptions{"EN09": {"reserved": []any{"Default"}}},
	})
	require.NoError(t, err)
	assert.True(t, cfg.IsDisabled("EN07"))
	assert.Equal(t, lint.SeverityError, cfg.GetSeverity("CM04", lint.SeverityWarning))
	assert.Equal(t, lint.SeverityWarning, cfg.GetSeverity("CM05", lint.SeverityWarning))
	assert.Equal(t, []string{"Default"}, lint.GetStringSliceOption(cfg.GetRuleOptions("EN09"), "reserved", nil))

	_, err = lint.NewConfigFromCore(&core.LintConfig{Severity: map[string]string{"CM04": "fatal"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lint.severity.CM04")

	cfg, err = lint.NewConfigFromCore(nil)
	require.NoError(t, err)
	assert.False(t, cfg.IsDisabled("EN07"))
}

func TestAnalyzer_Blocked(t *testing.T) {
	reg := testRegistry(itemRule, typeRule)
	a := lint.NewAnalyzer(nil, lint.WithRegistry(reg))
	diags := analyze(t, a, colorDoc)
	assert.Equal(t, map[string]bool{"equals": true}, a.Blocked(diags))
	assert.True(t, lint.HasErrors(diags))
	assert.Len(t, lint.Filter(diags, "TS01"), 2)
}

func TestAnalyzer_ParallelMatchesSequential(t *testing.T) {
	reg := testRegistry(itemRule, typeRule, optionRule)
	seq := analyze(t, lint.NewAnalyzer(nil, lint.WithRegistry(reg)), colorDoc)
	par := analyze(t, lint.NewAnalyzer(nil, lint.WithRegistry(reg), lint.WithParallel(true)), colorDoc)
	assert.Equal(t, seq, par)
}

func TestAnalyzer_ParallelPanicReachesCaller(t *testing.T) {
	broken := lint.RuleDef{
		ID:            "TS09",
		Name:          "test.broken",
		Group:         "test",
		MessageFormat: "%s %s",
		Arity:         2,
		Check: func(p *lint.Pass) []lint.Diagnostic {
			return []lint.Diagnostic{p.Report(p.TypeAnchor(), "only one")}
		},
	}
	a := lint.NewAnalyzer(nil, lint.WithRegistry(testRegistry(broken, typeRule)), lint.WithParallel(true))
	assert.Panics(t, func() { analyze(t, a, colorDoc) })
}

func TestRuleDef_Report(t *testing.T) {
	d := typeRule.Report(lint.Anchor{File: "A.cs", Span: span(1, 1, 2)}, "Color")
	assert.Equal(t, "TS02", d.RuleID)
	assert.Equal(t, []string{"Color"}, d.Args)
	assert.Equal(t, lint.ImpactHigh.Int(), d.ImpactScore)
	assert.Equal(t, lint.BuildDocURL("TS02"), d.DocumentationURL)
	assert.False(t, d.AutoFixable)

	fixed := d.WithFix(lint.FixDescriptor{Title: "t", Node: syntax.TypeNode()})
	assert.True(t, fixed.AutoFixable)
	assert.Nil(t, d.Fix, "WithFix must not modify the receiver")

	assert.Panics(t, func() { typeRule.Report(lint.Anchor{}) })
}

func TestRuleDef_AppliesTo(t *testing.T) {
	assert.True(t, itemRule.AppliesTo(model.CategoryEnum))
	assert.False(t, itemRule.AppliesTo(model.CategoryUnion))
	assert.True(t, typeRule.AppliesTo(model.CategoryUnion))
	assert.False(t, typeRule.AppliesTo(model.CategoryUnknown))
}

func TestSort_SeverityThenID(t *testing.T) {
	at := lint.Anchor{File: "A.cs", Span: span(1, 1, 5)}
	diags := []lint.Diagnostic{
		{RuleID: "B", Severity: lint.SeverityWarning, Anchor: at},
		{RuleID: "C", Severity: lint.SeverityError, Anchor: at},
		{RuleID: "A", Severity: lint.SeverityWarning, Anchor: at},
		{RuleID: "Z", Severity: lint.SeverityHint, Anchor: lint.Anchor{File: "0.cs", Span: span(9, 1, 2)}},
	}
	lint.Sort(diags)
	var ids []string
	for _, d := range diags {
		ids = append(ids, d.RuleID)
	}
	assert.Equal(t, []string{"Z", "C", "A", "B"}, ids)
}

func TestBuildDocURL(t *testing.T) {
	t.Cleanup(lint.ResetDocsBaseURL)
	assert.Equal(t, "https://smartgen.dev/docs/rules/en06", lint.BuildDocURL("EN06"))
	lint.SetDocsBaseURL("http://localhost:8080/rules/")
	assert.Equal(t, "http://localhost:8080/rules/en06", lint.BuildDocURL("EN06"))
}
