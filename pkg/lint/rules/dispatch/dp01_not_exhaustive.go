package dispatch

import (
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(SwitchNotExhaustive)
}

// SwitchNotExhaustive reports recorded Switch and Map calls that skip items
// or variants.
var SwitchNotExhaustive = lint.RuleDef{
	ID:            "DP01",
	Name:          "dispatch.switch_not_exhaustive",
	Group:         "dispatch",
	Description:   "Calls to Switch and Map should handle every item or variant.",
	Severity:      lint.SeverityInfo,
	Categories:    []model.Category{model.CategoryEnum, model.CategoryValidatableEnum, model.CategoryUnion},
	MessageFormat: "The call to '%s' on '%s' does not handle %s",
	Arity:         3,
	Check:         checkSwitchNotExhaustive,
	Rationale:     "Exhaustive helpers exist so that adding an item surfaces every place that must handle it.",
	BadExample:    "color.Switch(red: () => ..., green: () => ...); // Blue missing",
	GoodExample:   "color.Switch(red: () => ..., green: () => ..., blue: () => ...);",
}

func checkSwitchNotExhaustive(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	var expected []string
	for _, item := range m.Items {
		expected = append(expected, item.Name)
	}
	for _, v := range m.Variants {
		if !v.IsAbstract {
			expected = append(expected, v.Name)
		}
	}

	var diags []lint.Diagnostic
	for _, call := range m.Dispatches {
		handled := make(map[string]bool, len(call.Cases))
		for _, c := range call.Cases {
			handled[strings.ToLower(c)] = true
		}
		var missing []string
		for _, name := range expected {
			if !handled[strings.ToLower(name)] {
				missing = append(missing, "'"+name+"'")
			}
		}
		if len(missing) == 0 {
			continue
		}
		diags = append(diags, p.Report(p.At(call.Span, m.TypeNode()),
			call.Method, m.Name, strings.Join(missing, ", ")))
	}
	return diags
}
