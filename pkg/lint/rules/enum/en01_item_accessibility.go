package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(ItemAccessibility)
}

// ItemAccessibility requires every item field to be public.
var ItemAccessibility = lint.RuleDef{
	ID:            "EN01",
	Name:          "enum.item_accessibility",
	Group:         "enum",
	Description:   "Items of a smart enum must be public.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The item '%s' of '%s' must be public",
	Arity:         2,
	Fixable:       true,
	Check:         checkItemAccessibility,
	Rationale:     "Items are the closed set of instances callers pick from. A hidden item can still be returned by Get and TryGet, which leaks an instance callers cannot name.",
	BadExample:    "[SmartEnum<string>]\npublic partial class Color\n{\n    static readonly Color Red = new(\"red\");\n}",
	GoodExample:   "[SmartEnum<string>]\npublic partial class Color\n{\n    public static readonly Color Red = new(\"red\");\n}",
	Fix:           "Declare the item public. Modifiers are reordered to put the accessibility first.",
}

func checkItemAccessibility(p *lint.Pass) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, item := range p.Model.Items {
		if item.Access == syntax.AccessPublic {
			continue
		}
		d := p.Report(p.At(item.NameSpan, item.Node()), item.Name, p.Model.Name)
		diags = append(diags, d.WithFix(lint.FixDescriptor{
			Title:  "Make '" + item.Name + "' public",
			Node:   item.Node(),
			Params: map[string]string{"access": syntax.AccessPublic.String()},
		}))
	}
	return diags
}
