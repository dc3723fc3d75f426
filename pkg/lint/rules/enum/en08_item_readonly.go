package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(ItemReadOnly)
}

// ItemReadOnly requires item fields to be read-only.
var ItemReadOnly = lint.RuleDef{
	ID:            "EN08",
	Name:          "enum.item_must_be_readonly",
	Group:         "enum",
	Description:   "Items of a smart enum must be static read-only fields.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The item '%s' of '%s' must be read-only",
	Arity:         2,
	Fixable:       true,
	Check:         checkItemReadOnly,
	Rationale:     "A writable item field lets callers replace an instance after lookups were built, breaking Get and equality.",
	BadExample:    "public static Color Red = new(\"red\");",
	GoodExample:   "public static readonly Color Red = new(\"red\");",
	Fix:           "Add the readonly modifier.",
}

func checkItemReadOnly(p *lint.Pass) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, item := range p.Model.Items {
		if item.IsStaticReadOnlyField() {
			continue
		}
		d := p.Report(p.At(item.NameSpan, item.Node()), item.Name, p.Model.Name)
		diags = append(diags, d.WithFix(lint.FixDescriptor{
			Title:  "Make '" + item.Name + "' read-only",
			Node:   item.Node(),
			Params: map[string]string{"modifier": "readonly"},
		}))
	}
	return diags
}
