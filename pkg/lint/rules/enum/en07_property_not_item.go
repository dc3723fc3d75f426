package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(PropertyNotItem)
}

// PropertyNotItem flags static properties shaped like items when the enum
// has no field items at all.
var PropertyNotItem = lint.RuleDef{
	ID:            "EN07",
	Name:          "enum.property_not_an_item",
	Group:         "enum",
	Description:   "A static property is never treated as an item.",
	Severity:      lint.SeverityWarning,
	Categories:    enumCategories,
	MessageFormat: "The static property '%s' of '%s' is not an item; items must be static read-only fields",
	Arity:         2,
	Check:         checkPropertyNotItem,
	Rationale:     "A property may return a new instance on every access, so it cannot be one of a fixed set of singletons.",
	BadExample:    "public static Color Red { get; } = new(\"red\");",
	GoodExample:   "public static readonly Color Red = new(\"red\");",
}

func checkPropertyNotItem(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if len(m.Items) > 0 {
		return nil
	}
	var diags []lint.Diagnostic
	for _, prop := range m.ItemProperties {
		diags = append(diags, p.Report(p.At(prop.NameSpan, prop.Node()), prop.Name, m.Name))
	}
	return diags
}
