package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(EnumerationEmpty)
}

// EnumerationEmpty requires at least one item.
var EnumerationEmpty = lint.RuleDef{
	ID:            "EN06",
	Name:          "enum.enumeration_empty",
	Group:         "enum",
	Description:   "A smart enum must declare at least one item.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The enumeration '%s' has no items",
	Arity:         1,
	Blocks:        []string{gen.KindSwitch, gen.KindMap},
	Check:         checkEnumerationEmpty,
	Rationale:     "An enum without items has no valid value. Exhaustive dispatch over zero items cannot be generated.",
	BadExample:    "[SmartEnum<string>]\npublic partial class Color { }",
	GoodExample:   "[SmartEnum<string>]\npublic partial class Color\n{\n    public static readonly Color Red = new(\"red\");\n}",
}

func checkEnumerationEmpty(p *lint.Pass) []lint.Diagnostic {
	if len(p.Model.Items) > 0 {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.TypeAnchor(), p.Model.DisplayName)}
}
