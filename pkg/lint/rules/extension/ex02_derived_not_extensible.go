package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(DerivedNotExtensible)
}

// DerivedNotExtensible rejects derived enums that are themselves extensible.
var DerivedNotExtensible = lint.RuleDef{
	ID:            "EX02",
	Name:          "extension.derived_must_not_be_extensible",
	Group:         "extension",
	Description:   "A derived enum must not itself be extensible.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The derived enum '%s' must not be extensible",
	Arity:         1,
	Check:         checkDerivedNotExtensible,
	Rationale:     "Extension is limited to one level. A second level would need the generated lookups of every ancestor.",
	BadExample:    "[SmartEnum<string>(IsExtensible = true)]\npublic partial class ExtendedColor : Color { }",
	GoodExample:   "[SmartEnum<string>]\npublic partial class ExtendedColor : Color { }",
}

func checkDerivedNotExtensible(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if m.Base() == nil || !m.IsExtensible {
		return nil
	}
	return []lint.Diagnostic{p.Report(extensibleAnchor(p), m.Name)}
}
