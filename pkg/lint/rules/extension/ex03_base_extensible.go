package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(BaseMustBeExtensible)
}

// BaseMustBeExtensible rejects extending an enum that does not allow it.
var BaseMustBeExtensible = lint.RuleDef{
	ID:            "EX03",
	Name:          "extension.base_must_be_extensible",
	Group:         "extension",
	Description:   "An enum may only extend an extensible base.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The enum '%s' cannot extend '%s' because it is not extensible",
	Arity:         2,
	Check:         checkBaseMustBeExtensible,
	Rationale:     "A non-extensible enum generates lookups that assume its item set is final.",
	BadExample:    "[SmartEnum<string>]\npublic partial class Color { }\n\npublic partial class ExtendedColor : Color { }",
	GoodExample:   "[SmartEnum<string>(IsExtensible = true)]\npublic partial class Color { }",
}

func checkBaseMustBeExtensible(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	base := m.Base()
	if base == nil || base.IsExtensible {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.TypeAnchor(), m.Name, base.Name)}
}
