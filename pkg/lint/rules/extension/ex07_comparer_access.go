package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(KeyComparerAccessibility)
}

// KeyComparerAccessibility requires declared comparer members of extensible
// enums to be visible to derived enums.
var KeyComparerAccessibility = lint.RuleDef{
	ID:            "EX07",
	Name:          "extension.key_comparer_accessibility",
	Group:         "extension",
	Description:   "A declared key comparer of an extensible enum must be protected or public.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The key comparer '%s' of the extensible enum '%s' must be protected or public",
	Arity:         2,
	Check:         checkKeyComparerAccessibility,
	Rationale:     "Derived enums reuse the base comparer for their own lookups.",
	BadExample:    "private static IEqualityComparer<string> KeyEqualityComparer => StringComparer.Ordinal;",
	GoodExample:   "protected static IEqualityComparer<string> KeyEqualityComparer => StringComparer.Ordinal;",
}

func checkKeyComparerAccessibility(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.IsExtensible {
		return nil
	}
	var diags []lint.Diagnostic
	for _, c := range m.Comparers.Declared {
		switch c.Access {
		case syntax.AccessPublic, syntax.AccessProtected, syntax.AccessProtectedInternal:
			continue
		}
		diags = append(diags, p.Report(p.At(c.Span, c.Node), c.MemberName, m.Name))
	}
	return diags
}
