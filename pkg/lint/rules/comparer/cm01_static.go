package comparer

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(KeyComparerMustBeStatic)
}

// KeyComparerMustBeStatic requires declared comparer accessors to be static.
var KeyComparerMustBeStatic = lint.RuleDef{
	ID:            "CM01",
	Name:          "comparer.key_comparer_must_be_static",
	Group:         "comparer",
	Description:   "A declared key comparer member must be static.",
	Severity:      lint.SeverityError,
	Categories:    keyCategories,
	MessageFormat: "The key comparer '%s' of '%s' must be static",
	Arity:         2,
	Check:         checkKeyComparerMustBeStatic,
	Rationale:     "Lookups are built in static initializers, before any instance exists.",
	BadExample:    "public IEqualityComparer<string> KeyEqualityComparer => StringComparer.Ordinal;",
	GoodExample:   "public static IEqualityComparer<string> KeyEqualityComparer => StringComparer.Ordinal;",
}

func checkKeyComparerMustBeStatic(p *lint.Pass) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, c := range p.Model.Comparers.Declared {
		if c.IsStatic {
			continue
		}
		diags = append(diags, p.Report(p.At(c.Span, c.Node), c.MemberName, p.Model.Name))
	}
	return diags
}
