package comparer

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(ComparerTypeMismatch)
}

// ComparerTypeMismatch checks that a comparer compares the type of the
// member it is attached to.
var ComparerTypeMismatch = lint.RuleDef{
	ID:            "CM03",
	Name:          "comparer.comparer_type_mismatch",
	Group:         "comparer",
	Description:   "A comparer's element type must match the type of the compared member.",
	Severity:      lint.SeverityError,
	MessageFormat: "The comparer '%s' compares '%s' but '%s' is of type '%s'",
	Arity:         4,
	Check:         checkComparerTypeMismatch,
	Rationale:     "A comparer for another type does not compile against the generated equality members.",
	BadExample:    "[KeyEqualityComparer<ComparerAccessors.StringOrdinal, string>]\n[ValueObject<int>]",
	GoodExample:   "[KeyEqualityComparer<ComparerAccessors.StringOrdinal, string>]\n[ValueObject<string>]",
}

func checkComparerTypeMismatch(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	keyType, keyKnown := m.KeyType.Get()

	var diags []lint.Diagnostic
	check := func(c model.ComparerRef, owner string, target syntax.TypeRef) {
		if c.ElementType.IsZero() || target.IsZero() || c.ElementType.Equal(target) {
			return
		}
		diags = append(diags, p.Report(p.At(c.Span, c.Node),
			c.Accessor, c.ElementType.String(), owner, target.String()))
	}

	for _, c := range []*model.ComparerRef{m.Comparers.KeyEquality, m.Comparers.KeyOrdering} {
		if c != nil && c.Source == model.FromTypeAnnotation {
			check(*c, m.Name, c.MemberType)
		}
	}
	for _, c := range m.Comparers.Member {
		check(c, c.MemberName, c.MemberType)
	}
	if keyKnown {
		for _, c := range m.Comparers.Declared {
			c.Accessor = c.MemberName
			check(c, m.Name, keyType)
		}
	}
	return diags
}
