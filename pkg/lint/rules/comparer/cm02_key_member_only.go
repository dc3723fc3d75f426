package comparer

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(ComparerOnlyOnKeyMember)
}

// ComparerOnlyOnKeyMember restricts member-level comparer annotations to the
// key member. Complex value objects may put member equality comparers on any
// member.
var ComparerOnlyOnKeyMember = lint.RuleDef{
	ID:            "CM02",
	Name:          "comparer.comparer_only_on_key_member",
	Group:         "comparer",
	Description:   "A member-level comparer annotation is only valid on the key member.",
	Severity:      lint.SeverityError,
	MessageFormat: "The comparer annotation '%s' on '%s' is only valid on the key member of '%s'",
	Arity:         3,
	Check:         checkComparerOnlyOnKeyMember,
	Rationale:     "Only the key takes part in equality and ordering of keyed types. A comparer on another member would be silently ignored.",
	BadExample:    "[MemberEqualityComparer<ComparerAccessors.StringOrdinal, string>]\npublic string Note { get; }",
	GoodExample:   "[MemberEqualityComparer<ComparerAccessors.StringOrdinal, string>]\npublic string Key { get; }",
}

func checkComparerOnlyOnKeyMember(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	keyIndex := -1
	if k, ok := m.Key.Get(); ok {
		keyIndex = k.MemberIndex
	}
	var diags []lint.Diagnostic
	for _, c := range m.Comparers.Member {
		if c.Annotation == model.AnnotationMemberEqualityComparer && m.Category == model.CategoryComplexValueObject {
			continue
		}
		if keyIndex >= 0 && c.MemberIndex == keyIndex {
			continue
		}
		diags = append(diags, p.Report(p.At(c.Span, c.Node), c.Annotation, c.MemberName, m.Name))
	}
	return diags
}
