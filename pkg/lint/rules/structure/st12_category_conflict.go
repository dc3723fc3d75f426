package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(CategoryConflict)
}

// CategoryConflict reports category annotations beyond the one that decided
// the category.
var CategoryConflict = lint.RuleDef{
	ID:            "ST12",
	Name:          "structure.category_conflict",
	Group:         "structure",
	Description:   "A type may carry only one category annotation.",
	Severity:      lint.SeverityError,
	MessageFormat: "The type '%s' is already a %s; the annotation '%s' is ignored",
	Arity:         3,
	Check:         checkCategoryConflict,
	Rationale:     "Each category generates a different member set. Two categories on one type cannot both be honored.",
	BadExample:    "[SmartEnum<string>]\n[ValueObject<string>]\npublic partial class Code { }",
	GoodExample:   "[SmartEnum<string>]\npublic partial class Code { }",
}

func checkCategoryConflict(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	var diags []lint.Diagnostic
	for _, c := range m.CategoryConflicts {
		diags = append(diags, p.Report(p.At(c.Annotation.Span, c.Node()),
			m.Name, m.Category.String(), c.Annotation.Name))
	}
	return diags
}
