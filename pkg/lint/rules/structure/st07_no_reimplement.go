package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(DerivedNoReimplement)
}

// DerivedNoReimplement rejects nested derived types that declare the root's
// contract again.
var DerivedNoReimplement = lint.RuleDef{
	ID:            "ST07",
	Name:          "structure.derived_type_no_reimplement",
	Group:         "structure",
	Description:   "A nested derived type must not re-declare the contract of its root type.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryEnum, model.CategoryValidatableEnum, model.CategoryUnion},
	MessageFormat: "The derived type '%s' must not re-implement the contract of '%s'",
	Arity:         2,
	Check:         checkDerivedNoReimplement,
	Rationale:     "The contract belongs to the root type. A derived type re-declaring it would receive generated members of its own.",
	BadExample:    "private sealed class Special : Op, IEnum<string> { }",
	GoodExample:   "private sealed class Special : Op { }",
}

func checkDerivedNoReimplement(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	var diags []lint.Diagnostic
	for _, group := range [][]model.NestedTypeDescriptor{m.InnerTypes, m.Variants} {
		for _, n := range group {
			if n.Reimplements {
				diags = append(diags, p.Report(p.At(n.NameSpan, n.Node()), n.Name, m.Name))
			}
		}
	}
	return diags
}
