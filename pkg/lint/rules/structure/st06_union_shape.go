package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(UnionShape)
}

// UnionShape requires unions to be declared as classes or structs.
var UnionShape = lint.RuleDef{
	ID:            "ST06",
	Name:          "structure.union_shape_must_be_class_or_struct",
	Group:         "structure",
	Description:   "A union must be declared as a class or a struct.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryUnion},
	MessageFormat: "The union '%s' must be a class or a struct, not a %s",
	Arity:         2,
	Blocks:        []string{lint.BlockAll},
	Check:         checkUnionShape,
	Rationale:     "Records synthesize equality and a copy constructor of their own, which conflicts with the generated variant dispatch.",
	BadExample:    "[Union]\npublic abstract partial record Shape;",
	GoodExample:   "[Union]\npublic abstract partial class Shape { }",
}

func checkUnionShape(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.Shape.IsRecord() && m.Shape != model.ShapeInterface {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.TypeAnchor(), m.Name, m.Shape.String())}
}
