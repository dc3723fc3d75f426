package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(NoPrimaryConstructor)
}

// NoPrimaryConstructor rejects primary constructors on annotated types.
var NoPrimaryConstructor = lint.RuleDef{
	ID:            "ST05",
	Name:          "structure.no_primary_constructor",
	Group:         "structure",
	Description:   "Annotated types must not declare a primary constructor.",
	Severity:      lint.SeverityError,
	MessageFormat: "The type '%s' must not have a primary constructor",
	Arity:         1,
	Blocks:        []string{gen.KindConstructor},
	Check:         checkNoPrimaryConstructor,
	Rationale:     "The generator emits the one private constructor that assigns the key. A primary constructor would be a second, public entry point.",
	BadExample:    "[ValueObject<int>]\npublic partial class Age(int value) { }",
	GoodExample:   "[ValueObject<int>]\npublic partial class Age { }",
}

func checkNoPrimaryConstructor(p *lint.Pass) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, c := range p.Model.Constructors {
		if c.IsPrimary {
			diags = append(diags, p.Report(p.At(c.Span, p.Model.TypeNode()), p.Model.Name))
		}
	}
	return diags
}
