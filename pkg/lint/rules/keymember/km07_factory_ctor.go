package keymember

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(FactoryNeedsConstructor)
}

// FactoryNeedsConstructor checks object factories that claim a matching
// constructor.
var FactoryNeedsConstructor = lint.RuleDef{
	ID:            "KM07",
	Name:          "keymember.factory_needs_matching_constructor",
	Group:         "keymember",
	Description:   "An object factory claiming a corresponding constructor must have one.",
	Severity:      lint.SeverityError,
	MessageFormat: "The object factory of '%s' requires a constructor with a single parameter of type '%s'",
	Arity:         2,
	Check:         checkFactoryNeedsConstructor,
	Rationale:     "Serializers use the corresponding constructor to rebuild instances from the factory's value type.",
	BadExample:    "[ObjectFactory<string>(HasCorrespondingConstructor = true)]\npublic partial class Code { }",
	GoodExample:   "[ObjectFactory<string>(HasCorrespondingConstructor = true)]\npublic partial class Code\n{\n    private Code(string value) { }\n}",
}

func checkFactoryNeedsConstructor(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	var diags []lint.Diagnostic
	for _, f := range m.Factories {
		if !f.HasCorrespondingConstructor || f.ValueType.IsZero() {
			continue
		}
		if hasSingleParamCtor(m.Constructors, f.ValueType) {
			continue
		}
		diags = append(diags, p.Report(p.At(f.Span, f.Node()), m.Name, f.ValueType.String()))
	}
	return diags
}

func hasSingleParamCtor(ctors []model.Constructor, t syntax.TypeRef) bool {
	for _, c := range ctors {
		if len(c.Params) == 1 && c.Params[0].Type.Equal(t) {
			return true
		}
	}
	return false
}
