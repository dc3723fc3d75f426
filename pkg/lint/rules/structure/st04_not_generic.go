package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(TypeMustNotBeGeneric)
}

// TypeMustNotBeGeneric rejects annotated types with type parameters.
var TypeMustNotBeGeneric = lint.RuleDef{
	ID:            "ST04",
	Name:          "structure.type_must_not_be_generic",
	Group:         "structure",
	Description:   "Annotated types must not declare type parameters.",
	Severity:      lint.SeverityError,
	MessageFormat: "The type '%s' must not be generic",
	Arity:         1,
	Blocks:        []string{lint.BlockAll},
	Check:         checkTypeMustNotBeGeneric,
	Rationale:     "Items and static factories are shared per closed type. A generic definition has no single closed set of instances.",
	BadExample:    "[SmartEnum<string>]\npublic partial class Color<T> { }",
	GoodExample:   "[SmartEnum<string>]\npublic partial class Color { }",
}

func checkTypeMustNotBeGeneric(p *lint.Pass) []lint.Diagnostic {
	if p.Model.GenericArity == 0 {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.TypeAnchor(), p.Model.DisplayName)}
}
