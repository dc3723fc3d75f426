package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(NonValidatableMustBeClass)
}

// NonValidatableMustBeClass rejects struct shapes for non-validatable enums.
var NonValidatableMustBeClass = lint.RuleDef{
	ID:            "EN04",
	Name:          "enum.non_validatable_must_be_class",
	Group:         "enum",
	Description:   "A non-validatable enum cannot be a struct.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryEnum},
	MessageFormat: "The non-validatable enum '%s' must be a class",
	Arity:         1,
	Blocks:        []string{lint.BlockAll},
	Check:         checkNonValidatableMustBeClass,
	Rationale:     "The default value of a struct is an instance that is not one of the items. Only validatable enums can represent such an instance.",
	BadExample:    "[SmartEnum<int>]\npublic readonly partial struct Level { }",
	GoodExample:   "[SmartEnum<int>]\npublic sealed partial class Level { }",
}

func checkNonValidatableMustBeClass(p *lint.Pass) []lint.Diagnostic {
	if !p.Model.Shape.IsStruct() {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.TypeAnchor(), p.Model.Name).WithRelated(p.MarkerInfo()...)}
}
