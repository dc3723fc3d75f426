package keymember

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(MappedMethodNotGeneric)
}

// MappedMethodNotGeneric reports a mapped key method with type parameters.
var MappedMethodNotGeneric = lint.RuleDef{
	ID:            "KM04",
	Name:          "keymember.mapped_method_not_generic",
	Group:         "keymember",
	Description:   "A mapped key method must not declare type parameters.",
	Severity:      lint.SeverityError,
	Categories:    keyCategories,
	MessageFormat: "The key method '%s' of '%s' must not be generic",
	Arity:         2,
	Check:         checkMappedMethodNotGeneric,
	Rationale:     "The generator calls the key method without type arguments.",
	BadExample:    "public T Value<T>() => default;",
	GoodExample:   "public int Value() => 1;",
}

func checkMappedMethodNotGeneric(p *lint.Pass) []lint.Diagnostic {
	return mappingFailure(p, model.GenericMethod, func(km *model.KeyMapping) []string {
		return []string{km.Target, p.Model.Name}
	})
}
