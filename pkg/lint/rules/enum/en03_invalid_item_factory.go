package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(InvalidItemFactory)
}

// InvalidItemFactory requires abstract validatable enums to provide the
// invalid-item factory themselves.
var InvalidItemFactory = lint.RuleDef{
	ID:            "EN03",
	Name:          "enum.abstract_needs_invalid_factory",
	Group:         "enum",
	Description:   "An abstract validatable enum must define a static invalid-item factory.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryValidatableEnum},
	MessageFormat: "The abstract validatable enum '%s' must implement the static method '%s'",
	Arity:         2,
	Fixable:       true,
	Check:         checkInvalidItemFactory,
	Rationale:     "Validatable enums create an instance for unknown keys. An abstract type cannot be instantiated by generated code, so the user has to supply the factory.",
	BadExample:    "[SmartEnum<string>(IsValidatable = true)]\npublic abstract partial class Op { }",
	GoodExample:   "[SmartEnum<string>(IsValidatable = true)]\npublic abstract partial class Op\n{\n    private static Op CreateInvalidItem(string key) => new Unknown(key);\n}",
	Fix:           "A throwing stub is inserted; replace its body with a concrete invalid item.",
}

func checkInvalidItemFactory(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.IsAbstract || m.HasInvalidItemFactory {
		return nil
	}
	d := p.Report(p.TypeAnchor(), m.Name, model.InvalidItemFactory)
	kt, ok := m.KeyType.Get()
	if !ok {
		return []lint.Diagnostic{d}
	}
	return []lint.Diagnostic{d.WithFix(lint.FixDescriptor{
		Title: "Insert a throwing '" + model.InvalidItemFactory + "' stub",
		Node:  m.TypeNode(),
		Params: map[string]string{
			"type":     m.Name,
			"key_type": kt.String(),
		},
	})}
}
