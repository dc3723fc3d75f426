package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(ValidatableRequiresValidatableBase)
}

// ValidatableRequiresValidatableBase rejects validatable enums that extend a
// non-validatable base.
var ValidatableRequiresValidatableBase = lint.RuleDef{
	ID:            "EX01",
	Name:          "extension.validatable_requires_validatable_base",
	Group:         "extension",
	Description:   "A derived enum may only be validatable if its base is.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The validatable enum '%s' cannot extend the non-validatable enum '%s'",
	Arity:         2,
	Check:         checkValidatableRequiresValidatableBase,
	Rationale:     "Invalid items of the derived enum would be instances of a base that promises every instance is valid.",
}

func checkValidatableRequiresValidatableBase(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	base := m.Base()
	if base == nil || !m.IsValidatable() || base.IsValidatable() {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.TypeAnchor(), m.Name, base.Name)}
}
