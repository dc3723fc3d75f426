package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(ExtensibleNotAbstract)
}

// ExtensibleNotAbstract rejects abstract extensible enums.
var ExtensibleNotAbstract = lint.RuleDef{
	ID:            "EX05",
	Name:          "extension.extensible_cannot_be_abstract",
	Group:         "extension",
	Description:   "An extensible enum must not be abstract.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The extensible enum '%s' must not be abstract",
	Arity:         1,
	Check:         checkExtensibleNotAbstract,
	Rationale:     "Derived enums create base items through the generated constructor, which an abstract type does not allow.",
}

func checkExtensibleNotAbstract(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.IsExtensible || !m.IsAbstract {
		return nil
	}
	return []lint.Diagnostic{p.Report(extensibleAnchor(p), m.Name)}
}
