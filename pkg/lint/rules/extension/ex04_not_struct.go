package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(ExtensibleNotStruct)
}

// ExtensibleNotStruct rejects extensible struct enums.
var ExtensibleNotStruct = lint.RuleDef{
	ID:            "EX04",
	Name:          "extension.extensible_cannot_be_struct",
	Group:         "extension",
	Description:   "An extensible enum must be a class.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The extensible enum '%s' must be a class",
	Arity:         1,
	Check:         checkExtensibleNotStruct,
	Rationale:     "Structs cannot be derived from.",
}

func checkExtensibleNotStruct(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.IsExtensible || !m.Shape.IsStruct() {
		return nil
	}
	return []lint.Diagnostic{p.Report(extensibleAnchor(p), m.Name)}
}
