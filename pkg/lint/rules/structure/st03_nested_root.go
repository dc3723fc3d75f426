package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(NoNestedRootType)
}

// NoNestedRootType rejects annotated types declared inside another type.
var NoNestedRootType = lint.RuleDef{
	ID:            "ST03",
	Name:          "structure.no_nested_root_type",
	Group:         "structure",
	Description:   "An annotated type must be declared at the top level.",
	Severity:      lint.SeverityError,
	MessageFormat: "The type '%s' must not be nested in another type",
	Arity:         1,
	Blocks:        []string{lint.BlockAll},
	Check:         checkNoNestedRootType,
	Rationale:     "Generated companion members are emitted as a top-level partial declaration. A nested root would need every enclosing type to be partial too.",
	BadExample:    "public class Outer\n{\n    [SmartEnum<string>]\n    public partial class Color { }\n}",
	GoodExample:   "[SmartEnum<string>]\npublic partial class Color { }",
}

func checkNoNestedRootType(p *lint.Pass) []lint.Diagnostic {
	if !p.Model.IsNested() {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.TypeAnchor(), p.Model.Name)}
}
