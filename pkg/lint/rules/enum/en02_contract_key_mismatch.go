package enum

import (
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(ContractKeyMismatch)
}

// ContractKeyMismatch requires every enum contract instance to use the same key type.
var ContractKeyMismatch = lint.RuleDef{
	ID:            "EN02",
	Name:          "enum.multi_interface_key_mismatch",
	Group:         "enum",
	Description:   "A type implementing the enum contract more than once must use one key type.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The enum '%s' implements the enum contract with different key types: %s",
	Arity:         2,
	Check:         checkContractKeyMismatch,
	Rationale:     "Lookup, parsing and equality are generated for exactly one key type. Two contract instances with different keys leave no single key to generate against.",
	BadExample:    "public partial class Mixed : IEnum<string>, IEnum<int> { }",
	GoodExample:   "public partial class Mixed : IEnum<string> { }",
	Fix:           "Keep one contract instance. Which key is right is a design decision, so no automatic fix is offered.",
}

func checkContractKeyMismatch(p *lint.Pass) []lint.Diagnostic {
	keys := p.Model.ContractKeys
	if len(keys) < 2 {
		return nil
	}
	var distinct []string
	seen := make(map[string]bool)
	for _, k := range keys {
		name := k.Key.String()
		if !seen[name] {
			seen[name] = true
			distinct = append(distinct, name)
		}
	}
	if len(distinct) < 2 {
		return nil
	}
	return []lint.Diagnostic{
		p.Report(p.TypeAnchor(), p.Model.Name, strings.Join(distinct, ", ")),
	}
}
