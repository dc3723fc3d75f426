package keymember

import (
	"strconv"

	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(MappedMemberAmbiguous)
}

// MappedMemberAmbiguous reports a maps-to reference matching several members.
var MappedMemberAmbiguous = lint.RuleDef{
	ID:            "KM02",
	Name:          "keymember.mapped_member_ambiguous",
	Group:         "keymember",
	Description:   "A mapped key member reference must match exactly one member.",
	Severity:      lint.SeverityError,
	Categories:    keyCategories,
	MessageFormat: "The key member '%s' of '%s' is ambiguous between %s members",
	Arity:         3,
	Check:         checkMappedMemberAmbiguous,
	Rationale:     "Overloaded methods share a name. The generator cannot choose which one produces the key.",
	BadExample:    "public int Value() => 1;\npublic int Value(int x) => x;",
	GoodExample:   "public int Value() => 1;",
}

func checkMappedMemberAmbiguous(p *lint.Pass) []lint.Diagnostic {
	return mappingFailure(p, model.Ambiguous, func(km *model.KeyMapping) []string {
		return []string{km.Target, p.Model.Name, strconv.Itoa(len(km.Candidates))}
	})
}
