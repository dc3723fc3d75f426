package keymember

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(MappedMemberNotFound)
}

// MappedMemberNotFound reports a maps-to reference naming no member.
var MappedMemberNotFound = lint.RuleDef{
	ID:            "KM01",
	Name:          "keymember.mapped_member_not_found",
	Group:         "keymember",
	Description:   "A mapped key member reference must name an existing member.",
	Severity:      lint.SeverityError,
	Categories:    keyCategories,
	MessageFormat: "The key member '%s' of '%s' was not found",
	Arity:         2,
	Check:         checkMappedMemberNotFound,
	Rationale:     "Without the member there is nothing to compare, hash or parse.",
	BadExample:    "[ValueObject<int>(KeyMember = \"Vaule\")]",
	GoodExample:   "[ValueObject<int>(KeyMember = \"Value\")]",
}

func checkMappedMemberNotFound(p *lint.Pass) []lint.Diagnostic {
	return mappingFailure(p, model.NotFound, func(km *model.KeyMapping) []string {
		return []string{km.Target, p.Model.Name}
	})
}
