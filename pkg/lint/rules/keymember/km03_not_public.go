package keymember

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(MappedMemberNotPublic)
}

// MappedMemberNotPublic reports a mapped key member that is not public.
var MappedMemberNotPublic = lint.RuleDef{
	ID:            "KM03",
	Name:          "keymember.mapped_member_must_be_public",
	Group:         "keymember",
	Description:   "A mapped key member must be public.",
	Severity:      lint.SeverityError,
	Categories:    keyCategories,
	MessageFormat: "The key member '%s' of '%s' must be public",
	Arity:         2,
	Check:         checkMappedMemberNotPublic,
	Rationale:     "Generated conversions and serializers read the key from outside the type.",
	BadExample:    "private int Value { get; }",
	GoodExample:   "public int Value { get; }",
}

func checkMappedMemberNotPublic(p *lint.Pass) []lint.Diagnostic {
	return mappingFailure(p, model.NotPublic, func(km *model.KeyMapping) []string {
		return []string{km.Target, p.Model.Name}
	})
}
