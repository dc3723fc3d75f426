package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(ExtensibleNoVirtualMembers)
}

// ExtensibleNoVirtualMembers rejects virtual members on extensible enums.
var ExtensibleNoVirtualMembers = lint.RuleDef{
	ID:            "EX06",
	Name:          "extension.extensible_no_virtual_members",
	Group:         "extension",
	Description:   "Members of an extensible enum must not be virtual.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The member '%s' of the extensible enum '%s' must not be virtual",
	Arity:         2,
	Check:         checkExtensibleNoVirtualMembers,
	Rationale:     "Derived enums wrap base items. An override in the derived type would never run for those wrapped items.",
	BadExample:    "public virtual string Describe() => Key;",
	GoodExample:   "public string Describe() => Key;",
}

func checkExtensibleNoVirtualMembers(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.IsExtensible {
		return nil
	}
	var diags []lint.Diagnostic
	for _, v := range m.VirtualMembers {
		diags = append(diags, p.Report(p.At(v.NameSpan, syntax.MemberNode(v.MemberIndex)), v.Name, m.Name))
	}
	return diags
}
