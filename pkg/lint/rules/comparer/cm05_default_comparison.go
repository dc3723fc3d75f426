package comparer

import (
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(ComplexStringMembersNeedDefault)
}

// ComplexStringMembersNeedDefault asks complex value objects with string
// members to declare a default string comparison.
var ComplexStringMembersNeedDefault = lint.RuleDef{
	ID:            "CM05",
	Name:          "comparer.complex_string_members_need_default_comparison",
	Group:         "comparer",
	Description:   "A complex value object with string members must declare a default string comparison.",
	Severity:      lint.SeverityWarning,
	Categories:    []model.Category{model.CategoryComplexValueObject},
	MessageFormat: "The complex value object '%s' compares the string members %s without a default string comparison",
	Arity:         2,
	Fixable:       true,
	Check:         checkComplexStringMembersNeedDefault,
	Rationale:     "Member-wise equality of strings needs a comparison policy. An explicit default keeps equality and hashing consistent.",
	BadExample:    "[ComplexValueObject]\npublic partial class Address\n{\n    public string Street { get; }\n}",
	GoodExample:   "[ComplexValueObject(DefaultStringComparison = StringComparison.OrdinalIgnoreCase)]\npublic partial class Address\n{\n    public string Street { get; }\n}",
	Fix:           "Sets DefaultStringComparison to StringComparison.OrdinalIgnoreCase.",
}

func checkComplexStringMembersNeedDefault(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if m.Marker == nil || m.Comparers.DefaultStringComparison.OK() {
		return nil
	}
	var names []string
	for _, mem := range m.Members {
		if mem.Type.IsString() && m.Comparers.MemberComparer(mem.Name) == nil {
			names = append(names, "'"+mem.Name+"'")
		}
	}
	if len(names) == 0 {
		return nil
	}
	node := m.Marker.Node()
	d := p.Report(p.At(m.Marker.Annotation.Span, node), m.Name, strings.Join(names, ", "))
	return []lint.Diagnostic{d.WithFix(lint.FixDescriptor{
		Title: "Compare strings of '" + m.Name + "' ordinally ignoring case",
		Node:  node,
		Params: map[string]string{
			"arg":   model.ArgDefaultStringComparison,
			"value": model.DefaultStringPolicy,
		},
	})}
}
