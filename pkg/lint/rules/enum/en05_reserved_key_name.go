package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(ReservedKeyName)
}

// ReservedKeyName keeps the key member from taking the items accessor name.
var ReservedKeyName = lint.RuleDef{
	ID:            "EN05",
	Name:          "enum.reserved_key_name",
	Group:         "enum",
	Description:   "The key member must not be named like the generated items accessor.",
	Severity:      lint.SeverityError,
	Categories:    enumCategories,
	MessageFormat: "The key member of '%s' must not be named '%s'",
	Arity:         2,
	Blocks:        []string{gen.KindItems, gen.KindKeyMember},
	Check:         checkReservedKeyName,
	Rationale:     "The generator emits a static accessor listing all items. A key member with the same name would not compile.",
	BadExample:    "[SmartEnum<string>(KeyMemberName = \"Items\")]\npublic partial class Color { }",
	GoodExample:   "[SmartEnum<string>(KeyMemberName = \"Name\")]\npublic partial class Color { }",
	Fix:           "Rename the key member.",
}

func checkReservedKeyName(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if m.KeyName() != model.ItemsAccessorName {
		return nil
	}
	anchor := p.TypeAnchor()
	if m.Marker != nil {
		if _, ok := m.Marker.Annotation.Arg(model.ArgKeyMemberName); ok {
			span, node := m.Marker.ArgAnchor(model.ArgKeyMemberName)
			anchor = p.At(span, node)
		}
	}
	return []lint.Diagnostic{p.Report(anchor, m.Name, model.ItemsAccessorName)}
}
