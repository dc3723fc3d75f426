package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func init() {
	lint.Register(StructMustBeReadOnly)
}

// StructMustBeReadOnly requires struct-shaped enums and value objects to be
// declared read-only.
var StructMustBeReadOnly = lint.RuleDef{
	ID:            "ST02",
	Name:          "structure.struct_must_be_readonly",
	Group:         "structure",
	Description:   "Struct shapes of smart enums and value objects must be read-only.",
	Severity:      lint.SeverityError,
	Categories:    keyedCategories,
	MessageFormat: "The struct '%s' must be read-only",
	Arity:         1,
	Fixable:       true,
	Check:         checkStructMustBeReadOnly,
	Rationale:     "Equality and hashing are derived from the key. A mutable struct can change its key after it was stored in a set or dictionary.",
	BadExample:    "[ValueObject<int>]\npublic partial struct Age { }",
	GoodExample:   "[ValueObject<int>]\npublic readonly partial struct Age { }",
	Fix:           "Add the readonly modifier.",
}

func checkStructMustBeReadOnly(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.Shape.IsStruct() || m.IsReadOnlyStruct {
		return nil
	}
	d := p.Report(p.TypeAnchor(), m.Name).WithRelated(p.MarkerInfo()...)
	return []lint.Diagnostic{d.WithFix(lint.FixDescriptor{
		Title:  "Make '" + m.Name + "' read-only",
		Node:   m.TypeNode(),
		Params: map[string]string{"modifier": "readonly"},
	})}
}
