package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(CtorMustBePrivate)
}

// CtorMustBePrivate requires hand-written constructors of enums and value
// objects to be private.
var CtorMustBePrivate = lint.RuleDef{
	ID:            "ST01",
	Name:          "structure.ctor_must_be_private",
	Group:         "structure",
	Description:   "Constructors of smart enums and value objects must be private.",
	Severity:      lint.SeverityError,
	Categories:    keyedCategories,
	MessageFormat: "The constructor of '%s' must be private",
	Arity:         1,
	Fixable:       true,
	Check:         checkCtorMustBePrivate,
	Rationale:     "Instances are created through items or factory methods only. An accessible constructor bypasses validation and breaks the closed set.",
	BadExample:    "public Amount(decimal value) { Value = value; }",
	GoodExample:   "private Amount(decimal value) { Value = value; }",
	Fix:           "Change the constructor accessibility to private.",
}

func checkCtorMustBePrivate(p *lint.Pass) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, c := range p.Model.Constructors {
		if c.IsPrimary || c.Access == syntax.AccessPrivate {
			continue
		}
		d := p.Report(p.At(c.Span, c.Node()), p.Model.Name)
		diags = append(diags, d.WithFix(lint.FixDescriptor{
			Title:  "Make constructor private",
			Node:   c.Node(),
			Params: map[string]string{"access": syntax.AccessPrivate.String()},
		}))
	}
	return diags
}
