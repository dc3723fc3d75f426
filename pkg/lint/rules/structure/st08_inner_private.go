package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(InnerTypeFirstLevelPrivate)
}

// InnerTypeFirstLevelPrivate requires derived types directly inside an enum
// to be private.
var InnerTypeFirstLevelPrivate = lint.RuleDef{
	ID:            "ST08",
	Name:          "structure.inner_type_first_level_private",
	Group:         "structure",
	Description:   "A derived type declared directly inside a smart enum must be private.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryEnum, model.CategoryValidatableEnum},
	MessageFormat: "The derived type '%s' of '%s' must be private",
	Arity:         2,
	Fixable:       true,
	Check:         checkInnerTypeFirstLevelPrivate,
	Rationale:     "Derived item types are an implementation detail of the enum. Exposing them lets callers construct instances outside the item set.",
	BadExample:    "public sealed class Special : Op { }",
	GoodExample:   "private sealed class Special : Op { }",
	Fix:           "Change the accessibility of the derived type to private.",
}

func checkInnerTypeFirstLevelPrivate(p *lint.Pass) []lint.Diagnostic {
	return innerAccessibility(p, func(depth int) bool { return depth == 1 }, syntax.AccessPrivate)
}

func innerAccessibility(p *lint.Pass, atDepth func(int) bool, want syntax.Accessibility) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, n := range p.Model.InnerTypes {
		if !atDepth(n.Depth) || n.Access == want {
			continue
		}
		d := p.Report(p.At(n.NameSpan, n.Node()), n.Name, p.Model.Name)
		diags = append(diags, d.WithFix(lint.FixDescriptor{
			Title:  "Make '" + n.Name + "' " + want.String(),
			Node:   n.Node(),
			Params: map[string]string{"access": want.String()},
		}))
	}
	return diags
}
