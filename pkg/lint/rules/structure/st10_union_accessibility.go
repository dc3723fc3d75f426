package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(DerivedUnionAccessibility)
}

// DerivedUnionAccessibility keeps concrete variants from being more
// accessible than their union.
var DerivedUnionAccessibility = lint.RuleDef{
	ID:            "ST10",
	Name:          "structure.derived_union_accessibility",
	Group:         "structure",
	Description:   "A concrete union variant must not be more accessible than its union.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryUnion},
	MessageFormat: "The variant '%s' is %s but the union '%s' is only %s",
	Arity:         4,
	Check:         checkDerivedUnionAccessibility,
	Rationale:     "Generated dispatch helpers take one delegate per variant. A variant visible where the union is not produces inconsistent accessibility errors.",
	BadExample:    "internal abstract partial class Shape\n{\n    public sealed class Circle : Shape { }\n}",
	GoodExample:   "internal abstract partial class Shape\n{\n    internal sealed class Circle : Shape { }\n}",
}

func checkDerivedUnionAccessibility(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	var diags []lint.Diagnostic
	for _, v := range m.Variants {
		if v.IsAbstract || !v.Access.Exceeds(m.Accessibility) {
			continue
		}
		diags = append(diags, p.Report(p.At(v.NameSpan, v.Node()),
			v.Name, v.Access.String(), m.Name, m.Accessibility.String()))
	}
	return diags
}
