package enum

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
	"github.com/leapstack-labs/smartgen/pkg/token"
)

func init() {
	lint.Register(ItemNameReserved)
}

// ItemNameReserved keeps item and variant names clear of generated members.
var ItemNameReserved = lint.RuleDef{
	ID:            "EN09",
	Name:          "enum.item_name_reserved",
	Group:         "enum",
	Description:   "Item and variant names must not collide with generated member names.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryEnum, model.CategoryValidatableEnum, model.CategoryUnion},
	MessageFormat: "The name '%s' in '%s' is reserved for a generated member",
	Arity:         2,
	ConfigKeys:    []string{"reserved"},
	Blocks:        []string{lint.BlockAll},
	Check:         checkItemNameReserved,
	Rationale:     "Generated members share the type's member namespace. A collision produces code that does not compile.",
	BadExample:    "public static readonly Color Switch = new(\"switch\");",
	GoodExample:   "public static readonly Color Toggle = new(\"switch\");",
	Fix:           "Rename the item or variant.",
}

type named struct {
	name string
	span token.Span
	node syntax.NodeRef
}

func checkItemNameReserved(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	reserved := make(map[string]bool)
	for _, n := range model.ReservedNames(m) {
		reserved[n] = true
	}
	for _, n := range lint.GetStringSliceOption(p.Options, "reserved", nil) {
		reserved[n] = true
	}

	var candidates []named
	for _, item := range m.Items {
		candidates = append(candidates, named{item.Name, item.NameSpan, item.Node()})
	}
	for _, v := range m.Variants {
		candidates = append(candidates, named{v.Name, v.NameSpan, v.Node()})
	}

	var diags []lint.Diagnostic
	for _, c := range candidates {
		if reserved[c.name] {
			diags = append(diags, p.Report(p.At(c.span, c.node), c.name, m.Name))
		}
	}
	return diags
}
