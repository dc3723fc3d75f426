package keymember

import (
	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(DelegateMethodNotGeneric)
}

// DelegateMethodNotGeneric rejects generic methods whose implementation is
// supplied through the constructor.
var DelegateMethodNotGeneric = lint.RuleDef{
	ID:            "KM06",
	Name:          "keymember.delegate_method_not_generic",
	Group:         "keymember",
	Description:   "A method implemented through a constructor delegate must not be generic.",
	Severity:      lint.SeverityError,
	MessageFormat: "The method '%s' of '%s' receives its implementation from the constructor and must not be generic",
	Arity:         2,
	Blocks:        []string{gen.KindDelegate},
	Check:         checkDelegateMethodNotGeneric,
	Rationale:     "The implementation is stored in a delegate field. A field cannot hold an open generic method.",
	BadExample:    "[UseDelegateFromConstructor]\npublic partial T Convert<T>(string value);",
	GoodExample:   "[UseDelegateFromConstructor]\npublic partial int Convert(string value);",
}

func checkDelegateMethodNotGeneric(p *lint.Pass) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, dm := range p.Model.DelegateMethods {
		if len(dm.TypeParams) == 0 {
			continue
		}
		diags = append(diags, p.Report(p.At(dm.NameSpan, syntax.MemberNode(dm.MemberIndex)), dm.Name, p.Model.Name))
	}
	return diags
}
