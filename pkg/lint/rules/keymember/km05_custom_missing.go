package keymember

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(CustomKeyMissing)
}

// CustomKeyMissing reports a skipped key member without a hand-written one.
var CustomKeyMissing = lint.RuleDef{
	ID:            "KM05",
	Name:          "keymember.custom_key_impl_missing",
	Group:         "keymember",
	Description:   "When key member generation is skipped, a matching member must be written by hand.",
	Severity:      lint.SeverityError,
	Categories:    keyCategories,
	MessageFormat: "The type '%s' skips key member generation but declares no instance member '%s' of type '%s'",
	Arity:         3,
	Check:         checkCustomKeyMissing,
	Rationale:     "Every generated member that uses the key refers to it by name and type.",
	BadExample:    "[ValueObject<int>(SkipKeyMember = true)]\npublic partial class Age { }",
	GoodExample:   "[ValueObject<int>(SkipKeyMember = true)]\npublic partial class Age\n{\n    public int Key { get; }\n}",
}

func checkCustomKeyMissing(p *lint.Pass) []lint.Diagnostic {
	keyType := "unknown"
	if kt, ok := p.Model.KeyType.Get(); ok {
		keyType = kt.String()
	}
	return mappingFailure(p, model.CustomMissing, func(km *model.KeyMapping) []string {
		return []string{p.Model.Name, km.CanonicalName, keyType}
	})
}
