package comparer

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(StringKeyNeedsComparer)
}

// StringKeyNeedsComparer asks string-keyed types to state how keys compare.
// Enums need an equality comparer; value objects also need an ordering one.
var StringKeyNeedsComparer = lint.RuleDef{
	ID:            "CM04",
	Name:          "comparer.string_key_needs_comparer",
	Group:         "comparer",
	Description:   "A string-keyed type must declare its key comparers explicitly.",
	Severity:      lint.SeverityWarning,
	Categories:    keyCategories,
	MessageFormat: "The string key of '%s' has no explicit %s",
	Arity:         2,
	Fixable:       true,
	Check:         checkStringKeyNeedsComparer,
	Rationale:     "String equality is culture and case sensitive by default, which is rarely what a domain key wants. Making the choice explicit avoids lookups that silently miss.",
	BadExample:    "[SmartEnum<string>]\npublic sealed partial class Color { }",
	GoodExample:   "[SmartEnum<string>]\n[KeyEqualityComparer<ComparerAccessors.StringOrdinalIgnoreCase, string>]\npublic sealed partial class Color { }",
	Fix:           "Inserts comparer annotations for the missing comparers, ordinal-ignore-case unless the 'accessor' option names another accessor.",
}

func checkStringKeyNeedsComparer(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	kt, ok := m.KeyType.Get()
	if !ok || !kt.IsString() {
		return nil
	}

	needEquality := m.Comparers.KeyEquality == nil
	needOrdering := m.Category == model.CategoryValueObject && m.Comparers.KeyOrdering == nil
	var what string
	switch {
	case needEquality && needOrdering:
		what = "equality and ordering comparers"
	case needEquality:
		what = "equality comparer"
	case needOrdering:
		what = "ordering comparer"
	default:
		return nil
	}

	accessor := lint.GetStringOption(p.Options, "accessor", model.OrdinalIgnoreCase)
	params := map[string]string{
		"accessor": accessor,
		"key_type": kt.String(),
	}
	if needEquality {
		params["equality"] = "true"
	}
	if needOrdering {
		params["ordering"] = "true"
	}
	d := p.Report(p.TypeAnchor(), m.Name, what)
	return []lint.Diagnostic{d.WithFix(lint.FixDescriptor{
		Title:  "Compare keys of '" + m.Name + "' with " + accessor,
		Node:   m.TypeNode(),
		Params: params,
	})}
}
