package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

func init() {
	lint.Register(DefaultStructsKeyType)
}

// DefaultStructsKeyType rejects default struct instances when the key is a
// reference type.
var DefaultStructsKeyType = lint.RuleDef{
	ID:            "ST11",
	Name:          "structure.default_structs_key_type_conflict",
	Group:         "structure",
	Description:   "Default struct instances are only allowed for value-type keys.",
	Severity:      lint.SeverityError,
	Categories:    keyedCategories,
	MessageFormat: "The struct '%s' cannot allow default instances because its key type '%s' is a reference type",
	Arity:         2,
	Check:         checkDefaultStructsKeyType,
	Rationale:     "The default instance of a struct holds the default key. For a reference-type key that is null, which no factory ever accepts.",
	BadExample:    "[ValueObject<string>(AllowDefaultStructs = true)]\npublic readonly partial struct Code { }",
	GoodExample:   "[ValueObject<int>(AllowDefaultStructs = true)]\npublic readonly partial struct Count { }",
}

func checkDefaultStructsKeyType(p *lint.Pass) []lint.Diagnostic {
	m := p.Model
	if !m.AllowDefaultStructs || !m.Shape.IsStruct() || m.Marker == nil {
		return nil
	}
	kt, ok := m.KeyType.Get()
	if !ok {
		return nil
	}
	if value, known := kt.ValueKind(); !known || value {
		return nil
	}
	span, node := m.Marker.ArgAnchor(model.ArgAllowDefaultStructs)
	return []lint.Diagnostic{p.Report(p.At(span, node), m.Name, kt.String())}
}
