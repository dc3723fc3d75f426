package syntax

import (
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/leapstack-labs/smartgen/pkg/token"
)

// SchemaID is the identifier stamped on the snapshot schema.
const SchemaID = "https://smartgen.dev/schema/snapshot.json"

// JSONSchema returns the JSON Schema of a snapshot document. Declarations
// nest recursively, so definitions are referenced rather than inlined.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
		Mapper:                    mapSpan,
	}
	s := r.Reflect(&Snapshot{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "smartgen declaration snapshot"
	return s
}

var spanType = reflect.TypeOf(token.Span{})

// spanPattern matches the text form of token.Span, line:col-line:col.
const spanPattern = `^(\d+:\d+-\d+:\d+)?$`

func mapSpan(t reflect.Type) *jsonschema.Schema {
	if t != spanType {
		return nil
	}
	return &jsonschema.Schema{
		Type:    "string",
		Pattern: spanPattern,
	}
}
