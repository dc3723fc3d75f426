// Package keymember provides rules for key member resolution, delegate
// methods and object factories.
//
// Rules in this package:
//   - KM01: Mapped key member not found
//   - KM02: Mapped key member is ambiguous
//   - KM03: Mapped key member must be public
//   - KM04: Mapped key method must not be generic
//   - KM05: Hand-written key member is missing
//   - KM06: Delegate method must not be generic
//   - KM07: Object factory needs a matching constructor
package keymember

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

var keyCategories = []model.Category{
	model.CategoryEnum,
	model.CategoryValidatableEnum,
	model.CategoryValueObject,
}

// mappingFailure reports the key mapping of p's model when it ended in res.
func mappingFailure(p *lint.Pass, res model.Resolution, args func(*model.KeyMapping) []string) []lint.Diagnostic {
	km := p.Model.KeyMapping
	if km == nil || km.Resolution != res {
		return nil
	}
	return []lint.Diagnostic{p.Report(p.At(km.Span, km.Node), args(km)...)}
}
