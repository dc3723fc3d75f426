// Package extension provides rules for extensible smart enums and the
// single-level extension link between a derived enum and its base.
//
// Rules in this package:
//   - EX01: Validatable extension requires a validatable base
//   - EX02: Derived enum must not be extensible
//   - EX03: Base enum must be extensible
//   - EX04: Extensible enum cannot be a struct
//   - EX05: Extensible enum cannot be abstract
//   - EX06: Extensible enum must not declare virtual members
//   - EX07: Key comparer of an extensible enum must be accessible
package extension

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

var enumCategories = []model.Category{model.CategoryEnum, model.CategoryValidatableEnum}

// extensibleAnchor anchors on the IsExtensible argument of the marker.
func extensibleAnchor(p *lint.Pass) lint.Anchor {
	if p.Model.Marker == nil {
		return p.TypeAnchor()
	}
	span, node := p.Model.Marker.ArgAnchor(model.ArgIsExtensible)
	return p.At(span, node)
}
