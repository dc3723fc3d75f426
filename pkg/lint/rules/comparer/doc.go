// Package comparer provides rules for key and member comparers and string
// comparison policies.
//
// Rules in this package:
//   - CM01: Declared key comparer must be static
//   - CM02: Key comparer annotation only on the key member
//   - CM03: Comparer element type must match the member type
//   - CM04: String key needs an explicit comparer
//   - CM05: String members of a complex value object need a default comparison
package comparer

import "github.com/leapstack-labs/smartgen/pkg/model"

var keyCategories = []model.Category{
	model.CategoryEnum,
	model.CategoryValidatableEnum,
	model.CategoryValueObject,
}
