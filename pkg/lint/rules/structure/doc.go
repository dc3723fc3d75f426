// Package structure provides rules for the declaration shape of annotated
// types: accessibility, nesting, generics, constructors and modifiers.
//
// Rules in this package:
//   - ST01: Constructors must be private
//   - ST02: Struct shapes must be read-only
//   - ST03: Annotated type must not be nested
//   - ST04: Annotated type must not be generic
//   - ST05: Primary constructors are not allowed
//   - ST06: Union must be a class or a struct
//   - ST07: Derived type must not re-implement the contract
//   - ST08: First-level inner type must be private
//   - ST09: Deeper inner type must be public
//   - ST10: Union variant must not be more accessible than its union
//   - ST11: Default struct instances need a value-type key
//   - ST12: Conflicting category annotations
package structure

import "github.com/leapstack-labs/smartgen/pkg/model"

var keyedCategories = []model.Category{
	model.CategoryEnum,
	model.CategoryValidatableEnum,
	model.CategoryValueObject,
	model.CategoryComplexValueObject,
}
