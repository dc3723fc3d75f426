// Package enum provides rules for the items, keys and factories of smart enums.
//
// Rules in this package:
//   - EN01: Items must be public
//   - EN02: Enum contract implemented with different key types
//   - EN03: Abstract validatable enum needs an invalid-item factory
//   - EN04: Non-validatable enum must be a class
//   - EN05: Key member must not use the reserved items accessor name
//   - EN06: Enumeration has no items
//   - EN07: Static property is never an item
//   - EN08: Items must be read-only
//   - EN09: Item or variant name collides with a generated member
package enum

import "github.com/leapstack-labs/smartgen/pkg/model"

var enumCategories = []model.Category{model.CategoryEnum, model.CategoryValidatableEnum}
