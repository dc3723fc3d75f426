// Package rules provides the structural rule catalog for smart enums, value
// objects and unions.
//
// Rules are organized by group, each with a stable two-letter prefix:
//   - enum: Items, keys and factories of smart enums (EN01-EN09)
//   - structure: Declaration shape, nesting and accessibility (ST01-ST12)
//   - keymember: Key member resolution, delegates and factories (KM01-KM07)
//   - extension: Extensible enums and their derived enums (EX01-EX07)
//   - comparer: Key and member comparers (CM01-CM05)
//   - dispatch: Exhaustive Switch and Map calls (DP01)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/smartgen/pkg/lint/rules"
//
// Individual groups can also be imported:
//
//	import _ "github.com/leapstack-labs/smartgen/pkg/lint/rules/enum"
package rules
