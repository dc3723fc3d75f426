// Package lint is the structural rule engine for annotated declarations.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/smartgen/pkg/lint/rules"
//
// Each rule is a RuleDef with a pure Check function over one extracted
// model. Rules never read each other's results, so the Analyzer may run them
// in any order or concurrently.
//
// # Rule Groups
//
//   - EN (enum): items, keys and factories of smart enums
//   - ST (structure): shapes, modifiers, nesting and constructors
//   - KM (keymember): key member mapping and object factories
//   - EX (extension): single-level enum extension
//   - CM (comparer): equality and ordering comparers
//   - DP (dispatch): exhaustive dispatch call sites
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	config := lint.NewConfig()
//	config.Disable("DP01")
//	config.SetSeverity("CM04", core.SeverityError)
//	config.SetRuleOptions("EN09", map[string]any{"reserved": []string{"All"}})
//
// # Anchors
//
// Rules about an annotation argument anchor on the argument span, structural
// rules on the type identifier and member rules on the member name. Every
// anchor also carries a syntax.NodeRef so fixes can be applied without
// re-querying the host.
package lint
