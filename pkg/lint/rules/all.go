package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule groups - each registers its rules via init()
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/comparer"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/dispatch"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/enum"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/extension"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/keymember"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/structure"
)
