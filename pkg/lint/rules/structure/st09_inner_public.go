package structure

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func init() {
	lint.Register(InnerTypeDeeperLevelPublic)
}

// InnerTypeDeeperLevelPublic requires derived types below the first nesting
// level to be public.
var InnerTypeDeeperLevelPublic = lint.RuleDef{
	ID:            "ST09",
	Name:          "structure.inner_type_deeper_level_public",
	Group:         "structure",
	Description:   "A derived type nested below the first level must be public.",
	Severity:      lint.SeverityError,
	Categories:    []model.Category{model.CategoryEnum, model.CategoryValidatableEnum},
	MessageFormat: "The derived type '%s' of '%s' must be public",
	Arity:         2,
	Fixable:       true,
	Check:         checkInnerTypeDeeperLevelPublic,
	Rationale:     "The private first-level type already hides deeper types. Anything less than public at deeper levels hides them from the enum itself.",
	BadExample:    "private sealed class Outer : Op\n{\n    private sealed class Inner : Outer { }\n}",
	GoodExample:   "private sealed class Outer : Op\n{\n    public sealed class Inner : Outer { }\n}",
	Fix:           "Change the accessibility of the derived type to public.",
}

func checkInnerTypeDeeperLevelPublic(p *lint.Pass) []lint.Diagnostic {
	return innerAccessibility(p, func(depth int) bool { return depth > 1 }, syntax.AccessPublic)
}
