package extension_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/internal/testutil"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/extension" // register rules
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// chain renders a derived enum followed by its base. The derived type comes
// first so that it is the type under test.
func chain(derivedArgs, baseArgs string) string {
	return fmt.Sprintf(`
types:
  - name: ExtendedColor
    kind: class
    modifiers: [public, partial]
    bases: [{name: Color}]
    annotations:
      - {name: SmartEnum, type_args: [{name: string}], args: [%s]}
  - name: Color
    kind: class
    modifiers: [public, partial]
    annotations:
      - {name: SmartEnum, type_args: [{name: string}], args: [%s]}
`, derivedArgs, baseArgs)
}

const (
	extensible  = `{name: IsExtensible, value: "true", span: "1:30-1:49"}`
	validatable = `{name: IsValidatable, value: "true"}`
)

func TestEX01_ValidatableRequiresValidatableBase(t *testing.T) {
	diags := testutil.Lint(t, chain(validatable, extensible), "EX01")
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"ExtendedColor", "Color"}, diags[0].Args)

	assert.Empty(t, testutil.Lint(t, chain(validatable, extensible+", "+validatable), "EX01"))
	assert.Empty(t, testutil.Lint(t, chain("", extensible+", "+validatable), "EX01"))
}

func TestEX02_EX03_AreComplementary(t *testing.T) {
	tests := []struct {
		name          string
		derived, base string
		ex02, ex03    int
	}{
		{name: "valid chain", derived: "", base: extensible},
		{name: "derived extensible", derived: extensible, base: extensible, ex02: 1},
		{name: "base not extensible", derived: "", base: "", ex03: 1},
		{name: "both", derived: extensible, base: "", ex02: 1, ex03: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := chain(tt.derived, tt.base)
			assert.Len(t, testutil.Lint(t, doc, "EX02"), tt.ex02)
			assert.Len(t, testutil.Lint(t, doc, "EX03"), tt.ex03)
		})
	}
}

func TestEX02_AnchorsOnArgument(t *testing.T) {
	diags := testutil.Lint(t, chain(extensible, extensible), "EX02")
	require.Len(t, diags, 1)
	assert.Equal(t, "1:30-1:49", diags[0].Anchor.Span.String())
	assert.Equal(t, syntax.TypeNode().WithAnnotation(0).WithArg("IsExtensible"), diags[0].Anchor.Node)
}

func TestEX_RootEnumsIgnoreChainRules(t *testing.T) {
	doc := `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
`
	for _, rule := range []string{"EX01", "EX02", "EX03"} {
		assert.Empty(t, testutil.Lint(t, doc, rule), rule)
	}
}

func extensibleEnum(kind, mods, members string) string {
	return `
types:
  - name: Color
    kind: ` + kind + `
    modifiers: ` + mods + `
    annotations:
      - {name: SmartEnum, type_args: [{name: string}], args: [` + extensible + `, ` + validatable + `]}
    members:
` + members
}

const item = "      - {kind: field, name: Red, type: {name: Color}, modifiers: [public, static, readonly]}\n"

func TestEX04_ExtensibleNotStruct(t *testing.T) {
	assert.Len(t, testutil.Lint(t, extensibleEnum("struct", "[public, readonly, partial]", item), "EX04"), 1)
	assert.Empty(t, testutil.Lint(t, extensibleEnum("class", "[public, partial]", item), "EX04"))
}

func TestEX05_ExtensibleNotAbstract(t *testing.T) {
	assert.Len(t, testutil.Lint(t, extensibleEnum("class", "[public, abstract, partial]", item), "EX05"), 1)
	assert.Empty(t, testutil.Lint(t, extensibleEnum("class", "[public, partial]", item), "EX05"))
}

func TestEX06_ExtensibleNoVirtualMembers(t *testing.T) {
	members := item +
		"      - {kind: method, name: Describe, type: {name: string}, modifiers: [public, virtual]}\n" +
		"      - {kind: property, name: Label, type: {name: string}, modifiers: [public, virtual]}\n" +
		"      - {kind: method, name: Plain, type: {name: string}, modifiers: [public]}\n"
	diags := testutil.Lint(t, extensibleEnum("class", "[public, partial]", members), "EX06")
	require.Len(t, diags, 2)
	assert.Equal(t, []string{"Describe", "Color"}, diags[0].Args)
	assert.Equal(t, []string{"Label", "Color"}, diags[1].Args)
}

func TestEX07_KeyComparerAccessibility(t *testing.T) {
	comparer := func(mods string) string {
		return item + "      - {kind: property, name: KeyEqualityComparer, type: {name: IEqualityComparer, args: [{name: string}]}, modifiers: " + mods + "}\n"
	}
	tests := []struct {
		mods     string
		wantDiag bool
	}{
		{mods: "[private, static]", wantDiag: true},
		{mods: "[internal, static]", wantDiag: true},
		{mods: "[protected, static]"},
		{mods: "[protected, internal, static]"},
		{mods: "[public, static]"},
	}
	for _, tt := range tests {
		t.Run(tt.mods, func(t *testing.T) {
			diags := testutil.Lint(t, extensibleEnum("class", "[public, partial]", comparer(tt.mods)), "EX07")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, []string{"KeyEqualityComparer", "Color"}, diags[0].Args)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}
