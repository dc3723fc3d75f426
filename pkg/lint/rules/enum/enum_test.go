package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/internal/testutil"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules/enum" // register rules
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

func TestEN01_ItemAccessibility(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantDiag bool
		message  string
	}{
		{
			name: "implicitly private item",
			doc: `
types:
  - name: Color
    kind: class
    modifiers: [public, sealed, partial]
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, name_span: "4:28-4:31", type: {name: Color}, modifiers: [static, readonly]}
`,
			wantDiag: true,
			message:  "The item 'Red' of 'Color' must be public",
		},
		{
			name: "internal item",
			doc: `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, type: {name: Color}, modifiers: [internal, static, readonly]}
`,
			wantDiag: true,
			message:  "The item 'Red' of 'Color' must be public",
		},
		{
			name: "public item",
			doc: `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, type: {name: Color}, modifiers: [public, static, readonly]}
`,
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := testutil.Lint(t, tt.doc, "EN01")
			if !tt.wantDiag {
				assert.Empty(t, diags)
				return
			}
			require.Len(t, diags, 1)
			assert.Equal(t, tt.message, diags[0].Message)
			require.NotNil(t, diags[0].Fix)
			assert.Equal(t, "public", diags[0].Fix.Params["access"])
			assert.Equal(t, syntax.MemberNode(0), diags[0].Fix.Node)
		})
	}
}

func TestEN01_AnchorsOnItemName(t *testing.T) {
	diags := testutil.Lint(t, `
types:
  - name: Color
    name_span: "1:14-1:19"
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, name_span: "3:28-3:31", type: {name: Color}, modifiers: [static, readonly]}
`, "EN01")
	require.Len(t, diags, 1)
	assert.Equal(t, "3:28-3:31", diags[0].Anchor.Span.String())
}

func TestEN02_ContractKeyMismatch(t *testing.T) {
	t.Run("string and int keys", func(t *testing.T) {
		diags := testutil.Lint(t, `
types:
  - name: Mixed
    kind: class
    bases: [{name: IEnum, args: [{name: string}]}, {name: IEnum, args: [{name: int}]}]
    members:
      - {kind: field, name: A, type: {name: Mixed}, modifiers: [public, static, readonly]}
`, "EN02")
		require.Len(t, diags, 1)
		assert.Equal(t, []string{"Mixed", "string, int"}, diags[0].Args)
		assert.Nil(t, diags[0].Fix)
	})

	t.Run("repeated key", func(t *testing.T) {
		diags := testutil.Lint(t, `
types:
  - name: Same
    kind: class
    bases: [{name: IEnum, args: [{name: string}]}, {name: IValidatableEnum, args: [{name: string}]}]
`, "EN02")
		assert.Empty(t, diags)
	})
}

func TestEN03_InvalidItemFactory(t *testing.T) {
	abstractEnum := `
types:
  - name: Op
    kind: class
    modifiers: [public, abstract, partial]
    annotations:
      - name: SmartEnum
        type_args: [{name: string}]
        args: [{name: IsValidatable, value: "true"}]
`
	diags := testutil.Lint(t, abstractEnum, "EN03")
	require.Len(t, diags, 1)
	assert.Equal(t, "The abstract validatable enum 'Op' must implement the static method 'CreateInvalidItem'", diags[0].Message)
	require.NotNil(t, diags[0].Fix)
	assert.Equal(t, "string", diags[0].Fix.Params["key_type"])

	withFactory := abstractEnum + `
    members:
      - {kind: method, name: CreateInvalidItem, type: {name: Op}, modifiers: [private, static], params: [{name: key, type: {name: string}}]}
`
	assert.Empty(t, testutil.Lint(t, withFactory, "EN03"))
}

func TestEN04_NonValidatableMustBeClass(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		args     string
		wantDiag bool
	}{
		{name: "struct enum", kind: "struct", wantDiag: true},
		{name: "class enum", kind: "class"},
		{name: "validatable struct enum", kind: "struct", args: `args: [{name: IsValidatable, value: "true"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `
types:
  - name: Level
    kind: ` + tt.kind + `
    modifiers: [public, readonly, partial]
    annotations:
      - name: SmartEnum
        type_args: [{name: int}]
        ` + tt.args + `
`
			diags := testutil.Lint(t, doc, "EN04")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, []string{"Level"}, diags[0].Args)
				require.Len(t, diags[0].RelatedInfo, 1)
				assert.Equal(t, "category declared by [SmartEnum]", diags[0].RelatedInfo[0].Message)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestEN05_ReservedKeyName(t *testing.T) {
	diags := testutil.Lint(t, `
types:
  - name: Color
    kind: class
    annotations:
      - name: SmartEnum
        type_args: [{name: string}]
        args: [{name: KeyMemberName, value: Items, span: "1:30-1:51"}]
`, "EN05")
	require.Len(t, diags, 1)
	assert.Equal(t, "1:30-1:51", diags[0].Anchor.Span.String())
	assert.Equal(t, syntax.TypeNode().WithAnnotation(0).WithArg("KeyMemberName"), diags[0].Anchor.Node)

	assert.Empty(t, testutil.Lint(t, `
types:
  - name: Color
    kind: class
    annotations:
      - name: SmartEnum
        type_args: [{name: string}]
        args: [{name: KeyMemberName, value: Name}]
`, "EN05"))
}

func TestEN06_EnumerationEmpty(t *testing.T) {
	diags := testutil.Lint(t, `
types:
  - name: Empty
    name_span: "2:21-2:26"
    kind: class
    type_params: [T]
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
`, "EN06")
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"Empty`1"}, diags[0].Args)
	assert.Equal(t, "2:21-2:26", diags[0].Anchor.Span.String())
	assert.True(t, diags[0].Anchor.Node.Equal(syntax.TypeNode()))
}

func TestEN06_ValueObjectsHaveNoItems(t *testing.T) {
	assert.Empty(t, testutil.Lint(t, `
types:
  - name: Amount
    kind: class
    annotations: [{name: ValueObject, type_args: [{name: decimal}]}]
`, "EN06"))
}

func TestEN07_PropertyNotItem(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		count int
	}{
		{
			name: "sole property candidate",
			doc: `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: property, name: Red, type: {name: Color}, modifiers: [public, static]}
`,
			count: 1,
		},
		{
			name: "private property still flagged",
			doc: `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: property, name: Red, type: {name: Color}, modifiers: [private, static]}
`,
			count: 1,
		},
		{
			name: "field items present",
			doc: `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, type: {name: Color}, modifiers: [public, static, readonly]}
      - {kind: property, name: Default, type: {name: Color}, modifiers: [public, static]}
`,
			count: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, testutil.Lint(t, tt.doc, "EN07"), tt.count)
		})
	}
}

func TestEN08_ItemReadOnly(t *testing.T) {
	diags := testutil.Lint(t, `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, type: {name: Color}, modifiers: [public, static]}
      - {kind: field, name: Blue, type: {name: Color}, modifiers: [public, static, readonly]}
`, "EN08")
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"Red", "Color"}, diags[0].Args)
	require.NotNil(t, diags[0].Fix)
	assert.Equal(t, "readonly", diags[0].Fix.Params["modifier"])
}

func TestEN09_ItemNameReserved(t *testing.T) {
	doc := `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Get, type: {name: Color}, modifiers: [public, static, readonly]}
      - {kind: field, name: Default, type: {name: Color}, modifiers: [public, static, readonly]}
`
	diags := testutil.Lint(t, doc, "EN09")
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"Get", "Color"}, diags[0].Args)

	cfg := lint.NewConfig().SetRuleOptions("EN09", map[string]any{"reserved": []any{"Default"}})
	assert.Len(t, testutil.LintWith(t, cfg, doc, "EN09"), 2)
}

func TestEN09_UnionVariants(t *testing.T) {
	diags := testutil.Lint(t, `
types:
  - name: Shape
    kind: class
    modifiers: [public, abstract, partial]
    annotations: [{name: Union}]
    nested:
      - name: Map
        kind: class
        modifiers: [public, sealed]
        bases: [{name: Shape}]
      - name: Circle
        kind: class
        modifiers: [public, sealed]
        bases: [{name: Shape}]
`, "EN09")
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"Map", "Shape"}, diags[0].Args)
}
