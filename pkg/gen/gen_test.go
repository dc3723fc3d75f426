package gen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/internal/testutil"
	"github.com/leapstack-labs/smartgen/pkg/extract"
	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/model"
)

const colorDoc = `
types:
  - name: Color
    kind: class
    modifiers: [public, sealed, partial]
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, type: {name: Color}, modifiers: [public, static, readonly]}
      - {kind: field, name: Green, type: {name: Color}, modifiers: [public, static, readonly]}
`

func generate(t *testing.T, doc string) *gen.Output {
	t.Helper()
	out, err := gen.Generate(extract.Extract(testutil.Decl(t, doc)))
	require.NoError(t, err)
	return out
}

func fragment(t *testing.T, out *gen.Output, kind gen.Kind) string {
	t.Helper()
	var parts []gen.Fragment
	for _, f := range out.Fragments {
		if f.Kind == kind {
			parts = append(parts, f)
		}
	}
	require.NotEmpty(t, parts, "no %s fragment", kind)
	return gen.Print(parts)
}

func skippedKinds(out *gen.Output) []gen.Kind {
	var kinds []gen.Kind
	for _, s := range out.Skipped {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestGenerate_Unsupported(t *testing.T) {
	_, err := gen.Generate(nil)
	assert.True(t, errors.Is(err, gen.ErrUnsupported))

	_, err = gen.Generate(&model.TypeModel{Name: "Plain"})
	assert.True(t, errors.Is(err, gen.ErrUnsupported))
}

func TestGenerate_Enum(t *testing.T) {
	out := generate(t, colorDoc)

	assert.Equal(t, []gen.Kind{
		gen.KindItems, gen.KindKeyMember, gen.KindConstructor, gen.KindGet, gen.KindTryGet,
		gen.KindEquals, gen.KindHashCode, gen.KindKeyComparer,
		gen.KindParse, gen.KindTryParse, gen.KindSwitch, gen.KindMap,
	}, out.Kinds())
	assert.Empty(t, out.Skipped)

	assert.Equal(t,
		"public static IReadOnlyList<Color> Items { get; } = new Color[] { Red, Green };\n",
		fragment(t, out, gen.KindItems))
	assert.Equal(t,
		"public static IEqualityComparer<string> KeyEqualityComparer => ComparerAccessors.StringOrdinalIgnoreCase.EqualityComparer;\n",
		fragment(t, out, gen.KindKeyComparer))

	tryGet := fragment(t, out, gen.KindTryGet)
	assert.Contains(t, tryGet, "if (key is null)")
	red := strings.Index(tryGet, "KeyEqualityComparer.Equals(Red.Key, key)")
	green := strings.Index(tryGet, "KeyEqualityComparer.Equals(Green.Key, key)")
	require.True(t, red >= 0 && green >= 0)
	assert.Less(t, red, green, "items are matched in declaration order")

	assert.Contains(t, fragment(t, out, gen.KindGet), "throw new UnknownEnumIdentifierException(typeof(Color), key);")
	assert.Contains(t, fragment(t, out, gen.KindSwitch), "public void Switch(Action red, Action green)")
	assert.Contains(t, fragment(t, out, gen.KindMap), "public TResult Map<TResult>(TResult red, TResult green)")
}

func TestGenerate_ValidatableEnum(t *testing.T) {
	doc := `
types:
  - name: Level
    kind: class
    modifiers: [public, sealed, partial]
    annotations:
      - name: SmartEnum
        type_args: [{name: int}]
        args: [{name: IsValidatable, value: "true"}]
    members:
      - {kind: field, name: Low, type: {name: Level}, modifiers: [public, static, readonly]}
`
	out := generate(t, doc)
	kinds := out.Kinds()
	assert.Contains(t, kinds, gen.KindValidate)
	assert.Contains(t, kinds, gen.KindInvalidItem)
	assert.Contains(t, kinds, gen.KindCompareTo)

	assert.Equal(t,
		"private static Level CreateInvalidItem(int key) => new Level(key, false);\n",
		fragment(t, out, gen.KindInvalidItem))
	assert.Contains(t, fragment(t, out, gen.KindGet), "return CreateInvalidItem(key);")
	assert.Contains(t, fragment(t, out, gen.KindConstructor), "private Level(int key, bool isValid = true)")
	assert.NotContains(t, fragment(t, out, gen.KindTryGet), "is null", "int keys are never null")
	assert.Contains(t, fragment(t, out, gen.KindTryParse), "int.TryParse(s, provider, out var key)")

	abstract := strings.Replace(doc, "[public, sealed, partial]", "[public, abstract, partial]", 1)
	assert.Equal(t,
		"private static Level CreateInvalidItem(int key) => throw new NotImplementedException(\"Level must create an invalid item\");\n",
		fragment(t, generate(t, abstract), gen.KindInvalidItem))

	declared := doc + "      - {kind: method, name: CreateInvalidItem, type: {name: Level}, modifiers: [private, static], params: [{name: key, type: {name: int}}]}\n"
	assert.NotContains(t, generate(t, declared).Kinds(), gen.KindInvalidItem)
}

func TestGenerate_UnresolvedKeyDegrades(t *testing.T) {
	out := generate(t, `
types:
  - name: Color
    kind: class
    annotations:
      - {name: SmartEnum, type_args: [{name: string}], args: [{name: KeyMember, value: Code}]}
    members:
      - {kind: field, name: Red, type: {name: Color}, modifiers: [public, static, readonly]}
`)
	assert.Equal(t, []gen.Kind{gen.KindItems, gen.KindConstructor, gen.KindSwitch, gen.KindMap}, out.Kinds())
	assert.Equal(t, []gen.Kind{
		gen.KindKeyMember, gen.KindGet, gen.KindTryGet, gen.KindEquals, gen.KindHashCode, gen.KindKeyComparer,
		gen.KindCompareTo, gen.KindParse, gen.KindTryParse,
	}, skippedKinds(out))
	for _, s := range out.Skipped {
		assert.Equal(t, "mapped key member Code not found", s.Reason)
	}
}

func TestGenerate_ValueObjectUnresolvedKeyDegrades(t *testing.T) {
	out := generate(t, `
types:
  - name: Code
    kind: class
    annotations:
      - {name: ValueObject, type_args: [{name: string}], args: [{name: KeyMember, value: Raw}]}
`)
	assert.Empty(t, out.Kinds())
	assert.Equal(t, []gen.Kind{
		gen.KindKeyMember, gen.KindConstructor, gen.KindCreate, gen.KindTryCreate, gen.KindFactoryHook,
		gen.KindEquals, gen.KindHashCode, gen.KindKeyComparer, gen.KindCompareTo,
		gen.KindParse, gen.KindTryParse, gen.KindToString,
	}, skippedKinds(out))
	for _, s := range out.Skipped {
		assert.Equal(t, "mapped key member Raw not found", s.Reason)
	}
}

func TestGenerate_EmptyEnum(t *testing.T) {
	out := generate(t, `
types:
  - name: Color
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: int}]}]
`)
	assert.Equal(t, []gen.Kind{gen.KindSwitch, gen.KindMap}, skippedKinds(out))
	assert.Equal(t, "public static IReadOnlyList<Color> Items { get; } = new Color[] { };\n", fragment(t, out, gen.KindItems))
}

func TestGenerate_Delegates(t *testing.T) {
	out := generate(t, `
types:
  - name: Op
    kind: class
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Add, type: {name: Op}, modifiers: [public, static, readonly]}
      - kind: method
        name: Apply
        type: {name: int}
        modifiers: [public, partial]
        params: [{name: a, type: {name: int}}, {name: b, type: {name: int}}]
        annotations: [{name: UseDelegateFromConstructor}]
`)
	assert.Equal(t,
		"private readonly Func<int, int, int> _apply;\n\npublic partial int Apply(int a, int b) => this._apply(a, b);\n",
		fragment(t, out, gen.KindDelegate))
	assert.Contains(t, fragment(t, out, gen.KindConstructor), "private Op(string key, Func<int, int, int> apply)")
}

func TestGenerate_ValueObject(t *testing.T) {
	out := generate(t, `
types:
  - name: Amount
    kind: struct
    modifiers: [public, readonly, partial]
    annotations: [{name: ValueObject, type_args: [{name: decimal}]}]
`)
	assert.Equal(t, []gen.Kind{
		gen.KindKeyMember, gen.KindConstructor, gen.KindCreate, gen.KindTryCreate, gen.KindFactoryHook,
		gen.KindEquals, gen.KindHashCode, gen.KindKeyComparer, gen.KindCompareTo,
		gen.KindParse, gen.KindTryParse, gen.KindToString,
	}, out.Kinds())

	assert.Equal(t,
		"static partial void ValidateFactoryArguments(ref ValidationError? validationError, ref decimal key);\n",
		fragment(t, out, gen.KindFactoryHook))
	assert.Equal(t, "public override string ToString() => this.Key.ToString();\n", fragment(t, out, gen.KindToString))
	assert.NotContains(t, fragment(t, out, gen.KindEquals), "ReferenceEquals", "structs compare by key only")
	assert.Contains(t, fragment(t, out, gen.KindCompareTo), "Comparer<decimal>.Default.Compare(this.Key, other.Key)")
	assert.Contains(t, fragment(t, out, gen.KindParse), "return Create(decimal.Parse(s, provider));")
}

func TestGenerate_ValueObjectCustomComparer(t *testing.T) {
	out := generate(t, `
types:
  - name: Code
    kind: class
    annotations:
      - {name: ValueObject, type_args: [{name: string}]}
      - {name: KeyEqualityComparer, type_args: [{name: ComparerAccessors.StringOrdinal}, {name: string}]}
      - {name: KeyComparer, type_args: [{name: ComparerAccessors.StringOrdinal}, {name: string}]}
`)
	assert.Contains(t, fragment(t, out, gen.KindKeyComparer), "=> ComparerAccessors.StringOrdinal.EqualityComparer;")
	assert.Contains(t, fragment(t, out, gen.KindCompareTo), "ComparerAccessors.StringOrdinal.Comparer.Compare(this.Key, other.Key)")
	assert.Equal(t, "public override string ToString() => this.Key;\n", fragment(t, out, gen.KindToString))
	assert.Contains(t, fragment(t, out, gen.KindCreate), "throw new ArgumentNullException(nameof(key));")
}

func TestGenerate_ComplexValueObject(t *testing.T) {
	doc := `
types:
  - name: Address
    kind: class
    annotations: [{name: ComplexValueObject%s}]
    members:
      - {kind: property, name: Street, type: {name: string}, modifiers: [public]}
      - {kind: property, name: Number, type: {name: int}, modifiers: [public]}
`
	without := generate(t, strings.Replace(doc, "%s", "", 1))
	assert.Equal(t, []gen.Kind{gen.KindEquals, gen.KindHashCode}, skippedKinds(without))
	assert.Contains(t, without.Kinds(), gen.KindCreate)
	assert.Contains(t, fragment(t, without, gen.KindConstructor), "private Address(string street, int number)")

	with := generate(t, strings.Replace(doc, "%s",
		", args: [{name: DefaultStringComparison, value: StringComparison.OrdinalIgnoreCase}]", 1))
	assert.Empty(t, with.Skipped)
	equals := fragment(t, with, gen.KindEquals)
	assert.Contains(t, equals,
		"return StringComparer.FromComparison(StringComparison.OrdinalIgnoreCase).Equals(this.Street, other.Street)"+
			" && EqualityComparer<int>.Default.Equals(this.Number, other.Number);")
	assert.Contains(t, fragment(t, with, gen.KindHashCode), "hash.Add(this.Number, EqualityComparer<int>.Default);")
	assert.Contains(t, fragment(t, with, gen.KindTryCreate),
		"public static bool TryCreate(string street, int number, out Address? obj)")
}

func TestGenerate_UnionGolden(t *testing.T) {
	out := generate(t, `
types:
  - name: Shape
    kind: class
    modifiers: [public, abstract, partial]
    annotations: [{name: Union}]
    nested:
      - name: Circle
        kind: class
        modifiers: [public, sealed]
        bases: [{name: Shape}]
      - name: Polygon
        kind: class
        modifiers: [public, abstract]
        bases: [{name: Shape}]
        nested:
          - name: Square
            kind: class
            modifiers: [public, sealed]
            bases: [{name: Polygon}]
`)
	want := `private Shape()
{
}

public void Switch(Action<Circle> circle, Action<Square> square)
{
    if (this is Square squareValue)
    {
        square(squareValue);
        return;
    }
    if (this is Circle circleValue)
    {
        circle(circleValue);
        return;
    }
    throw new ArgumentOutOfRangeException("Shape", "Unknown Shape value.");
}

public TResult Map<TResult>(TResult circle, TResult square)
{
    if (this is Square squareValue)
    {
        return square;
    }
    if (this is Circle circleValue)
    {
        return circle;
    }
    throw new ArgumentOutOfRangeException("Shape", "Unknown Shape value.");
}
`
	assert.Equal(t, want, gen.Print(out.Fragments))
}

func TestGenerate_Deterministic(t *testing.T) {
	first := generate(t, colorDoc)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, generate(t, colorDoc)); diff != "" {
			t.Fatalf("generation differs (-first +again):\n%s", diff)
		}
	}
}

func TestOutput_Without(t *testing.T) {
	out := generate(t, colorDoc)

	filtered := out.Without(map[string]bool{gen.KindSwitch: true, gen.KindMap: true})
	assert.NotContains(t, filtered.Kinds(), gen.KindSwitch)
	assert.NotContains(t, filtered.Kinds(), gen.KindMap)
	assert.Contains(t, filtered.Kinds(), gen.KindItems)

	assert.Empty(t, out.Without(map[string]bool{"*": true}).Fragments)
	assert.Len(t, out.Without(nil).Fragments, len(out.Fragments))
}
