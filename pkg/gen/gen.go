package gen

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// ErrUnsupported is returned for models that belong to no category.
var ErrUnsupported = errors.New("unsupported model")

// Fragment is one generated member.
type Fragment struct {
	Kind Kind
	Decl Decl
}

// Skipped records a fragment that was not generated because a model fact it
// depends on is unresolved.
type Skipped struct {
	Kind   Kind
	Reason string
}

// Output is the result of generating one model.
type Output struct {
	Fragments []Fragment
	Skipped   []Skipped
}

// Kinds returns the distinct fragment kinds of the output in order.
func (o *Output) Kinds() []Kind {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, f := range o.Fragments {
		if !seen[f.Kind] {
			seen[f.Kind] = true
			kinds = append(kinds, f.Kind)
		}
	}
	return kinds
}

// Without returns the output minus the fragments of the blocked kinds.
// The "*" kind blocks everything.
func (o *Output) Without(blocked map[string]bool) *Output {
	res := &Output{Skipped: o.Skipped}
	if blocked["*"] {
		return res
	}
	for _, f := range o.Fragments {
		if !blocked[f.Kind] {
			res.Fragments = append(res.Fragments, f)
		}
	}
	return res
}

// Generate builds the companion members of m. m is only read. Members
// whose prerequisite facts are unresolved are reported in Skipped while
// the rest still generate.
func Generate(m *model.TypeModel) (*Output, error) {
	if m == nil {
		return nil, fmt.Errorf("generate: nil model: %w", ErrUnsupported)
	}
	b := &builder{m: m, out: &Output{}}
	switch {
	case m.Category.IsEnum():
		b.enum()
	case m.Category == model.CategoryValueObject:
		b.valueObject()
	case m.Category == model.CategoryComplexValueObject:
		b.complexValueObject()
	case m.Category == model.CategoryUnion:
		b.union()
	default:
		return nil, fmt.Errorf("generate %s: category %s: %w", m.Name, m.Category, ErrUnsupported)
	}
	sort.SliceStable(b.out.Fragments, func(i, j int) bool {
		return kindRank(b.out.Fragments[i].Kind) < kindRank(b.out.Fragments[j].Kind)
	})
	sort.SliceStable(b.out.Skipped, func(i, j int) bool {
		return kindRank(b.out.Skipped[i].Kind) < kindRank(b.out.Skipped[j].Kind)
	})
	return b.out, nil
}

type builder struct {
	m   *model.TypeModel
	out *Output
}

func (b *builder) emit(kind Kind, decls ...Decl) {
	for _, d := range decls {
		b.out.Fragments = append(b.out.Fragments, Fragment{Kind: kind, Decl: d})
	}
}

func (b *builder) skip(kind Kind, reason string) {
	b.out.Skipped = append(b.out.Skipped, Skipped{Kind: kind, Reason: reason})
}

// self is the annotated type, nullable for reference shapes.
func (b *builder) self() syntax.TypeRef {
	return typ(b.m.Name)
}

func (b *builder) nullableSelf() syntax.TypeRef {
	if b.m.Shape.IsStruct() {
		return b.self()
	}
	return typ(b.m.Name + "?")
}

func (b *builder) isStruct() bool {
	return b.m.Shape.IsStruct()
}

// keyed returns the key member and key type, recording kind as skipped
// when either is unresolved.
func (b *builder) keyed(kind Kind) (model.KeyMember, syntax.TypeRef, bool) {
	key, ok := b.m.Key.Get()
	if !ok {
		b.skip(kind, b.m.Key.Reason())
		return key, syntax.TypeRef{}, false
	}
	kt, ok := b.m.KeyType.Get()
	if !ok {
		kt = key.Type
	}
	if kt.IsZero() {
		b.skip(kind, b.m.KeyType.Reason())
		return key, kt, false
	}
	return key, kt, true
}

// keyOf reads the key of x.
func keyOf(x Expr, key model.KeyMember) Expr {
	if key.IsMethod {
		return call(sel(x, key.Name))
	}
	return sel(x, key.Name)
}

// maybeNull reports whether values of t can be null.
func maybeNull(t syntax.TypeRef) bool {
	value, known := t.ValueKind()
	return !known || !value
}

// keyEquality is the expression of the key equality comparer.
func (b *builder) keyEquality(kt syntax.TypeRef) Expr {
	if c := b.m.Comparers.KeyEquality; c != nil {
		if c.Source == model.FromDeclaredMember {
			return ident(c.Accessor)
		}
		return sel(ident(c.Accessor), "EqualityComparer")
	}
	if kt.IsString() {
		return sel(ident(model.OrdinalIgnoreCase), "EqualityComparer")
	}
	return sel(ident("EqualityComparer<"+kt.String()+">"), "Default")
}

// keyOrdering is the expression of the key ordering comparer, or nil when
// the key has no ordering.
func (b *builder) keyOrdering(kt syntax.TypeRef) Expr {
	if c := b.m.Comparers.KeyOrdering; c != nil {
		if c.Source == model.FromDeclaredMember {
			return ident(c.Accessor)
		}
		return sel(ident(c.Accessor), "Comparer")
	}
	if kt.IsOrdered() {
		return sel(ident("Comparer<"+kt.String()+">"), "Default")
	}
	return nil
}

// keyComparerAccessor emits the static accessor of the key equality
// comparer unless the type declares it by hand.
func (b *builder) keyComparerAccessor(kt syntax.TypeRef) {
	if c := b.m.Comparers.KeyEquality; c != nil && c.Source == model.FromDeclaredMember {
		return
	}
	b.emit(KindKeyComparer, &Property{
		Modifiers: []string{"public", "static"},
		Type:      typ("IEqualityComparer", kt),
		Name:      model.KeyEqualityAccessor,
		Getter:    b.keyEquality(kt),
	})
}

// keyEqualityMembers emits Equals and GetHashCode over the key.
func (b *builder) keyEqualityMembers(key model.KeyMember) {
	other := ident("other")
	var body []Stmt
	if !b.isStruct() {
		body = append(body,
			&If{Cond: &IsNull{X: other}, Then: []Stmt{ret(boolean(false))}},
			&If{Cond: call(ident("ReferenceEquals"), this(), other), Then: []Stmt{ret(boolean(true))}},
		)
	}
	body = append(body, ret(call(sel(ident(model.KeyEqualityAccessor), "Equals"), keyOf(this(), key), keyOf(other, key))))
	b.emit(KindEquals,
		&Method{
			Modifiers: []string{"public"},
			Return:    typ("bool"),
			Name:      "Equals",
			Params:    []Param{{Type: b.nullableSelf(), Name: "other"}},
			Body:      body,
		},
		objectEquals(b.self()),
	)
	b.emit(KindHashCode, &Method{
		Modifiers: []string{"public", "override"},
		Return:    typ("int"),
		Name:      "GetHashCode",
		Expr:      call(sel(ident(model.KeyEqualityAccessor), "GetHashCode"), keyOf(this(), key)),
	})
}

func objectEquals(self syntax.TypeRef) *Method {
	return &Method{
		Modifiers: []string{"public", "override"},
		Return:    typ("bool"),
		Name:      "Equals",
		Params:    []Param{{Type: typ("object?"), Name: "obj"}},
		Expr: &Binary{
			Left:  &IsType{X: ident("obj"), Type: self, Name: "other"},
			Op:    "&&",
			Right: call(ident("Equals"), ident("other")),
		},
	}
}

// compareTo emits CompareTo when the key has an ordering.
func (b *builder) compareTo(key model.KeyMember, kt syntax.TypeRef) {
	cmp := b.keyOrdering(kt)
	if cmp == nil {
		return
	}
	other := ident("other")
	var body []Stmt
	if !b.isStruct() {
		body = append(body, &If{Cond: &IsNull{X: other}, Then: []Stmt{ret(&Lit{Kind: LitRaw, Value: "1"})}})
	}
	body = append(body, ret(call(sel(cmp, "Compare"), keyOf(this(), key), keyOf(other, key))))
	b.emit(KindCompareTo, &Method{
		Modifiers: []string{"public"},
		Return:    typ("int"),
		Name:      "CompareTo",
		Params:    []Param{{Type: b.nullableSelf(), Name: "other"}},
		Body:      body,
	})
}

// parsable reports whether keys of type t can be parsed from text.
func parsable(t syntax.TypeRef) bool {
	if t.IsString() {
		return true
	}
	return t.IsOrdered() && t.Name != "char"
}

// parseMembers emits Parse and TryParse that convert text to a key and
// delegate to the lookup methods get and tryGet.
func (b *builder) parseMembers(kt syntax.TypeRef, get, tryGet string) {
	s, provider, result := ident("s"), ident("provider"), ident("result")
	params := []Param{
		{Type: typ("string"), Name: "s"},
		{Type: typ("IFormatProvider?"), Name: "provider"},
	}

	var parseBody, tryBody []Stmt
	if kt.IsString() {
		parseBody = []Stmt{ret(call(ident(get), s))}
		tryBody = []Stmt{
			&If{Cond: &IsNull{X: s}, Then: []Stmt{assign(result, zero()), ret(boolean(false))}},
			ret(call(ident(tryGet), s, out(result))),
		}
	} else {
		parseBody = []Stmt{ret(call(ident(get), call(sel(ident(kt.Name), "Parse"), s, provider)))}
		tryBody = []Stmt{
			&If{
				Cond: &Unary{Op: "!", X: call(sel(ident(kt.Name), "TryParse"), s, provider, out(&VarExpr{Name: "key"}))},
				Then: []Stmt{assign(result, zero()), ret(boolean(false))},
			},
			ret(call(ident(tryGet), ident("key"), out(result))),
		}
	}

	b.emit(KindParse, &Method{
		Modifiers: []string{"public", "static"},
		Return:    b.self(),
		Name:      model.MethodParse,
		Params:    params,
		Body:      parseBody,
	})
	b.emit(KindTryParse, &Method{
		Modifiers: []string{"public", "static"},
		Return:    typ("bool"),
		Name:      model.MethodTryParse,
		Params: []Param{
			{Type: typ("string?"), Name: "s"},
			params[1],
			{Modifier: "out", Type: b.nullableSelf(), Name: "result"},
		},
		Body: tryBody,
	})
}

// paramName turns a member name into a parameter name.
func paramName(name string) string {
	p := lowerFirst(name)
	if reservedWords[p] {
		return "@" + p
	}
	return p
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var reservedWords = map[string]bool{
	"base": true, "bool": true, "break": true, "case": true, "class": true,
	"default": true, "event": true, "false": true, "fixed": true, "for": true,
	"in": true, "int": true, "is": true, "new": true, "null": true,
	"object": true, "operator": true, "out": true, "params": true, "ref": true,
	"return": true, "string": true, "struct": true, "switch": true, "this": true,
	"true": true, "void": true, "while": true,
}
