package syntax

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/token"
)

// TypeKind is the declared shape keyword of a type.
type TypeKind string

// Type kinds understood by the extractor.
const (
	KindClass        TypeKind = "class"
	KindStruct       TypeKind = "struct"
	KindRecord       TypeKind = "record"
	KindRecordStruct TypeKind = "record struct"
	KindInterface    TypeKind = "interface"
)

// IsStruct reports whether the kind declares a value-type shape.
func (k TypeKind) IsStruct() bool {
	return k == KindStruct || k == KindRecordStruct
}

// IsRecord reports whether the kind declares a record shape.
func (k TypeKind) IsRecord() bool {
	return k == KindRecord || k == KindRecordStruct
}

// Decl is one type declaration as exported by the host, together with the
// declarations nested inside it.
type Decl struct {
	Name        string       `yaml:"name" json:"name"`
	NameSpan    token.Span   `yaml:"name_span,omitempty" json:"name_span,omitempty"`
	Kind        TypeKind     `yaml:"kind" json:"kind"`
	Modifiers   []string     `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	TypeParams  []string     `yaml:"type_params,omitempty" json:"type_params,omitempty"`
	Bases       []TypeRef    `yaml:"bases,omitempty" json:"bases,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Members     []Member     `yaml:"members,omitempty" json:"members,omitempty"`
	Nested      []*Decl      `yaml:"nested,omitempty" json:"nested,omitempty"`

	// Enclosing lists the types this declaration is nested in, outermost first.
	Enclosing []Enclosing `yaml:"enclosing,omitempty" json:"enclosing,omitempty"`

	// PrimaryCtor is non-nil when the declaration has a primary constructor.
	PrimaryCtor *PrimaryCtor `yaml:"primary_ctor,omitempty" json:"primary_ctor,omitempty"`

	// Dispatches are exhaustive-dispatch call sites the host found for this type.
	Dispatches []Dispatch `yaml:"dispatches,omitempty" json:"dispatches,omitempty"`

	File string     `yaml:"file,omitempty" json:"file,omitempty"`
	Span token.Span `yaml:"span,omitempty" json:"span,omitempty"`

	// ModifiersSpan covers the modifier keywords, when the host reports it.
	// Text edits that rewrite modifiers need it.
	ModifiersSpan token.Span `yaml:"modifiers_span,omitempty" json:"modifiers_span,omitempty"`
}

// HasModifier reports whether the declaration carries the modifier.
func (d *Decl) HasModifier(m string) bool {
	return HasModifier(d.Modifiers, m)
}

// Annotation returns the first annotation with the given name and its index.
func (d *Decl) Annotation(name string) (Annotation, int, bool) {
	return findAnnotation(d.Annotations, name)
}

// DisplayName returns the type name with a generic arity suffix, e.g. "Box`1".
func (d *Decl) DisplayName() string {
	if len(d.TypeParams) == 0 {
		return d.Name
	}
	return d.Name + "`" + strconv.Itoa(len(d.TypeParams))
}

// MembersNamed returns the indexes of all members with the given name.
func (d *Decl) MembersNamed(name string) []int {
	var idx []int
	for i := range d.Members {
		if d.Members[i].Name == name {
			idx = append(idx, i)
		}
	}
	return idx
}

// NestedNamed returns the directly nested declaration with the given name.
func (d *Decl) NestedNamed(name string) *Decl {
	for _, n := range d.Nested {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// DerivesFrom reports whether a base of d names the given type.
func (d *Decl) DerivesFrom(name string) bool {
	for _, b := range d.Bases {
		if b.Name == name {
			return true
		}
	}
	return false
}

// TypeRef references a type by name with optional generic arguments.
type TypeRef struct {
	Name string    `yaml:"name" json:"name"`
	Args []TypeRef `yaml:"args,omitempty" json:"args,omitempty"`

	// Value is the host's answer to "is this a value type". Nil means unknown,
	// in which case well-known built-in names are inferred.
	Value *bool `yaml:"value,omitempty" json:"value,omitempty"`

	Span token.Span `yaml:"span,omitempty" json:"span,omitempty"`

	// Ref is the referenced declaration when it is part of the loaded snapshots.
	Ref *Decl `yaml:"-" json:"-"`
}

// Named returns a TypeRef for the given name and arguments.
func Named(name string, args ...TypeRef) TypeRef {
	return TypeRef{Name: name, Args: args}
}

// IsZero reports whether the reference names no type.
func (t TypeRef) IsZero() bool {
	return t.Name == ""
}

// String renders the reference as Name<Arg, ...>.
func (t TypeRef) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}

// Equal compares names and arguments, ignoring spans and resolution.
func (t TypeRef) Equal(u TypeRef) bool {
	if t.Name != u.Name || len(t.Args) != len(u.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(u.Args[i]) {
			return false
		}
	}
	return true
}

// IsString reports whether the reference is the built-in string type.
func (t TypeRef) IsString() bool {
	return t.Name == "string" || t.Name == "String"
}

var builtinValueTypes = map[string]bool{
	"bool": true, "byte": true, "sbyte": true, "short": true, "ushort": true,
	"int": true, "uint": true, "long": true, "ulong": true, "nint": true, "nuint": true,
	"float": true, "double": true, "decimal": true, "char": true,
	"Guid": true, "DateTime": true, "DateTimeOffset": true, "DateOnly": true,
	"TimeOnly": true, "TimeSpan": true,
}

var builtinReferenceTypes = map[string]bool{
	"string": true, "String": true, "object": true, "dynamic": true,
}

// ValueKind reports whether the type is a value type and whether that answer
// is known at all.
func (t TypeRef) ValueKind() (value, known bool) {
	if t.Value != nil {
		return *t.Value, true
	}
	if t.Ref != nil {
		return t.Ref.Kind.IsStruct(), true
	}
	if builtinValueTypes[t.Name] {
		return true, true
	}
	if builtinReferenceTypes[t.Name] || strings.HasSuffix(t.Name, "[]") {
		return false, true
	}
	return false, false
}

// IsOrdered reports whether the type has a natural ordering the generator can
// rely on without an explicit comparer.
func (t TypeRef) IsOrdered() bool {
	switch t.Name {
	case "byte", "sbyte", "short", "ushort", "int", "uint", "long", "ulong",
		"float", "double", "decimal", "char", "DateTime", "DateTimeOffset",
		"DateOnly", "TimeOnly", "TimeSpan", "Guid":
		return true
	}
	return false
}

// Annotation is a declarative marker attached to a type or member.
type Annotation struct {
	Name     string     `yaml:"name" json:"name"`
	TypeArgs []TypeRef  `yaml:"type_args,omitempty" json:"type_args,omitempty"`
	Args     []Arg      `yaml:"args,omitempty" json:"args,omitempty"`
	Span     token.Span `yaml:"span,omitempty" json:"span,omitempty"`
}

// Arg is a named annotation argument.
type Arg struct {
	Name  string     `yaml:"name" json:"name"`
	Value string     `yaml:"value" json:"value"`
	Span  token.Span `yaml:"span,omitempty" json:"span,omitempty"`
}

// Arg returns the named argument.
func (a Annotation) Arg(name string) (Arg, bool) {
	for _, arg := range a.Args {
		if arg.Name == name {
			return arg, true
		}
	}
	return Arg{}, false
}

// Bool reports whether the named argument is present and set to true.
func (a Annotation) Bool(name string) bool {
	arg, ok := a.Arg(name)
	return ok && strings.EqualFold(strings.TrimSpace(arg.Value), "true")
}

// String returns the named argument value or def when absent.
func (a Annotation) String(name, def string) string {
	if arg, ok := a.Arg(name); ok {
		return arg.Value
	}
	return def
}

// MemberKind classifies a member declaration.
type MemberKind string

// Member kinds.
const (
	MemberField       MemberKind = "field"
	MemberProperty    MemberKind = "property"
	MemberMethod      MemberKind = "method"
	MemberConstructor MemberKind = "constructor"
)

// Member is one member declaration of a type.
type Member struct {
	Kind        MemberKind   `yaml:"kind" json:"kind"`
	Name        string       `yaml:"name,omitempty" json:"name,omitempty"`
	NameSpan    token.Span   `yaml:"name_span,omitempty" json:"name_span,omitempty"`
	Type        TypeRef      `yaml:"type,omitempty" json:"type,omitempty"`
	Modifiers   []string     `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	TypeParams  []string     `yaml:"type_params,omitempty" json:"type_params,omitempty"`
	Params      []Param      `yaml:"params,omitempty" json:"params,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Body        string       `yaml:"body,omitempty" json:"body,omitempty"`
	Span        token.Span   `yaml:"span,omitempty" json:"span,omitempty"`

	ModifiersSpan token.Span `yaml:"modifiers_span,omitempty" json:"modifiers_span,omitempty"`
}

// HasModifier reports whether the member carries the modifier.
func (m *Member) HasModifier(mod string) bool {
	return HasModifier(m.Modifiers, mod)
}

// IsStatic reports whether the member is static.
func (m *Member) IsStatic() bool {
	return m.HasModifier("static")
}

// Annotation returns the first annotation with the given name and its index.
func (m *Member) Annotation(name string) (Annotation, int, bool) {
	return findAnnotation(m.Annotations, name)
}

// Anchor returns the most precise span of the member: its name when known.
func (m *Member) Anchor() token.Span {
	if m.NameSpan.IsValid() {
		return m.NameSpan
	}
	return m.Span
}

// Param is a constructor or method parameter.
type Param struct {
	Name string  `yaml:"name" json:"name"`
	Type TypeRef `yaml:"type" json:"type"`
}

// PrimaryCtor describes a primary constructor parameter list.
type PrimaryCtor struct {
	Params []Param    `yaml:"params,omitempty" json:"params,omitempty"`
	Span   token.Span `yaml:"span,omitempty" json:"span,omitempty"`
}

// Enclosing is one enclosing type of a nested declaration.
type Enclosing struct {
	Name      string   `yaml:"name" json:"name"`
	Modifiers []string `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
}

// Dispatch is a call of a generated exhaustive-dispatch helper found in user code.
type Dispatch struct {
	Method string     `yaml:"method" json:"method"`
	Cases  []string   `yaml:"cases,omitempty" json:"cases,omitempty"`
	Span   token.Span `yaml:"span,omitempty" json:"span,omitempty"`
}

// HasModifier reports whether mods contains m.
func HasModifier(mods []string, m string) bool {
	for _, x := range mods {
		if x == m {
			return true
		}
	}
	return false
}

func findAnnotation(list []Annotation, name string) (Annotation, int, bool) {
	for i, a := range list {
		if a.Name == name {
			return a, i, true
		}
	}
	return Annotation{}, -1, false
}
