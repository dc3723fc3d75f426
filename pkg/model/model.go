// Package model defines the semantic model extracted from one annotated
// declaration. A TypeModel is built fresh per extraction and shared read-only
// by the rule engine and the generator.
package model

import (
	"github.com/leapstack-labs/smartgen/pkg/syntax"
	"github.com/leapstack-labs/smartgen/pkg/token"
)

// TypeModel is the extracted view of one annotated type.
type TypeModel struct {
	Name        string
	DisplayName string
	File        string
	NameSpan    token.Span

	Category      Category
	Shape         Shape
	Accessibility syntax.Accessibility
	Modifiers     []string

	IsSealed         bool
	IsAbstract       bool
	IsPartial        bool
	IsExtensible     bool
	IsReadOnlyStruct bool
	GenericArity     int

	// NestingChain holds the accessibilities of the enclosing types,
	// outermost first. Empty for top-level types.
	NestingChain []syntax.Accessibility

	// Marker is the annotation that chose the category, nil when the category
	// comes from a contract interface only.
	Marker *MarkerRef

	// CategoryConflicts are further category annotations found on the type.
	CategoryConflicts []MarkerRef

	Extension Extension

	Items          []ItemDescriptor
	ItemProperties []ItemDescriptor
	Variants       []NestedTypeDescriptor
	InnerTypes     []NestedTypeDescriptor

	KeyType    Fact[syntax.TypeRef]
	Key        Fact[KeyMember]
	KeyMapping *KeyMapping
	// ContractKeys are the key types of every enum contract interface the
	// type declares, in declaration order.
	ContractKeys []ContractKey

	Comparers ComparerConfig

	Constructors    []Constructor
	DelegateMethods []DelegateMethod
	Members         []MemberDescriptor
	VirtualMembers  []MemberDescriptor
	Factories       []ObjectFactory

	HasInvalidItemFactory bool
	AllowDefaultStructs   bool
	Dispatches            []syntax.Dispatch
}

// IsValidatable reports whether the type is a validatable enum.
func (m *TypeModel) IsValidatable() bool {
	return m.Category == CategoryValidatableEnum
}

// IsNested reports whether the annotated type is declared inside another type.
func (m *TypeModel) IsNested() bool {
	return len(m.NestingChain) > 0
}

// Base returns the extended base model, or nil for root types.
func (m *TypeModel) Base() *TypeModel {
	if d, ok := m.Extension.(Derived); ok {
		return d.Base
	}
	return nil
}

// KeyName returns the resolved key member name or the canonical name when
// the key is unresolved.
func (m *TypeModel) KeyName() string {
	if k, ok := m.Key.Get(); ok {
		return k.Name
	}
	if m.KeyMapping != nil {
		return m.KeyMapping.CanonicalName
	}
	return DefaultKeyMemberName
}

// TypeNode addresses the annotated type itself.
func (m *TypeModel) TypeNode() syntax.NodeRef {
	return syntax.TypeNode()
}

// MarkerRef locates an annotation on the annotated type.
type MarkerRef struct {
	Annotation syntax.Annotation
	Index      int
}

// Node addresses the annotation.
func (r MarkerRef) Node() syntax.NodeRef {
	return syntax.TypeNode().WithAnnotation(r.Index)
}

// ArgAnchor returns the span and node of the named argument, falling back to
// the annotation itself when the argument is absent.
func (r MarkerRef) ArgAnchor(name string) (token.Span, syntax.NodeRef) {
	if arg, ok := r.Annotation.Arg(name); ok && arg.Span.IsValid() {
		return arg.Span, r.Node().WithArg(name)
	}
	return r.Annotation.Span, r.Node()
}

// Extension is the single-level specialization link of a type: Root or Derived.
type Extension interface {
	isExtension()
}

// Root marks a type that extends no annotated base.
type Root struct{}

// Derived marks a type that extends exactly one annotated base. The base is
// extracted shallowly; its own base is never followed.
type Derived struct {
	Base    *TypeModel
	BaseRef syntax.TypeRef
}

func (Root) isExtension()    {}
func (Derived) isExtension() {}

// ItemDescriptor is one item candidate of an enum.
type ItemDescriptor struct {
	Name          string
	Access        syntax.Accessibility
	Modifiers     []string
	IsStaticField bool
	IsReadOnly    bool
	MemberIndex   int
	NameSpan      token.Span
}

// IsStaticReadOnlyField reports whether the item is declared as a static
// read-only field.
func (d ItemDescriptor) IsStaticReadOnlyField() bool {
	return d.IsStaticField && d.IsReadOnly
}

// Node addresses the declaring member.
func (d ItemDescriptor) Node() syntax.NodeRef {
	return syntax.MemberNode(d.MemberIndex)
}

// NestedTypeDescriptor is a union variant or a derived inner type of an enum.
type NestedTypeDescriptor struct {
	Name         string
	Path         []string
	Access       syntax.Accessibility
	Modifiers    []string
	Reimplements bool
	// Depth is 1 for types declared directly inside the root type.
	Depth      int
	IsAbstract bool
	NameSpan   token.Span
}

// Node addresses the nested declaration.
func (d NestedTypeDescriptor) Node() syntax.NodeRef {
	return syntax.TypeNode(d.Path...)
}

// KeySource records where the key member comes from.
type KeySource int

// Key sources.
const (
	KeyGenerated KeySource = iota
	KeyMapped
	KeyCustom
)

// String returns the source name.
func (s KeySource) String() string {
	switch s {
	case KeyMapped:
		return "mapped"
	case KeyCustom:
		return "custom"
	default:
		return "generated"
	}
}

// KeyMember describes the resolved key member.
type KeyMember struct {
	Name     string
	Type     syntax.TypeRef
	Access   syntax.Accessibility
	Source   KeySource
	IsMethod bool
	// MemberIndex is the declaring member, NoIndex for generated keys.
	MemberIndex int
}

// ContractKey is one enum contract interface instance.
type ContractKey struct {
	Interface string
	Key       syntax.TypeRef
	Span      token.Span
}

// Resolution is the outcome of resolving a key member reference.
type Resolution int

// Resolution outcomes.
const (
	Resolved Resolution = iota
	NotFound
	Ambiguous
	NotPublic
	GenericMethod
	CustomMissing
)

// KeyMapping records how an explicit or hand-written key member was looked up.
type KeyMapping struct {
	CanonicalName string
	// Target is the member name an explicit maps-to argument names; empty
	// for hand-written key members.
	Target     string
	Source     KeySource
	Resolution Resolution
	Candidates []int
	Span       token.Span
	Node       syntax.NodeRef
}

// ComparerKind distinguishes equality from ordering comparers.
type ComparerKind int

// Comparer kinds.
const (
	EqualityComparer ComparerKind = iota
	OrderingComparer
)

// ComparerSource records where a comparer was declared.
type ComparerSource int

// Comparer sources.
const (
	// FromTypeAnnotation is an annotation on the annotated type.
	FromTypeAnnotation ComparerSource = iota
	// FromMemberAnnotation is an annotation on an individual member.
	FromMemberAnnotation
	// FromDeclaredMember is a hand-written comparer accessor member.
	FromDeclaredMember
)

// ComparerRef is one configured comparer.
type ComparerRef struct {
	Kind     ComparerKind
	Source   ComparerSource
	Accessor string
	// Annotation is the declaring annotation name; empty for declared members.
	Annotation string
	// ElementType is the type the comparer compares; zero when not declared.
	ElementType syntax.TypeRef
	// MemberName and MemberIndex identify the annotated or declaring member.
	MemberName  string
	MemberIndex int
	MemberType  syntax.TypeRef
	IsStatic    bool
	Access      syntax.Accessibility
	Span        token.Span
	Node        syntax.NodeRef
}

// ComparerConfig gathers every comparer setting of a type.
type ComparerConfig struct {
	KeyEquality *ComparerRef
	KeyOrdering *ComparerRef
	// Member holds member-level comparer annotations in declaration order.
	Member []ComparerRef
	// Declared holds hand-written comparer accessor members.
	Declared []ComparerRef

	DefaultStringComparison Fact[string]
}

// MemberComparer returns the equality comparer configured for a member.
func (c ComparerConfig) MemberComparer(name string) *ComparerRef {
	for i := range c.Member {
		if c.Member[i].MemberName == name && c.Member[i].Kind == EqualityComparer {
			return &c.Member[i]
		}
	}
	return nil
}

// Constructor describes an explicit or primary constructor.
type Constructor struct {
	Access      syntax.Accessibility
	Params      []syntax.Param
	IsPrimary   bool
	MemberIndex int
	Span        token.Span
}

// Node addresses the constructor member.
func (c Constructor) Node() syntax.NodeRef {
	return syntax.MemberNode(c.MemberIndex)
}

// DelegateMethod is a method whose implementation is supplied through the
// generated constructor.
type DelegateMethod struct {
	Name        string
	TypeParams  []string
	ReturnType  syntax.TypeRef
	Params      []syntax.Param
	MemberIndex int
	NameSpan    token.Span
}

// MemberDescriptor is an ordinary instance member.
type MemberDescriptor struct {
	Name        string
	Kind        syntax.MemberKind
	Type        syntax.TypeRef
	Access      syntax.Accessibility
	MemberIndex int
	NameSpan    token.Span
}

// ObjectFactory is one declared object factory.
type ObjectFactory struct {
	ValueType                   syntax.TypeRef
	HasCorrespondingConstructor bool
	AnnotationIndex             int
	Span                        token.Span
}

// Node addresses the factory annotation.
func (f ObjectFactory) Node() syntax.NodeRef {
	return syntax.TypeNode().WithAnnotation(f.AnnotationIndex)
}
