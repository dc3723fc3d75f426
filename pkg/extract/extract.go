// Package extract builds a TypeModel from one annotated declaration.
//
// Extraction never fails: facts that cannot be determined are recorded as
// unresolved model states and reported later by the rule engine.
package extract

import (
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// Extract builds the model of decl, following its base chain one level.
func Extract(decl *syntax.Decl) *model.TypeModel {
	return extract(decl, true)
}

// IsAnnotated reports whether decl carries a category marker or an enum
// contract interface.
func IsAnnotated(decl *syntax.Decl) bool {
	if decl == nil {
		return false
	}
	for _, name := range model.CategoryMarkers {
		if _, _, ok := decl.Annotation(name); ok {
			return true
		}
	}
	return hasContract(decl)
}

func extract(decl *syntax.Decl, followBase bool) *model.TypeModel {
	m := &model.TypeModel{
		Extension: model.Root{},
		KeyType:   model.Unresolved[syntax.TypeRef]("no declaration"),
		Key:       model.Unresolved[model.KeyMember]("no declaration"),
		Comparers: model.ComparerConfig{
			DefaultStringComparison: model.Unresolved[string]("not declared"),
		},
	}
	if decl == nil {
		return m
	}

	m.Name = decl.Name
	m.DisplayName = decl.DisplayName()
	m.File = decl.File
	m.NameSpan = decl.NameSpan
	if !m.NameSpan.IsValid() {
		m.NameSpan = decl.Span
	}
	m.Shape = model.ShapeOf(decl.Kind)
	m.Modifiers = append([]string(nil), decl.Modifiers...)
	m.IsSealed = decl.HasModifier("sealed")
	m.IsAbstract = decl.HasModifier("abstract")
	m.IsPartial = decl.HasModifier("partial")
	m.IsReadOnlyStruct = m.Shape.IsStruct() && decl.HasModifier("readonly")
	m.GenericArity = len(decl.TypeParams)
	m.Accessibility = syntax.DeclAccessibility(decl, len(decl.Enclosing) > 0)
	m.NestingChain = nestingChain(decl.Enclosing)
	m.Dispatches = append([]syntax.Dispatch(nil), decl.Dispatches...)

	classify(m, decl)
	m.ContractKeys = contractKeys(decl)
	m.KeyType = keyType(m)

	if m.Marker != nil {
		m.IsExtensible = m.Category.IsEnum() && m.Marker.Annotation.Bool(model.ArgIsExtensible)
		m.AllowDefaultStructs = m.Marker.Annotation.Bool(model.ArgAllowDefaultStructs)
		if arg, ok := m.Marker.Annotation.Arg(model.ArgDefaultStringComparison); ok {
			m.Comparers.DefaultStringComparison = model.Known(arg.Value)
		}
	}

	collectMembers(m, decl)
	resolveKey(m, decl)
	collectComparers(m, decl)
	collectNested(m, decl)

	if followBase && m.Category.IsEnum() {
		m.Extension = extension(decl)
	}
	return m
}

func nestingChain(enc []syntax.Enclosing) []syntax.Accessibility {
	if len(enc) == 0 {
		return nil
	}
	chain := make([]syntax.Accessibility, len(enc))
	for i, e := range enc {
		def := syntax.AccessPrivate
		if i == 0 {
			def = syntax.AccessInternal
		}
		chain[i] = syntax.ParseAccessibility(e.Modifiers, def)
	}
	return chain
}

// classify picks exactly one category by marker precedence and records every
// further marker as a conflict.
func classify(m *model.TypeModel, decl *syntax.Decl) {
	for _, name := range model.CategoryMarkers {
		ann, idx, ok := decl.Annotation(name)
		if !ok {
			continue
		}
		ref := model.MarkerRef{Annotation: ann, Index: idx}
		if m.Marker != nil {
			m.CategoryConflicts = append(m.CategoryConflicts, ref)
			continue
		}
		m.Marker = &ref
		m.Category = categoryOf(name, ann, decl)
	}
	if m.Marker != nil {
		return
	}
	switch {
	case decl.DerivesFrom(model.ContractValidatableEnum):
		m.Category = model.CategoryValidatableEnum
	case decl.DerivesFrom(model.ContractEnum):
		m.Category = model.CategoryEnum
	}
}

func categoryOf(marker string, ann syntax.Annotation, decl *syntax.Decl) model.Category {
	switch marker {
	case model.MarkerSmartEnum:
		if ann.Bool(model.ArgIsValidatable) || decl.DerivesFrom(model.ContractValidatableEnum) {
			return model.CategoryValidatableEnum
		}
		return model.CategoryEnum
	case model.MarkerValueObject:
		return model.CategoryValueObject
	case model.MarkerComplexValueObject:
		return model.CategoryComplexValueObject
	case model.MarkerUnion:
		return model.CategoryUnion
	}
	return model.CategoryUnknown
}

func hasContract(decl *syntax.Decl) bool {
	for _, b := range decl.Bases {
		if model.IsContract(b.Name) {
			return true
		}
	}
	return false
}

func contractKeys(decl *syntax.Decl) []model.ContractKey {
	var keys []model.ContractKey
	for _, b := range decl.Bases {
		if !model.IsContract(b.Name) || len(b.Args) == 0 {
			continue
		}
		keys = append(keys, model.ContractKey{Interface: b.Name, Key: b.Args[0], Span: b.Span})
	}
	return keys
}

func keyType(m *model.TypeModel) model.Fact[syntax.TypeRef] {
	if !m.Category.HasKey() {
		return model.Unresolved[syntax.TypeRef]("category has no key member")
	}
	if m.Marker != nil && len(m.Marker.Annotation.TypeArgs) > 0 {
		return model.Known(m.Marker.Annotation.TypeArgs[0])
	}
	if len(m.ContractKeys) == 0 {
		return model.Unresolved[syntax.TypeRef]("no key type declared")
	}
	first := m.ContractKeys[0].Key
	for _, ck := range m.ContractKeys[1:] {
		if !ck.Key.Equal(first) {
			return model.Unresolved[syntax.TypeRef]("conflicting enum contract key types")
		}
	}
	return model.Known(first)
}

// collectMembers separates items, item-shaped properties, constructors,
// delegate methods, factories and ordinary instance members.
func collectMembers(m *model.TypeModel, decl *syntax.Decl) {
	for i := range decl.Members {
		mem := &decl.Members[i]
		access := syntax.MemberAccessibility(mem)

		switch mem.Kind {
		case syntax.MemberField, syntax.MemberProperty:
			if mem.IsStatic() {
				if m.Category.IsEnum() && isSelfType(mem.Type, decl) {
					item := model.ItemDescriptor{
						Name:          mem.Name,
						Access:        access,
						Modifiers:     append([]string(nil), mem.Modifiers...),
						IsStaticField: mem.Kind == syntax.MemberField,
						IsReadOnly:    mem.HasModifier("readonly"),
						MemberIndex:   i,
						NameSpan:      mem.Anchor(),
					}
					if mem.Kind == syntax.MemberField {
						m.Items = append(m.Items, item)
					} else {
						m.ItemProperties = append(m.ItemProperties, item)
					}
				}
				break
			}
			if mem.HasModifier("const") {
				break
			}
			m.Members = append(m.Members, memberDescriptor(mem, i, access))
		case syntax.MemberConstructor:
			if mem.IsStatic() {
				break
			}
			m.Constructors = append(m.Constructors, model.Constructor{
				Access:      access,
				Params:      append([]syntax.Param(nil), mem.Params...),
				MemberIndex: i,
				Span:        mem.Anchor(),
			})
		case syntax.MemberMethod:
			if _, _, ok := mem.Annotation(model.AnnotationUseDelegate); ok {
				m.DelegateMethods = append(m.DelegateMethods, model.DelegateMethod{
					Name:        mem.Name,
					TypeParams:  append([]string(nil), mem.TypeParams...),
					ReturnType:  mem.Type,
					Params:      append([]syntax.Param(nil), mem.Params...),
					MemberIndex: i,
					NameSpan:    mem.Anchor(),
				})
			}
			if mem.Name == model.InvalidItemFactory && mem.IsStatic() {
				m.HasInvalidItemFactory = true
			}
		}

		if mem.HasModifier("virtual") {
			m.VirtualMembers = append(m.VirtualMembers, memberDescriptor(mem, i, access))
		}
	}

	if decl.PrimaryCtor != nil {
		m.Constructors = append(m.Constructors, model.Constructor{
			Access:      m.Accessibility,
			Params:      append([]syntax.Param(nil), decl.PrimaryCtor.Params...),
			IsPrimary:   true,
			MemberIndex: syntax.NoIndex,
			Span:        decl.PrimaryCtor.Span,
		})
	}

	for i, ann := range decl.Annotations {
		if ann.Name != model.AnnotationObjectFactory {
			continue
		}
		f := model.ObjectFactory{
			HasCorrespondingConstructor: ann.Bool(model.ArgHasCorrespondingCtor),
			AnnotationIndex:             i,
			Span:                        ann.Span,
		}
		switch {
		case len(ann.TypeArgs) > 0:
			f.ValueType = ann.TypeArgs[0]
		default:
			if arg, ok := ann.Arg(model.ArgValueType); ok {
				f.ValueType = syntax.Named(strings.TrimSpace(arg.Value))
			}
		}
		m.Factories = append(m.Factories, f)
	}
}

func memberDescriptor(mem *syntax.Member, idx int, access syntax.Accessibility) model.MemberDescriptor {
	return model.MemberDescriptor{
		Name:        mem.Name,
		Kind:        mem.Kind,
		Type:        mem.Type,
		Access:      access,
		MemberIndex: idx,
		NameSpan:    mem.Anchor(),
	}
}

func isSelfType(t syntax.TypeRef, decl *syntax.Decl) bool {
	return t.Name == decl.Name && len(t.Args) == 0
}
