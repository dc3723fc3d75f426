package extract

import (
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// resolveKey resolves the key member from the canonical name convention, an
// explicit maps-to argument, or a hand-written member.
func resolveKey(m *model.TypeModel, decl *syntax.Decl) {
	if !m.Category.HasKey() {
		m.Key = model.Unresolved[model.KeyMember]("category has no key member")
		return
	}

	canonical := model.DefaultKeyMemberName
	var marker syntax.Annotation
	if m.Marker != nil {
		marker = m.Marker.Annotation
		canonical = marker.String(model.ArgKeyMemberName, model.DefaultKeyMemberName)
	}

	if target, ok := marker.Arg(model.ArgKeyMember); ok {
		span, node := m.Marker.ArgAnchor(model.ArgKeyMember)
		mapping := &model.KeyMapping{
			CanonicalName: canonical,
			Target:        target.Value,
			Source:        model.KeyMapped,
			Span:          span,
			Node:          node,
		}
		m.KeyMapping = mapping
		m.Key = resolveMapped(mapping, decl)
		return
	}

	if marker.Bool(model.ArgSkipKeyMember) {
		span, node := m.Marker.ArgAnchor(model.ArgSkipKeyMember)
		mapping := &model.KeyMapping{
			CanonicalName: canonical,
			Source:        model.KeyCustom,
			Span:          span,
			Node:          node,
		}
		m.KeyMapping = mapping
		m.Key = resolveCustom(mapping, m.KeyType, decl)
		return
	}

	kt, ok := m.KeyType.Get()
	if !ok {
		m.Key = model.Unresolved[model.KeyMember](m.KeyType.Reason())
		return
	}
	m.Key = model.Known(model.KeyMember{
		Name:        canonical,
		Type:        kt,
		Access:      syntax.AccessPublic,
		Source:      model.KeyGenerated,
		MemberIndex: syntax.NoIndex,
	})
}

func resolveMapped(mapping *model.KeyMapping, decl *syntax.Decl) model.Fact[model.KeyMember] {
	for i := range decl.Members {
		mem := &decl.Members[i]
		if mem.Name != mapping.Target {
			continue
		}
		switch mem.Kind {
		case syntax.MemberField, syntax.MemberProperty, syntax.MemberMethod:
			mapping.Candidates = append(mapping.Candidates, i)
		}
	}

	switch len(mapping.Candidates) {
	case 0:
		mapping.Resolution = model.NotFound
		return model.Unresolved[model.KeyMember]("mapped key member " + mapping.Target + " not found")
	case 1:
	default:
		mapping.Resolution = model.Ambiguous
		return model.Unresolved[model.KeyMember]("mapped key member " + mapping.Target + " is ambiguous")
	}

	idx := mapping.Candidates[0]
	mem := &decl.Members[idx]
	access := syntax.MemberAccessibility(mem)
	if access != syntax.AccessPublic {
		mapping.Resolution = model.NotPublic
		return model.Unresolved[model.KeyMember]("mapped key member " + mapping.Target + " is not public")
	}
	if mem.Kind == syntax.MemberMethod && len(mem.TypeParams) > 0 {
		mapping.Resolution = model.GenericMethod
		return model.Unresolved[model.KeyMember]("mapped key method " + mapping.Target + " is generic")
	}

	mapping.Resolution = model.Resolved
	return model.Known(model.KeyMember{
		Name:        mem.Name,
		Type:        mem.Type,
		Access:      access,
		Source:      model.KeyMapped,
		IsMethod:    mem.Kind == syntax.MemberMethod,
		MemberIndex: idx,
	})
}

func resolveCustom(mapping *model.KeyMapping, keyType model.Fact[syntax.TypeRef], decl *syntax.Decl) model.Fact[model.KeyMember] {
	kt, known := keyType.Get()
	for i := range decl.Members {
		mem := &decl.Members[i]
		if mem.Name != mapping.CanonicalName || mem.IsStatic() {
			continue
		}
		if mem.Kind != syntax.MemberField && mem.Kind != syntax.MemberProperty {
			continue
		}
		if known && !mem.Type.Equal(kt) {
			continue
		}
		mapping.Candidates = append(mapping.Candidates, i)
	}

	if len(mapping.Candidates) == 0 {
		mapping.Resolution = model.CustomMissing
		return model.Unresolved[model.KeyMember]("hand-written key member " + mapping.CanonicalName + " is missing")
	}

	idx := mapping.Candidates[0]
	mem := &decl.Members[idx]
	mapping.Resolution = model.Resolved
	return model.Known(model.KeyMember{
		Name:        mem.Name,
		Type:        mem.Type,
		Access:      syntax.MemberAccessibility(mem),
		Source:      model.KeyCustom,
		MemberIndex: idx,
	})
}

// collectComparers reads comparer annotations on the type and its members
// and hand-written comparer accessor members.
func collectComparers(m *model.TypeModel, decl *syntax.Decl) {
	cfg := &m.Comparers

	for i, ann := range decl.Annotations {
		kind, ok := comparerKind(ann.Name)
		if !ok {
			continue
		}
		ref := comparerFromAnnotation(ann, kind)
		ref.Source = model.FromTypeAnnotation
		ref.MemberIndex = syntax.NoIndex
		ref.IsStatic = true
		ref.Access = syntax.AccessPublic
		ref.Node = syntax.TypeNode().WithAnnotation(i)
		if kt, ok := m.KeyType.Get(); ok {
			ref.MemberType = kt
		}
		setKeyComparer(cfg, ref)
	}

	for i := range decl.Members {
		mem := &decl.Members[i]
		for j, ann := range mem.Annotations {
			kind, ok := comparerKind(ann.Name)
			if !ok && ann.Name == model.AnnotationMemberEqualityComparer {
				kind, ok = model.EqualityComparer, true
			}
			if !ok {
				continue
			}
			ref := comparerFromAnnotation(ann, kind)
			ref.Source = model.FromMemberAnnotation
			ref.MemberName = mem.Name
			ref.MemberIndex = i
			ref.MemberType = mem.Type
			ref.IsStatic = true
			ref.Access = syntax.AccessPublic
			ref.Node = syntax.MemberNode(i).WithAnnotation(j)
			cfg.Member = append(cfg.Member, ref)
		}

		if mem.Kind == syntax.MemberConstructor {
			continue
		}
		var kind model.ComparerKind
		switch mem.Name {
		case model.KeyEqualityAccessor:
			kind = model.EqualityComparer
		case model.KeyOrderingAccessor:
			kind = model.OrderingComparer
		default:
			continue
		}
		ref := model.ComparerRef{
			Kind:        kind,
			Source:      model.FromDeclaredMember,
			Accessor:    mem.Name,
			MemberName:  mem.Name,
			MemberIndex: i,
			MemberType:  mem.Type,
			IsStatic:    mem.IsStatic(),
			Access:      syntax.MemberAccessibility(mem),
			Span:        mem.Anchor(),
			Node:        syntax.MemberNode(i),
		}
		if len(mem.Type.Args) > 0 {
			ref.ElementType = mem.Type.Args[0]
		}
		cfg.Declared = append(cfg.Declared, ref)
		setKeyComparer(cfg, ref)
	}

	// Member-level key comparers count for the key when they sit on it.
	if k, ok := m.Key.Get(); ok && k.MemberIndex != syntax.NoIndex {
		for _, ref := range cfg.Member {
			if ref.MemberIndex == k.MemberIndex {
				setKeyComparer(cfg, ref)
			}
		}
	}
}

func comparerKind(name string) (model.ComparerKind, bool) {
	switch name {
	case model.AnnotationKeyEqualityComparer:
		return model.EqualityComparer, true
	case model.AnnotationKeyComparer:
		return model.OrderingComparer, true
	}
	return 0, false
}

func comparerFromAnnotation(ann syntax.Annotation, kind model.ComparerKind) model.ComparerRef {
	ref := model.ComparerRef{Kind: kind, Annotation: ann.Name, Span: ann.Span}
	if len(ann.TypeArgs) > 0 {
		ref.Accessor = ann.TypeArgs[0].String()
	}
	if len(ann.TypeArgs) > 1 {
		ref.ElementType = ann.TypeArgs[1]
	}
	return ref
}

func setKeyComparer(cfg *model.ComparerConfig, ref model.ComparerRef) {
	r := ref
	switch ref.Kind {
	case model.EqualityComparer:
		if cfg.KeyEquality == nil {
			cfg.KeyEquality = &r
		}
	case model.OrderingComparer:
		if cfg.KeyOrdering == nil {
			cfg.KeyOrdering = &r
		}
	}
}
