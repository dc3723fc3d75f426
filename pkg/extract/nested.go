package extract

import (
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// collectNested walks the nested declarations of an enum or union and records
// every type that derives from the root, directly or through another
// collected nested type, in pre-order.
func collectNested(m *model.TypeModel, decl *syntax.Decl) {
	if !m.Category.IsEnum() && m.Category != model.CategoryUnion {
		return
	}

	derived := map[string]bool{decl.Name: true}
	var out []model.NestedTypeDescriptor

	var walk func(parent *syntax.Decl, path []string, depth int)
	walk = func(parent *syntax.Decl, path []string, depth int) {
		for _, n := range parent.Nested {
			if n == nil {
				continue
			}
			p := append(append([]string(nil), path...), n.Name)
			if derivesFromAny(n, derived) {
				derived[n.Name] = true
				span := n.NameSpan
				if !span.IsValid() {
					span = n.Span
				}
				out = append(out, model.NestedTypeDescriptor{
					Name:         n.Name,
					Path:         p,
					Access:       syntax.DeclAccessibility(n, true),
					Modifiers:    append([]string(nil), n.Modifiers...),
					Reimplements: reimplements(n, m),
					Depth:        depth,
					IsAbstract:   n.HasModifier("abstract"),
					NameSpan:     span,
				})
			}
			walk(n, p, depth+1)
		}
	}
	walk(decl, nil, 1)

	if m.Category == model.CategoryUnion {
		m.Variants = out
	} else {
		m.InnerTypes = out
	}
}

func derivesFromAny(d *syntax.Decl, names map[string]bool) bool {
	for _, b := range d.Bases {
		if names[b.Name] {
			return true
		}
	}
	return false
}

// reimplements reports whether a nested derived type re-declares the root's
// contract: an enum contract interface or the root's category marker.
func reimplements(n *syntax.Decl, m *model.TypeModel) bool {
	for _, b := range n.Bases {
		if model.IsContract(b.Name) {
			return true
		}
	}
	if m.Marker != nil {
		if _, _, ok := n.Annotation(m.Marker.Annotation.Name); ok {
			return true
		}
	}
	return false
}

// extension returns the Derived link when the first resolvable base is itself
// a smart enum. The base is extracted without following its own base.
func extension(decl *syntax.Decl) model.Extension {
	for _, b := range decl.Bases {
		ref := b.Ref
		if ref == nil || ref == decl || model.IsContract(b.Name) {
			continue
		}
		if !IsAnnotated(ref) {
			continue
		}
		base := extract(ref, false)
		if !base.Category.IsEnum() {
			continue
		}
		return model.Derived{Base: base, BaseRef: b}
	}
	return model.Root{}
}
