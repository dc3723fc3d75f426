package fix

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
	"github.com/leapstack-labs/smartgen/pkg/token"
)

// Equal reports whether two declarations encode to the same snapshot text.
func Equal(a, b *syntax.Decl) bool {
	ea, err := yaml.Marshal(a)
	if err != nil {
		return false
	}
	eb, err := yaml.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ea, eb)
}

// TextEdits renders rw as text replacements against the host source of
// decl. It returns false when decl lacks a span some edit needs; a partial
// list is never returned. Edits that would not change decl are dropped.
func TextEdits(rw Rewrite, decl *syntax.Decl) ([]lint.TextEdit, bool) {
	after, err := Apply(decl, rw)
	if err != nil {
		return nil, false
	}
	var out []lint.TextEdit
	for _, e := range rw.Edits {
		te, changed, ok := textEdit(e, decl, after)
		if !ok {
			return nil, false
		}
		if changed {
			out = append(out, te)
		}
	}
	return out, true
}

func textEdit(e Edit, before, after *syntax.Decl) (lint.TextEdit, bool, bool) {
	switch e.Kind {
	case SetModifiers, AddModifier:
		span, ok := modifiersSpan(before, e.Node)
		if !ok {
			return lint.TextEdit{}, false, false
		}
		oldMods, _ := modifiersAt(before, e.Node)
		newMods, err := modifiersAt(after, e.Node)
		if err != nil {
			return lint.TextEdit{}, false, false
		}
		if strings.Join(oldMods, " ") == strings.Join(newMods, " ") {
			return lint.TextEdit{}, false, true
		}
		return lint.TextEdit{Span: span, NewText: strings.Join(newMods, " ")}, true, true

	case InsertMember:
		d, err := e.Node.Type(before)
		if err != nil {
			return lint.TextEdit{}, false, false
		}
		if hasMember(d, e.Member) {
			return lint.TextEdit{}, false, true
		}
		end := d.Span.End
		if !end.IsValid() {
			return lint.TextEdit{}, false, false
		}
		// Insert at the start of the line holding the closing brace.
		at := token.Position{Line: end.Line, Column: 1, Offset: max(0, end.Offset-(end.Column-1))}
		indent := indentOf(d.Span.Start) + "    "
		return lint.TextEdit{
			Span:    token.Span{Start: at, End: at},
			NewText: indent + RenderMember(e.Member) + "\n",
		}, true, true

	case AddAnnotation:
		anns, err := e.Node.WithAnnotation(syntax.NoIndex).Annotations(before)
		if err != nil {
			return lint.TextEdit{}, false, false
		}
		for _, a := range *anns {
			if a.Name == e.Annotation.Name {
				return lint.TextEdit{}, false, true
			}
		}
		at, ok := declStart(before, e.Node, *anns)
		if !ok {
			return lint.TextEdit{}, false, false
		}
		return lint.TextEdit{
			Span:    token.Span{Start: at, End: at},
			NewText: "[" + RenderAnnotation(*e.Annotation) + "]\n" + indentOf(at),
		}, true, true

	case SetAnnotationArg:
		oldAnns, err := e.Node.Annotations(before)
		if err != nil || e.Node.Annotation >= len(*oldAnns) {
			return lint.TextEdit{}, false, false
		}
		newAnns, err := e.Node.Annotations(after)
		if err != nil {
			return lint.TextEdit{}, false, false
		}
		old := (*oldAnns)[e.Node.Annotation]
		updated := (*newAnns)[e.Node.Annotation]
		if !old.Span.IsValid() {
			return lint.TextEdit{}, false, false
		}
		if RenderAnnotation(old) == RenderAnnotation(updated) {
			return lint.TextEdit{}, false, true
		}
		return lint.TextEdit{Span: old.Span, NewText: RenderAnnotation(updated)}, true, true
	}
	return lint.TextEdit{}, false, false
}

func modifiersSpan(root *syntax.Decl, ref syntax.NodeRef) (token.Span, bool) {
	var span token.Span
	if ref.IsMember() {
		m, err := ref.MemberOf(root)
		if err != nil {
			return span, false
		}
		span = m.ModifiersSpan
	} else {
		d, err := ref.Type(root)
		if err != nil {
			return span, false
		}
		span = d.ModifiersSpan
	}
	return span, span.IsValid()
}

// declStart finds where a new annotation goes: before the first existing
// annotation, else at the start of the declaration.
func declStart(root *syntax.Decl, ref syntax.NodeRef, anns []syntax.Annotation) (token.Position, bool) {
	if len(anns) > 0 && anns[0].Span.IsValid() {
		// Annotation spans exclude the opening bracket.
		p := anns[0].Span.Start
		p.Column--
		p.Offset = max(0, p.Offset-1)
		return p, p.Column > 0
	}
	var span token.Span
	if ref.IsMember() {
		m, err := ref.MemberOf(root)
		if err != nil {
			return token.Position{}, false
		}
		span = m.Span
	} else {
		d, err := ref.Type(root)
		if err != nil {
			return token.Position{}, false
		}
		span = d.Span
	}
	return span.Start, span.Start.IsValid()
}

func indentOf(p token.Position) string {
	if p.Column <= 1 {
		return ""
	}
	return strings.Repeat(" ", p.Column-1)
}

// RenderAnnotation renders an annotation without its brackets, e.g.
// KeyEqualityComparer<ComparerAccessors.StringOrdinalIgnoreCase, string>.
func RenderAnnotation(a syntax.Annotation) string {
	var b strings.Builder
	b.WriteString(a.Name)
	if len(a.TypeArgs) > 0 {
		b.WriteString("<")
		for i, t := range a.TypeArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.String())
		}
		b.WriteString(">")
	}
	if len(a.Args) > 0 {
		b.WriteString("(")
		for i, arg := range a.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(" = ")
			b.WriteString(arg.Value)
		}
		b.WriteString(")")
	}
	return b.String()
}

// RenderMember renders an inserted member on one line.
func RenderMember(m *syntax.Member) string {
	var b strings.Builder
	if len(m.Modifiers) > 0 {
		b.WriteString(strings.Join(m.Modifiers, " "))
		b.WriteString(" ")
	}
	if m.Kind != syntax.MemberConstructor {
		b.WriteString(m.Type.String())
		b.WriteString(" ")
	}
	b.WriteString(m.Name)
	if m.Kind == syntax.MemberMethod || m.Kind == syntax.MemberConstructor {
		b.WriteString("(")
		for i, p := range m.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Type.String())
			b.WriteString(" ")
			b.WriteString(p.Name)
		}
		b.WriteString(")")
		b.WriteString(" { ")
		b.WriteString(m.Body)
		b.WriteString(" }")
		return b.String()
	}
	b.WriteString(";")
	return b.String()
}
