package fix

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// ErrNodeNotFound is returned when an edit addresses a node that does not
// exist in the declaration.
var ErrNodeNotFound = syntax.ErrNodeNotFound

// ErrInvalidEdit is returned for edits that are missing their payload or
// target a node of the wrong kind.
var ErrInvalidEdit = errors.New("invalid edit")

// Apply returns a copy of decl with every edit of rw applied. decl is never
// modified. On error no copy is returned. Applying a rewrite to its own
// output changes nothing.
func Apply(decl *syntax.Decl, rw Rewrite) (*syntax.Decl, error) {
	if decl == nil {
		return nil, fmt.Errorf("%s: nil declaration: %w", rw.RuleID, ErrNodeNotFound)
	}
	out := decl.Clone()
	for i, e := range rw.Edits {
		if err := applyEdit(out, e); err != nil {
			return nil, fmt.Errorf("%s: edit %d (%s at %s): %w", rw.RuleID, i, e.Kind, e.Node, err)
		}
	}
	return out, nil
}

func applyEdit(root *syntax.Decl, e Edit) error {
	switch e.Kind {
	case SetModifiers:
		mods, err := modifiersRef(root, e.Node)
		if err != nil {
			return err
		}
		*mods = slices.Clone(e.Modifiers)
		return nil

	case AddModifier:
		if e.Modifier == "" {
			return ErrInvalidEdit
		}
		mods, err := modifiersRef(root, e.Node)
		if err != nil {
			return err
		}
		*mods = syntax.WithModifier(*mods, e.Modifier)
		return nil

	case InsertMember:
		if e.Member == nil || e.Node.IsMember() {
			return ErrInvalidEdit
		}
		d, err := e.Node.Type(root)
		if err != nil {
			return err
		}
		if hasMember(d, e.Member) {
			return nil
		}
		d.Members = append(d.Members, e.Member.Clone())
		return nil

	case AddAnnotation:
		if e.Annotation == nil {
			return ErrInvalidEdit
		}
		anns, err := e.Node.WithAnnotation(syntax.NoIndex).Annotations(root)
		if err != nil {
			return err
		}
		for _, a := range *anns {
			if a.Name == e.Annotation.Name {
				return nil
			}
		}
		*anns = append(*anns, e.Annotation.Clone())
		return nil

	case SetAnnotationArg:
		if e.Arg.Name == "" || !e.Node.IsAnnotation() {
			return ErrInvalidEdit
		}
		anns, err := e.Node.Annotations(root)
		if err != nil {
			return err
		}
		if e.Node.Annotation >= len(*anns) {
			return fmt.Errorf("annotation index out of range: %w", ErrNodeNotFound)
		}
		ann := &(*anns)[e.Node.Annotation]
		for i := range ann.Args {
			if ann.Args[i].Name == e.Arg.Name {
				ann.Args[i].Value = e.Arg.Value
				return nil
			}
		}
		ann.Args = append(ann.Args, syntax.Arg{Name: e.Arg.Name, Value: e.Arg.Value})
		return nil
	}
	return fmt.Errorf("unknown edit kind %d: %w", e.Kind, ErrInvalidEdit)
}

// modifiersRef returns the modifier list owned by a type or member node.
func modifiersRef(root *syntax.Decl, ref syntax.NodeRef) (*[]string, error) {
	if ref.IsAnnotation() {
		return nil, ErrInvalidEdit
	}
	if ref.IsMember() {
		m, err := ref.MemberOf(root)
		if err != nil {
			return nil, err
		}
		return &m.Modifiers, nil
	}
	d, err := ref.Type(root)
	if err != nil {
		return nil, err
	}
	return &d.Modifiers, nil
}

func modifiersAt(root *syntax.Decl, ref syntax.NodeRef) ([]string, error) {
	mods, err := modifiersRef(root, ref)
	if err != nil {
		return nil, err
	}
	return slices.Clone(*mods), nil
}

// hasMember reports whether d already declares a member with the same kind,
// name, staticness and parameter types.
func hasMember(d *syntax.Decl, m *syntax.Member) bool {
	for i := range d.Members {
		x := &d.Members[i]
		if x.Kind != m.Kind || x.Name != m.Name || x.IsStatic() != m.IsStatic() || len(x.Params) != len(m.Params) {
			continue
		}
		same := true
		for j := range x.Params {
			if !x.Params[j].Type.Equal(m.Params[j].Type) {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

func fieldsOf(s string) []string {
	return strings.Fields(s)
}
