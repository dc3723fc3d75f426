package syntax

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// NoIndex marks an unset member or annotation index in a NodeRef.
const NoIndex = -1

// ErrNodeNotFound is returned when a NodeRef does not address a node under the root.
var ErrNodeNotFound = errors.New("node not found")

// NodeRef addresses a node below a root declaration: a (nested) type, one of
// its members, an annotation on either, or a single annotation argument.
type NodeRef struct {
	// Path names the nested types walked from the root; empty means the root.
	Path       []string `json:"path,omitempty" yaml:"path,omitempty"`
	Member     int      `json:"member" yaml:"member"`
	Annotation int      `json:"annotation" yaml:"annotation"`
	Arg        string   `json:"arg,omitempty" yaml:"arg,omitempty"`
}

// TypeNode addresses a type reached through the given nested-type path.
func TypeNode(path ...string) NodeRef {
	return NodeRef{Path: path, Member: NoIndex, Annotation: NoIndex}
}

// MemberNode addresses member i of the type at path.
func MemberNode(i int, path ...string) NodeRef {
	return TypeNode(path...).WithMember(i)
}

// WithMember returns a copy addressing member i.
func (r NodeRef) WithMember(i int) NodeRef {
	r.Path = slices.Clone(r.Path)
	r.Member = i
	return r
}

// WithAnnotation returns a copy addressing annotation i of the current node.
func (r NodeRef) WithAnnotation(i int) NodeRef {
	r.Path = slices.Clone(r.Path)
	r.Annotation = i
	return r
}

// WithArg returns a copy addressing the named argument of the current annotation.
func (r NodeRef) WithArg(name string) NodeRef {
	r.Path = slices.Clone(r.Path)
	r.Arg = name
	return r
}

// Child returns a copy addressing the nested type name below the current type.
func (r NodeRef) Child(name string) NodeRef {
	p := append(slices.Clone(r.Path), name)
	return TypeNode(p...)
}

// IsMember reports whether the reference addresses a member.
func (r NodeRef) IsMember() bool {
	return r.Member != NoIndex
}

// IsAnnotation reports whether the reference addresses an annotation.
func (r NodeRef) IsAnnotation() bool {
	return r.Annotation != NoIndex
}

// Equal compares two references.
func (r NodeRef) Equal(o NodeRef) bool {
	return slices.Equal(r.Path, o.Path) && r.Member == o.Member &&
		r.Annotation == o.Annotation && r.Arg == o.Arg
}

// String renders the reference as "Outer/Inner#member@annotation:arg".
func (r NodeRef) String() string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(strings.Join(r.Path, "/"))
	if r.Member != NoIndex {
		b.WriteString("#")
		b.WriteString(strconv.Itoa(r.Member))
	}
	if r.Annotation != NoIndex {
		b.WriteString("@")
		b.WriteString(strconv.Itoa(r.Annotation))
	}
	if r.Arg != "" {
		b.WriteString(":")
		b.WriteString(r.Arg)
	}
	return b.String()
}

// Type resolves the type addressed by the reference path.
func (r NodeRef) Type(root *Decl) (*Decl, error) {
	if root == nil {
		return nil, fmt.Errorf("%s: nil root: %w", r, ErrNodeNotFound)
	}
	d := root
	for _, name := range r.Path {
		d = d.NestedNamed(name)
		if d == nil {
			return nil, fmt.Errorf("%s: no nested type %q: %w", r, name, ErrNodeNotFound)
		}
	}
	return d, nil
}

// MemberOf resolves the addressed member.
func (r NodeRef) MemberOf(root *Decl) (*Member, error) {
	d, err := r.Type(root)
	if err != nil {
		return nil, err
	}
	if r.Member < 0 || r.Member >= len(d.Members) {
		return nil, fmt.Errorf("%s: member index out of range: %w", r, ErrNodeNotFound)
	}
	return &d.Members[r.Member], nil
}

// Annotations resolves the annotation list owned by the addressed node.
func (r NodeRef) Annotations(root *Decl) (*[]Annotation, error) {
	if r.IsMember() {
		m, err := r.MemberOf(root)
		if err != nil {
			return nil, err
		}
		return &m.Annotations, nil
	}
	d, err := r.Type(root)
	if err != nil {
		return nil, err
	}
	return &d.Annotations, nil
}
