package syntax

import "slices"

// Clone returns a deep copy of the declaration and everything nested in it.
// Resolved base references (TypeRef.Ref) keep pointing at the original
// declarations; they are read-only.
func (d *Decl) Clone() *Decl {
	if d == nil {
		return nil
	}
	c := *d
	c.Modifiers = slices.Clone(d.Modifiers)
	c.TypeParams = slices.Clone(d.TypeParams)
	c.Bases = cloneTypeRefs(d.Bases)
	c.Annotations = cloneAnnotations(d.Annotations)
	if d.Members != nil {
		c.Members = make([]Member, len(d.Members))
		for i := range d.Members {
			c.Members[i] = d.Members[i].Clone()
		}
	}
	if d.Nested != nil {
		c.Nested = make([]*Decl, len(d.Nested))
		for i, n := range d.Nested {
			c.Nested[i] = n.Clone()
		}
	}
	if d.Enclosing != nil {
		c.Enclosing = make([]Enclosing, len(d.Enclosing))
		for i, e := range d.Enclosing {
			c.Enclosing[i] = Enclosing{Name: e.Name, Modifiers: slices.Clone(e.Modifiers)}
		}
	}
	if d.PrimaryCtor != nil {
		pc := PrimaryCtor{Params: cloneParams(d.PrimaryCtor.Params), Span: d.PrimaryCtor.Span}
		c.PrimaryCtor = &pc
	}
	if d.Dispatches != nil {
		c.Dispatches = make([]Dispatch, len(d.Dispatches))
		for i, x := range d.Dispatches {
			c.Dispatches[i] = Dispatch{Method: x.Method, Cases: slices.Clone(x.Cases), Span: x.Span}
		}
	}
	return &c
}

// Clone returns a deep copy of the member.
func (m Member) Clone() Member {
	c := m
	c.Type = m.Type.Clone()
	c.Modifiers = slices.Clone(m.Modifiers)
	c.TypeParams = slices.Clone(m.TypeParams)
	c.Params = cloneParams(m.Params)
	c.Annotations = cloneAnnotations(m.Annotations)
	return c
}

// Clone returns a deep copy of the reference.
func (t TypeRef) Clone() TypeRef {
	c := t
	c.Args = cloneTypeRefs(t.Args)
	if t.Value != nil {
		v := *t.Value
		c.Value = &v
	}
	return c
}

// Clone returns a deep copy of the annotation.
func (a Annotation) Clone() Annotation {
	c := a
	c.TypeArgs = cloneTypeRefs(a.TypeArgs)
	c.Args = slices.Clone(a.Args)
	return c
}

func cloneTypeRefs(in []TypeRef) []TypeRef {
	if in == nil {
		return nil
	}
	out := make([]TypeRef, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

func cloneAnnotations(in []Annotation) []Annotation {
	if in == nil {
		return nil
	}
	out := make([]Annotation, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

func cloneParams(in []Param) []Param {
	if in == nil {
		return nil
	}
	out := make([]Param, len(in))
	for i, p := range in {
		out[i] = Param{Name: p.Name, Type: p.Type.Clone()}
	}
	return out
}
