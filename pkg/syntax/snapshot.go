package syntax

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot is one exported source file: the annotated declarations a host
// found in it. JSON snapshots are accepted as well since JSON is valid YAML.
type Snapshot struct {
	File  string  `yaml:"file" json:"file"`
	Types []*Decl `yaml:"types" json:"types"`
}

// LoadSnapshot decodes a snapshot document and links it on its own.
func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	for i, d := range s.Types {
		if d == nil {
			return nil, fmt.Errorf("decode snapshot: types[%d] is empty", i)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("decode snapshot: types[%d] has no name", i)
		}
	}
	Link(&s)
	return &s, nil
}

// ParseSnapshot decodes a snapshot held in memory.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	return LoadSnapshot(bytes.NewReader(data))
}

// Encode writes the snapshot as YAML.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// Link fills in declaration files and resolves base references by name
// across the given snapshots. Names resolve to the first declaration found,
// by simple name and by dotted path ("Outer.Inner").
func Link(snaps ...*Snapshot) {
	index := make(map[string]*Decl)
	var all []*Decl

	var visit func(d *Decl, file, prefix string)
	visit = func(d *Decl, file, prefix string) {
		if d.File == "" {
			d.File = file
		}
		qualified := d.Name
		if prefix != "" {
			qualified = prefix + "." + d.Name
		}
		if _, ok := index[qualified]; !ok {
			index[qualified] = d
		}
		if _, ok := index[d.Name]; !ok {
			index[d.Name] = d
		}
		all = append(all, d)
		for _, n := range d.Nested {
			if n != nil {
				visit(n, d.File, qualified)
			}
		}
	}

	for _, s := range snaps {
		if s == nil {
			continue
		}
		for _, d := range s.Types {
			if d != nil {
				visit(d, s.File, "")
			}
		}
	}

	for _, d := range all {
		for i := range d.Bases {
			if d.Bases[i].Ref != nil {
				continue
			}
			if target, ok := index[d.Bases[i].Name]; ok && target != d {
				d.Bases[i].Ref = target
			}
		}
	}
}

// Decls returns every top-level declaration of the snapshots in order.
func Decls(snaps ...*Snapshot) []*Decl {
	var out []*Decl
	for _, s := range snaps {
		if s == nil {
			continue
		}
		out = append(out, s.Types...)
	}
	return out
}
