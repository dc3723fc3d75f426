package fix

import (
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// EditKind selects the structural operation of an Edit.
type EditKind int

// Edit kinds.
const (
	// SetModifiers replaces the modifier list of a type or member.
	SetModifiers EditKind = iota
	// AddModifier inserts one modifier at its canonical position.
	AddModifier
	// InsertMember appends a member to a type.
	InsertMember
	// AddAnnotation appends an annotation to a type or member.
	AddAnnotation
	// SetAnnotationArg sets or replaces one named annotation argument.
	SetAnnotationArg
)

// String returns the edit kind name.
func (k EditKind) String() string {
	switch k {
	case SetModifiers:
		return "set_modifiers"
	case AddModifier:
		return "add_modifier"
	case InsertMember:
		return "insert_member"
	case AddAnnotation:
		return "add_annotation"
	case SetAnnotationArg:
		return "set_annotation_arg"
	default:
		return "unknown"
	}
}

// Edit is one structural change at a node.
type Edit struct {
	Kind EditKind
	Node syntax.NodeRef

	Modifiers  []string           // SetModifiers
	Modifier   string             // AddModifier
	Member     *syntax.Member     // InsertMember
	Annotation *syntax.Annotation // AddAnnotation
	Arg        syntax.Arg         // SetAnnotationArg
}

// Rewrite is the complete fix of one diagnostic.
type Rewrite struct {
	RuleID string
	Title  string
	// Node is the diagnosed node the rewrite is keyed to.
	Node  syntax.NodeRef
	Edits []Edit
}

// synthesizer builds the edits for one fix descriptor. It reports false when
// the descriptor does not carry what the rule needs.
type synthesizer func(fd *lint.FixDescriptor, m *model.TypeModel, decl *syntax.Decl) ([]Edit, bool)

// synthesizers maps rule IDs to their edit builders. Rules missing from the
// table never produce a rewrite.
var synthesizers = map[string]synthesizer{
	"EN01": setAccess,
	"ST01": setAccess,
	"ST08": setAccess,
	"ST09": setAccess,
	"EN08": addModifier,
	"ST02": addModifier,
	"EN03": insertInvalidItemFactory,
	"CM04": addComparerAnnotations,
	"CM05": setAnnotationArg,
}

// Fixable reports whether rule ID has a synthesizer.
func Fixable(ruleID string) bool {
	_, ok := synthesizers[ruleID]
	return ok
}

// Synthesize builds the rewrite for d. It returns false for diagnostics
// without a fix descriptor or whose rule has no synthesizer.
func Synthesize(d lint.Diagnostic, m *model.TypeModel, decl *syntax.Decl) (Rewrite, bool) {
	if d.Fix == nil || decl == nil {
		return Rewrite{}, false
	}
	synth, ok := synthesizers[d.RuleID]
	if !ok {
		return Rewrite{}, false
	}
	edits, ok := synth(d.Fix, m, decl)
	if !ok || len(edits) == 0 {
		return Rewrite{}, false
	}
	return Rewrite{RuleID: d.RuleID, Title: d.Fix.Title, Node: d.Fix.Node, Edits: edits}, true
}

func setAccess(fd *lint.FixDescriptor, _ *model.TypeModel, decl *syntax.Decl) ([]Edit, bool) {
	access := syntax.ParseAccessibility(fieldsOf(fd.Params["access"]), syntax.AccessUnknown)
	if access == syntax.AccessUnknown {
		return nil, false
	}
	mods, err := modifiersAt(decl, fd.Node)
	if err != nil {
		return nil, false
	}
	return []Edit{{
		Kind:      SetModifiers,
		Node:      fd.Node,
		Modifiers: syntax.NormalizeModifiers(mods, access),
	}}, true
}

func addModifier(fd *lint.FixDescriptor, _ *model.TypeModel, _ *syntax.Decl) ([]Edit, bool) {
	mod := fd.Params["modifier"]
	if mod == "" {
		return nil, false
	}
	return []Edit{{Kind: AddModifier, Node: fd.Node, Modifier: mod}}, true
}

// insertInvalidItemFactory inserts a throwing factory stub. A non-static
// factory with the same signature is made static instead.
func insertInvalidItemFactory(fd *lint.FixDescriptor, m *model.TypeModel, decl *syntax.Decl) ([]Edit, bool) {
	keyType := fd.Params["key_type"]
	typeName := fd.Params["type"]
	if keyType == "" || typeName == "" {
		return nil, false
	}
	if target, err := fd.Node.Type(decl); err == nil {
		key := syntax.Named(keyType)
		for _, i := range target.MembersNamed(model.InvalidItemFactory) {
			x := &target.Members[i]
			if x.Kind != syntax.MemberMethod || x.IsStatic() {
				continue
			}
			if len(x.Params) == 1 && x.Params[0].Type.Equal(key) {
				return []Edit{{Kind: AddModifier, Node: fd.Node.WithMember(i), Modifier: "static"}}, true
			}
		}
	}
	member := &syntax.Member{
		Kind:      syntax.MemberMethod,
		Name:      model.InvalidItemFactory,
		Type:      syntax.Named(typeName),
		Modifiers: []string{"private", "static"},
		Params:    []syntax.Param{{Name: "key", Type: syntax.Named(keyType)}},
		Body:      "throw new NotImplementedException(\"" + m.Name + " must create an invalid item\");",
	}
	return []Edit{{Kind: InsertMember, Node: fd.Node, Member: member}}, true
}

func addComparerAnnotations(fd *lint.FixDescriptor, _ *model.TypeModel, _ *syntax.Decl) ([]Edit, bool) {
	accessor, keyType := fd.Params["accessor"], fd.Params["key_type"]
	if accessor == "" || keyType == "" {
		return nil, false
	}
	var edits []Edit
	add := func(name string) {
		edits = append(edits, Edit{
			Kind: AddAnnotation,
			Node: fd.Node,
			Annotation: &syntax.Annotation{
				Name:     name,
				TypeArgs: []syntax.TypeRef{syntax.Named(accessor), syntax.Named(keyType)},
			},
		})
	}
	if fd.Params["equality"] == "true" {
		add(model.AnnotationKeyEqualityComparer)
	}
	if fd.Params["ordering"] == "true" {
		add(model.AnnotationKeyComparer)
	}
	return edits, len(edits) > 0
}

func setAnnotationArg(fd *lint.FixDescriptor, _ *model.TypeModel, _ *syntax.Decl) ([]Edit, bool) {
	name, value := fd.Params["arg"], fd.Params["value"]
	if name == "" || value == "" || !fd.Node.IsAnnotation() {
		return nil, false
	}
	return []Edit{{Kind: SetAnnotationArg, Node: fd.Node, Arg: syntax.Arg{Name: name, Value: value}}}, true
}
