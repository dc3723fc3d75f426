package syntax

import (
	"sort"
	"strings"
)

// Accessibility is the declared visibility of a type or member.
type Accessibility int

// Accessibility levels, ordered from most to least restrictive.
const (
	AccessUnknown Accessibility = iota
	AccessPrivate
	AccessPrivateProtected
	AccessProtected
	AccessInternal
	AccessProtectedInternal
	AccessPublic
)

var accessNames = map[Accessibility]string{
	AccessUnknown:           "unknown",
	AccessPrivate:           "private",
	AccessPrivateProtected:  "private protected",
	AccessProtected:         "protected",
	AccessInternal:          "internal",
	AccessProtectedInternal: "protected internal",
	AccessPublic:            "public",
}

// String returns the modifier spelling of the accessibility.
func (a Accessibility) String() string {
	if s, ok := accessNames[a]; ok {
		return s
	}
	return "unknown"
}

// Modifiers returns the accessibility as modifier tokens.
func (a Accessibility) Modifiers() []string {
	if a == AccessUnknown {
		return nil
	}
	return strings.Fields(a.String())
}

// Rank orders accessibilities by reach. Protected and internal are
// incomparable in general; they share a rank so neither exceeds the other.
func (a Accessibility) Rank() int {
	switch a {
	case AccessPrivate:
		return 0
	case AccessPrivateProtected:
		return 1
	case AccessProtected, AccessInternal:
		return 2
	case AccessProtectedInternal:
		return 3
	case AccessPublic:
		return 4
	default:
		return -1
	}
}

// Exceeds reports whether a is visible more widely than b.
func (a Accessibility) Exceeds(b Accessibility) bool {
	return a.Rank() > b.Rank()
}

// IsAccessModifier reports whether m is one of the accessibility keywords.
func IsAccessModifier(m string) bool {
	switch m {
	case "public", "private", "protected", "internal":
		return true
	}
	return false
}

// ParseAccessibility derives the accessibility from a modifier list,
// returning def when no accessibility keyword is present.
func ParseAccessibility(mods []string, def Accessibility) Accessibility {
	var public, private, protected, internal bool
	for _, m := range mods {
		switch m {
		case "public":
			public = true
		case "private":
			private = true
		case "protected":
			protected = true
		case "internal":
			internal = true
		}
	}
	switch {
	case public:
		return AccessPublic
	case private && protected:
		return AccessPrivateProtected
	case protected && internal:
		return AccessProtectedInternal
	case private:
		return AccessPrivate
	case protected:
		return AccessProtected
	case internal:
		return AccessInternal
	default:
		return def
	}
}

// DeclAccessibility returns the accessibility of a type declaration. Nested
// types default to private, top-level types to internal.
func DeclAccessibility(d *Decl, nested bool) Accessibility {
	if nested {
		return ParseAccessibility(d.Modifiers, AccessPrivate)
	}
	return ParseAccessibility(d.Modifiers, AccessInternal)
}

// MemberAccessibility returns the accessibility of a member, private by default.
func MemberAccessibility(m *Member) Accessibility {
	return ParseAccessibility(m.Modifiers, AccessPrivate)
}

var modifierOrder = map[string]int{
	"new":       0,
	"public":    1,
	"protected": 1,
	"internal":  1,
	"private":   1,
	"file":      1,
	"static":    2,
	"extern":    3,
	"abstract":  4,
	"virtual":   4,
	"override":  4,
	"sealed":    4,
	"readonly":  5,
	"unsafe":    6,
	"volatile":  7,
	"async":     8,
	"required":  9,
	"partial":   100,
}

// NormalizeModifiers replaces the accessibility keywords in mods with access
// and returns the list in canonical order. Unknown modifiers keep their
// relative order and sort before partial.
func NormalizeModifiers(mods []string, access Accessibility) []string {
	out := make([]string, 0, len(mods)+2)
	out = append(out, access.Modifiers()...)
	for _, m := range mods {
		if IsAccessModifier(m) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return modifierRank(out[i]) < modifierRank(out[j])
	})
	return out
}

// WithModifier returns mods with m added at its canonical position. The
// list is returned unchanged when m is already present.
func WithModifier(mods []string, m string) []string {
	if HasModifier(mods, m) {
		return append([]string(nil), mods...)
	}
	r := modifierRank(m)
	out := make([]string, 0, len(mods)+1)
	inserted := false
	for _, x := range mods {
		if !inserted && modifierRank(x) > r {
			out = append(out, m)
			inserted = true
		}
		out = append(out, x)
	}
	if !inserted {
		out = append(out, m)
	}
	return out
}

func modifierRank(m string) int {
	if r, ok := modifierOrder[m]; ok {
		return r
	}
	return 50
}
