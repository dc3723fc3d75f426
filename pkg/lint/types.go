package lint

import (
	"fmt"

	"github.com/leapstack-labs/smartgen/pkg/core"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
	"github.com/leapstack-labs/smartgen/pkg/token"
)

// Severity is re-exported so rule packages need not import core.
type Severity = core.Severity

// Severity levels for diagnostics.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// BlockAll in RuleDef.Blocks suppresses every generated fragment.
const BlockAll = "*"

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Stable short code, e.g. "EN06"
	Name        string        // Human-readable name, e.g. "enum.enumeration_empty"
	Group       string        // Category, e.g. "enum", "structure", "comparer"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts

	// Categories restricts the rule to the listed categories; nil means all.
	Categories []model.Category

	// MessageFormat is a fmt format with exactly Arity %s verbs.
	MessageFormat string
	Arity         int

	// Blocks lists the fragment kinds a diagnostic of this rule suppresses.
	Blocks []string

	// Fixable marks rules whose diagnostics carry a fix descriptor.
	Fixable bool
	Impact  ImpactLevel

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Declaration showing the anti-pattern
	GoodExample string // Declaration showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc inspects one extracted model and returns diagnostics.
type CheckFunc func(p *Pass) []Diagnostic

// Pass is the input of one rule run over one model.
type Pass struct {
	Rule  RuleDef
	Model *model.TypeModel
	Decl  *syntax.Decl
	// Options contains rule-specific options from configuration.
	Options map[string]any
}

// Report builds a diagnostic of the running rule.
func (p *Pass) Report(anchor Anchor, args ...string) Diagnostic {
	return p.Rule.Report(anchor, args...)
}

// TypeAnchor anchors on the identifier of the annotated type.
func (p *Pass) TypeAnchor() Anchor {
	return TypeAnchor(p.Model)
}

// At anchors on a node of the annotated type.
func (p *Pass) At(span token.Span, node syntax.NodeRef) Anchor {
	return At(p.Model, span, node)
}

// AppliesTo reports whether the rule inspects models of category c.
func (r RuleDef) AppliesTo(c model.Category) bool {
	if c == model.CategoryUnknown {
		return false
	}
	if len(r.Categories) == 0 {
		return true
	}
	for _, x := range r.Categories {
		if x == c {
			return true
		}
	}
	return false
}

// Report builds a diagnostic of this rule. A wrong number of message
// arguments is a programming error and panics.
func (r RuleDef) Report(anchor Anchor, args ...string) Diagnostic {
	if len(args) != r.Arity {
		panic(fmt.Sprintf("rule %s: want %d message arguments, got %d", r.ID, r.Arity, len(args)))
	}
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}
	impact := r.Impact
	if impact == 0 {
		impact = defaultImpact(r.Severity)
	}
	return Diagnostic{
		RuleID:           r.ID,
		Severity:         r.Severity,
		Message:          fmt.Sprintf(r.MessageFormat, vals...),
		Args:             args,
		Anchor:           anchor,
		DocumentationURL: BuildDocURL(r.ID),
		ImpactScore:      impact.Int(),
	}
}

// Info returns the documentation metadata of the rule.
func (r RuleDef) Info() core.RuleInfo {
	info := core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Arity:           r.Arity,
		Fixable:         r.Fixable,
		Blocks:          r.Blocks,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
	for _, c := range r.Categories {
		info.Categories = append(info.Categories, c.String())
	}
	return info
}

// =============================================================================
// Diagnostics
// =============================================================================

// Anchor locates a diagnostic in the host source and in the declaration tree.
type Anchor struct {
	File string
	Span token.Span
	Node syntax.NodeRef
}

// TypeAnchor anchors on the identifier of the annotated type.
func TypeAnchor(m *model.TypeModel) Anchor {
	return Anchor{File: m.File, Span: m.NameSpan, Node: syntax.TypeNode()}
}

// At anchors on an arbitrary node of the annotated type.
func At(m *model.TypeModel, span token.Span, node syntax.NodeRef) Anchor {
	if !span.IsValid() {
		span = m.NameSpan
	}
	return Anchor{File: m.File, Span: span, Node: node}
}

// Diagnostic represents a rule finding.
type Diagnostic struct {
	RuleID   string
	Severity core.Severity
	Message  string
	Args     []string
	Anchor   Anchor
	Fix      *FixDescriptor // Optional: mechanically resolvable rewrite

	// Remediation metadata
	DocumentationURL string        // URL to rule documentation
	ImpactScore      int           // 0-100
	AutoFixable      bool          // true if Fix can be applied without a human decision
	RelatedInfo      []RelatedInfo // Additional locations/context
}

// WithFix attaches a fix descriptor.
func (d Diagnostic) WithFix(f FixDescriptor) Diagnostic {
	d.Fix = &f
	d.AutoFixable = true
	return d
}

// WithRelated attaches additional context.
func (d Diagnostic) WithRelated(info ...RelatedInfo) Diagnostic {
	d.RelatedInfo = append(append([]RelatedInfo(nil), d.RelatedInfo...), info...)
	return d
}

// RelatedInfo provides additional context for a diagnostic.
type RelatedInfo struct {
	FilePath string
	Span     token.Span
	Message  string
}

// MarkerInfo points at the annotation that chose the category. It is empty
// when the category comes from a contract interface only.
func (p *Pass) MarkerInfo() []RelatedInfo {
	mk := p.Model.Marker
	if mk == nil {
		return nil
	}
	return []RelatedInfo{{
		FilePath: p.Model.File,
		Span:     mk.Annotation.Span,
		Message:  "category declared by [" + mk.Annotation.Name + "]",
	}}
}

// FixDescriptor describes a rewrite keyed to the diagnosed node. Params carry
// the resolution the rule already decided, e.g. the target accessibility.
type FixDescriptor struct {
	Title  string
	Node   syntax.NodeRef
	Params map[string]string
}

// TextEdit represents a text replacement.
type TextEdit struct {
	Span    token.Span
	NewText string
}
