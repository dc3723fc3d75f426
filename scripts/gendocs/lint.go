package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/core"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"comparer":  "Rules about key comparers and equality comparers.",
	"dispatch":  "Rules about the exhaustive Switch and Map helpers.",
	"enum":      "Rules about smart enum items, keys and validation.",
	"extension": "Rules about extension hooks and delegated members.",
	"keymember": "Rules about the key member of enums and value objects.",
	"structure": "Rules about the shape of annotated types and their variants.",
}

// generateLintDocs generates the rule index and one page per group.
func generateLintDocs(outDir string) error {
	log.Printf("Generating lint docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	grouped := groupRules(lint.AllRules())
	groups := lint.Groups()

	if err := generateLintIndex(outDir, groups, grouped); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groups {
		if err := generateGroupPage(outDir, group, grouped[group]); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}
	return nil
}

// generateLintIndex generates the rules overview page.
func generateLintIndex(outDir string, groups []string, grouped map[string][]core.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Diagnostic rules for smart enums, value objects and unions")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("smartgen ships **%d rules** in %d groups. Rules marked fixable are rewritten by `smartgen fix`.", lint.Count(), len(groups)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Effect"},
		[][]string{
			{InlineCode("error"), "Fails `smartgen check` and suppresses the fragments the rule blocks"},
			{InlineCode("warning"), "Reported, generation continues"},
			{InlineCode("info"), "Reported with `--severity info`"},
			{InlineCode("hint"), "Reported with `--severity hint`"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `smartgen.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [CM04]         # disable rules
  severity:
    EN01: warning          # override severity`)

	w.Header(2, "Rule Groups")
	var rows [][]string
	for _, group := range groups {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/rules/%s)", capitalizeFirst(group), group),
			fmt.Sprintf("%d", len(grouped[group])),
			cleanDescription(groupDescriptions[group]),
		})
	}
	w.Table([]string{"Group", "Rules", "Description"}, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateGroupPage generates the page of one rule group.
func generateGroupPage(outDir, group string, rules []core.RuleInfo) error {
	w := NewMarkdownWriter()

	title := capitalizeFirst(group) + " Rules"
	w.Frontmatter(title, groupDescriptions[group])
	w.GeneratedMarker()

	w.Header(1, title)
	if desc, ok := groupDescriptions[group]; ok {
		w.Paragraph(desc)
	}

	for _, rule := range rules {
		writeRuleDoc(w, rule)
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), w.Bytes(), 0600)
}

// groupRules organizes rules by group, sorted by ID within each group.
func groupRules(rules []core.RuleInfo) map[string][]core.RuleInfo {
	grouped := make(map[string][]core.RuleInfo)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}
	for group := range grouped {
		sort.Slice(grouped[group], func(i, j int) bool {
			return grouped[group][i].ID < grouped[group][j].ID
		})
	}
	return grouped
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	// ### EN01 - enum.items_must_be_public {#EN01}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.DefaultSeverity.String())))
	if rule.Fixable {
		w.Line("**Fixable:** yes")
	}
	if len(rule.Categories) > 0 {
		w.Line(fmt.Sprintf("**Applies to:** %s", strings.Join(rule.Categories, ", ")))
	}
	if len(rule.Blocks) > 0 {
		w.Line(fmt.Sprintf("**Blocks:** %s", InlineCode(strings.Join(rule.Blocks, ", "))))
	}
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(rule.Rationale)
	}
	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("csharp", rule.BadExample)
	}
	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("csharp", rule.GoodExample)
	}
	if rule.Fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(rule.Fix)
	}
	if len(rule.ConfigKeys) > 0 {
		w.Header(4, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following configuration options: %s",
			InlineCode(strings.Join(rule.ConfigKeys, ", "))))
	}

	w.Line("---")
	w.Newline()
}
