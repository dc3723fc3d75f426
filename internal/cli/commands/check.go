package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/smartgen/internal/cli/output"
	"github.com/leapstack-labs/smartgen/internal/loader"
	"github.com/leapstack-labs/smartgen/pkg/core"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/pipeline"
)

// ErrCheckFailed is returned when a check finds errors.
var ErrCheckFailed = errors.New("check failed")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	LintOptions
	Format   string // Output format: text, markdown, json
	Severity string // Minimum severity: error, warning, info, hint
	Watch    bool   // Re-run when snapshots change
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [snapshot...]",
		Short: "Validate annotated types in declaration snapshots",
		Long: `Validate smart enums, value objects and unions described by declaration
snapshots and report structural rule violations.

Snapshots default to the patterns configured in smartgen.yaml. The command
fails when any error-severity diagnostic is reported, a snapshot cannot be
loaded, or a declaration hits an internal error.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check all configured snapshots
  smartgen check

  # Check one file
  smartgen check snapshots/color.yaml

  # Only report errors
  smartgen check --severity error

  # Run only the structure rules that matter right now
  smartgen check --rule ST01,ST02

  # Re-run on every snapshot change
  smartgen check --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Watch {
				return runCheckWatch(cmd, args, opts)
			}
			return runCheck(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when snapshot files change")

	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cc := NewCommandContext(cmd, opts.Format)
	_, err := check(cmd.Context(), cc, args, opts)
	return err
}

// check loads, processes and renders one run. It returns the loaded
// snapshots so watch mode knows what to watch.
func check(ctx context.Context, cc *CommandContext, args []string, opts *CheckOptions) (*loader.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return nil, fmt.Errorf("unknown severity %q", opts.Severity)
	}
	runner, err := newRunner(cc, &opts.LintOptions)
	if err != nil {
		return nil, err
	}
	loaded, err := loadSnapshots(cc, args)
	if err != nil {
		return nil, err
	}

	results, err := runner.Run(ctx, loaded.Decls())
	if err != nil {
		return loaded, err
	}

	summary := summarize(loaded, results)
	renderCheck(cc, loaded, results, summary, threshold)

	if summary.Errors > 0 || summary.Failed > 0 || len(loaded.Errors) > 0 {
		return loaded, fmt.Errorf("%w: %d errors, %d failed declarations, %d unreadable files",
			ErrCheckFailed, summary.Errors, summary.Failed, len(loaded.Errors))
	}
	return loaded, nil
}

func runCheckWatch(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cc := NewCommandContext(cmd, opts.Format)
	rerun := func() *loader.Result {
		loaded, err := check(ctx, cc, args, opts)
		if err != nil && !errors.Is(err, context.Canceled) {
			cc.Renderer.Error(err.Error())
		}
		return loaded
	}

	loaded := rerun()
	if loaded == nil {
		return fmt.Errorf("nothing to watch")
	}
	var paths []string
	for _, f := range loaded.Files {
		paths = append(paths, f.Path)
	}
	for _, le := range loaded.Errors {
		paths = append(paths, le.Path)
	}

	cc.Renderer.Println(cc.Renderer.Styles().Muted.Render("Watching for snapshot changes (Ctrl+C to stop)"))
	return loader.Watch(ctx, loader.WatchDirs(paths), loader.DefaultDebounce, cc.Logger, func() {
		cc.Renderer.Println("")
		rerun()
	})
}

func summarize(loaded *loader.Result, results []pipeline.Result) output.CheckSummary {
	s := output.CheckSummary{Files: len(loaded.Files), Declarations: len(results)}
	for _, res := range results {
		if res.Annotated() {
			s.Annotated++
		}
		if res.Err != nil {
			s.Failed++
		}
		for _, d := range res.Diagnostics {
			s.Diagnostics++
			switch d.Severity {
			case lint.SeverityError:
				s.Errors++
			case lint.SeverityWarning:
				s.Warnings++
			case lint.SeverityInfo:
				s.Info++
			case lint.SeverityHint:
				s.Hints++
			}
		}
	}
	return s
}

// filterBySeverity keeps the diagnostics at or above threshold.
func filterBySeverity(diags []lint.Diagnostic, threshold lint.Severity) []lint.Diagnostic {
	var out []lint.Diagnostic
	for _, d := range diags {
		if d.Severity <= threshold {
			out = append(out, d)
		}
	}
	return out
}

func renderCheck(cc *CommandContext, loaded *loader.Result, results []pipeline.Result, summary output.CheckSummary, threshold lint.Severity) {
	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(checkJSON(cc.RunID, loaded, results, summary, threshold))
		return
	}

	styles := r.Styles()
	markdown := r.EffectiveMode() == output.ModeMarkdown
	shown := 0
	for _, res := range results {
		diags := filterBySeverity(res.Diagnostics, threshold)
		if len(diags) == 0 && res.Err == nil {
			continue
		}
		shown++
		title := res.Decl.Name
		if res.Decl.File != "" {
			title += " (" + res.Decl.File + ")"
		}
		if markdown {
			r.Header(3, title)
		} else {
			r.Println(styles.Path.Render(title))
		}
		for _, d := range diags {
			fixable := ""
			if d.AutoFixable {
				fixable = styles.Hint.Render(" [fixable]")
			}
			r.Printf("  %s  %s  %s  %s%s\n",
				styles.Muted.Render(fmt.Sprintf("%-11s", spanString(d))),
				severityStyle(r, d.Severity),
				styles.Bold.Render(d.RuleID),
				d.Message,
				fixable,
			)
			for _, rel := range d.RelatedInfo {
				r.Printf("  %s  %s\n",
					styles.Muted.Render(fmt.Sprintf("%-11s", rel.Span.String())),
					styles.Muted.Render("note: "+rel.Message))
			}
		}
		if res.Err != nil {
			r.Printf("  %s  %s\n", styles.Error.Render("internal"), res.Err.Error())
		}
		r.Println("")
	}

	if shown == 0 && summary.Errors == 0 && summary.Failed == 0 {
		r.Success(fmt.Sprintf("No issues found in %d annotated types", summary.Annotated))
	}

	r.Table([]string{"Files", "Types", "Annotated", "Errors", "Warnings", "Info", "Hints", "Failed"}, [][]string{{
		strconv.Itoa(summary.Files),
		strconv.Itoa(summary.Declarations),
		strconv.Itoa(summary.Annotated),
		strconv.Itoa(summary.Errors),
		strconv.Itoa(summary.Warnings),
		strconv.Itoa(summary.Info),
		strconv.Itoa(summary.Hints),
		strconv.Itoa(summary.Failed),
	}})
}

func checkJSON(runID string, loaded *loader.Result, results []pipeline.Result, summary output.CheckSummary, threshold lint.Severity) output.CheckOutput {
	out := output.CheckOutput{RunID: runID, Summary: summary, Errors: loadErrors(loaded)}
	for _, res := range results {
		if !res.Annotated() {
			continue
		}
		t := output.CheckType{
			Name:        res.Decl.Name,
			File:        res.Decl.File,
			Category:    res.Model.Category.String(),
			Diagnostics: []output.CheckDiagnostic{},
		}
		for _, d := range filterBySeverity(res.Diagnostics, threshold) {
			t.Diagnostics = append(t.Diagnostics, output.CheckDiagnostic{
				RuleID:   d.RuleID,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Args:     d.Args,
				File:     d.Anchor.File,
				Span:     d.Anchor.Span.String(),
				Node:     d.Anchor.Node.String(),
				Fixable:  d.AutoFixable,
				DocURL:   d.DocumentationURL,
				Related:  relatedJSON(d.RelatedInfo),
			})
		}
		t.Blocked = sortedKeys(res.Blocked)
		if res.Output != nil && len(res.Output.Skipped) > 0 {
			t.Skipped = make(map[string]string, len(res.Output.Skipped))
			for _, s := range res.Output.Skipped {
				t.Skipped[s.Kind] = s.Reason
			}
		}
		if res.Err != nil {
			t.Error = res.Err.Error()
		}
		out.Types = append(out.Types, t)
	}
	return out
}

func spanString(d lint.Diagnostic) string {
	if !d.Anchor.Span.IsValid() {
		return "-"
	}
	return d.Anchor.Span.String()
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Hint.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// joinIDs renders rule ids for display.
func joinIDs(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}

func relatedJSON(infos []lint.RelatedInfo) []output.CheckRelated {
	if len(infos) == 0 {
		return nil
	}
	out := make([]output.CheckRelated, len(infos))
	for i, info := range infos {
		out[i] = output.CheckRelated{File: info.FilePath, Span: info.Span.String(), Message: info.Message}
	}
	return out
}
