package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/smartgen/internal/cli/output"
	"github.com/leapstack-labs/smartgen/internal/loader"
	"github.com/leapstack-labs/smartgen/pkg/extract"
	"github.com/leapstack-labs/smartgen/pkg/fix"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// FixOptions holds options for the fix command.
type FixOptions struct {
	LintOptions
	Format    string // Output format: text, markdown, json
	DryRun    bool   // Report rewrites without writing files
	MaxPasses int    // Fix passes per declaration (0 uses the configured value)
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix [snapshot...]",
		Short: "Apply mechanical fixes to declaration snapshots",
		Long: `Apply every available fix to the annotated types in declaration snapshots
and write the rewritten snapshots back.

Fixes are applied pass by pass until no fixable diagnostic remains or
the pass limit (fix.max_passes) is reached. A declaration whose fixes
fail is left unchanged.`,
		Example: `  # Fix all configured snapshots
  smartgen fix

  # Show what would change
  smartgen fix --dry-run

  # Only apply the access modifier fix
  smartgen fix --rule ST01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report rewrites without writing files")
	cmd.Flags().IntVar(&opts.MaxPasses, "max-passes", 0, "Fix passes per declaration (default from fix.max_passes)")

	return cmd
}

func runFix(cmd *cobra.Command, args []string, opts *FixOptions) error {
	cc := NewCommandContext(cmd, opts.Format)
	lintCfg, err := buildLintConfig(cc.Cfg, &opts.LintOptions)
	if err != nil {
		return err
	}
	analyzer := lint.NewAnalyzer(lintCfg, lint.WithParallel(cc.Cfg.Parallel))

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = cc.Cfg.Fix.GetMaxPasses()
	}

	loaded, err := loadSnapshots(cc, args)
	if err != nil {
		return err
	}

	out := output.FixOutput{RunID: cc.RunID, DryRun: opts.DryRun, Types: []output.FixType{}}
	var errs []error
	for _, f := range loaded.Files {
		changed := false
		for i, decl := range f.Snapshot.Types {
			if !extract.IsAnnotated(decl) {
				continue
			}
			ft := output.FixType{Name: decl.Name, File: f.Snapshot.File, Applied: []string{}}
			res, err := fix.FixAll(decl, analyzer, maxPasses)
			if err != nil {
				cc.Logger.Warn("fix failed", "type", decl.Name, "error", err.Error())
				ft.Error = err.Error()
				errs = append(errs, err)
				out.Types = append(out.Types, ft)
				continue
			}
			for _, rw := range res.Applied {
				ft.Applied = append(ft.Applied, rw.RuleID)
			}
			ft.Passes = res.Passes
			ft.Remaining = len(res.Remaining)
			out.Types = append(out.Types, ft)

			if res.Changed() {
				f.Snapshot.Types[i] = res.Decl
				changed = true
			}
		}

		if !changed || opts.DryRun {
			continue
		}
		if err := writeSnapshot(f); err != nil {
			errs = append(errs, err)
			continue
		}
		cc.Logger.Debug("wrote snapshot", "path", f.Path)
		out.Written = append(out.Written, f.Snapshot.File)
	}

	renderFix(cc.Renderer, out)
	if len(loaded.Errors) > 0 {
		errs = append(errs, fmt.Errorf("%d snapshot files could not be loaded", len(loaded.Errors)))
	}
	return errors.Join(errs...)
}

func renderFix(r *output.Renderer, out output.FixOutput) {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(out)
		return
	}

	fixed := 0
	for _, t := range out.Types {
		switch {
		case t.Error != "":
			r.StatusLine(t.Name, "error", t.Error)
		case len(t.Applied) > 0:
			fixed++
			detail := fmt.Sprintf("%s in %d passes", joinIDs(t.Applied), t.Passes)
			if t.Remaining > 0 {
				detail += fmt.Sprintf(", %d diagnostics remain", t.Remaining)
			}
			r.StatusLine(t.Name, "success", detail)
		case t.Remaining > 0:
			r.StatusLine(t.Name, "warning", fmt.Sprintf("%d diagnostics need a manual fix", t.Remaining))
		}
	}

	r.Println("")
	switch {
	case fixed == 0:
		r.Success("Nothing to fix")
	case out.DryRun:
		r.Success(fmt.Sprintf("%d types would be fixed (dry run)", fixed))
	default:
		r.Success(fmt.Sprintf("Fixed %d types in %s", fixed, strings.Join(out.Written, ", ")))
	}
}

// writeSnapshot encodes the snapshot in its file's format and replaces the
// file atomically.
func writeSnapshot(f *loader.File) error {
	stripLinkedFiles(f.Snapshot.Types, f.Snapshot.File)

	var buf bytes.Buffer
	if strings.EqualFold(filepath.Ext(f.Path), ".json") {
		data, err := json.MarshalIndent(f.Snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", f.Path, err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	} else if err := f.Snapshot.Encode(&buf); err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if info, err := os.Stat(f.Path); err == nil {
		_ = os.Chmod(tmp.Name(), info.Mode().Perm())
	}
	return os.Rename(tmp.Name(), f.Path)
}

// stripLinkedFiles clears the file names linking copied down from the
// snapshot so they are not written back on every declaration.
func stripLinkedFiles(decls []*syntax.Decl, file string) {
	for _, d := range decls {
		if d == nil {
			continue
		}
		if d.File == file {
			d.File = ""
		}
		stripLinkedFiles(d.Nested, file)
	}
}
