package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/smartgen/internal/cli/output"
	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/pipeline"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	LintOptions
	Format string   // Output format: text, markdown, json
	Types  []string // Only these type names
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [snapshot...]",
		Short: "Print the companion members generated for annotated types",
		Long: `Generate the companion members of every annotated type and print them.

Members whose prerequisites are unresolved are listed as skipped. Members
blocked by error diagnostics are not printed; run 'smartgen check' to see
why.`,
		Example: `  # Print everything
  smartgen generate

  # One type, as JSON
  smartgen generate --type Color --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Types, "type", nil, "Only generate these type names")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *GenerateOptions) error {
	cc := NewCommandContext(cmd, opts.Format)
	runner, err := newRunner(cc, &opts.LintOptions)
	if err != nil {
		return err
	}
	loaded, err := loadSnapshots(cc, args)
	if err != nil {
		return err
	}

	decls := loaded.Decls()
	if len(opts.Types) > 0 {
		want := make(map[string]bool)
		for _, name := range opts.Types {
			want[strings.TrimSpace(name)] = true
		}
		filtered := decls[:0:0]
		for _, d := range decls {
			if want[d.Name] {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no type named %s", strings.Join(opts.Types, ", "))
		}
		decls = filtered
	}

	results, err := runner.Run(cmd.Context(), decls)
	if err != nil {
		return err
	}

	renderGenerate(cc.Renderer, results)
	return errors.Join(pipeline.Errors(results)...)
}

func generateJSON(res pipeline.Result) output.GenerateType {
	t := output.GenerateType{
		Name:      res.Decl.Name,
		Category:  res.Model.Category.String(),
		Fragments: []output.GenerateFragment{},
		Blocked:   sortedKeys(res.Blocked),
	}
	if res.Err != nil {
		t.Error = res.Err.Error()
	}
	if res.Output == nil {
		return t
	}
	for _, f := range res.Output.Fragments {
		t.Fragments = append(t.Fragments, output.GenerateFragment{Kind: f.Kind, Text: gen.PrintDecl(f.Decl)})
	}
	if len(res.Output.Skipped) > 0 {
		t.Skipped = make(map[string]string, len(res.Output.Skipped))
		for _, s := range res.Output.Skipped {
			t.Skipped[s.Kind] = s.Reason
		}
	}
	return t
}

func renderGenerate(r *output.Renderer, results []pipeline.Result) {
	if r.EffectiveMode() == output.ModeJSON {
		types := []output.GenerateType{}
		for _, res := range results {
			if res.Annotated() {
				types = append(types, generateJSON(res))
			}
		}
		_ = r.JSON(types)
		return
	}

	styles := r.Styles()
	markdown := r.EffectiveMode() == output.ModeMarkdown
	for _, res := range results {
		if !res.Annotated() {
			continue
		}
		r.Header(2, fmt.Sprintf("%s (%s)", res.Decl.Name, res.Model.Category))
		if res.Err != nil {
			r.Error(res.Err.Error())
			r.Println("")
			continue
		}

		text := gen.Print(res.Output.Fragments)
		switch {
		case len(res.Output.Fragments) == 0:
			r.Println(styles.Muted.Render("no members generated"))
		case markdown:
			r.Println("```csharp")
			r.Printf("%s", text)
			r.Println("```")
		default:
			r.Printf("%s", styles.Code.Render(strings.TrimRight(text, "\n"))+"\n")
		}

		if blocked := sortedKeys(res.Blocked); len(blocked) > 0 {
			r.Println(styles.Warning.Render("blocked: " + joinIDs(blocked)))
		}
		for _, s := range res.Output.Skipped {
			r.Println(styles.Muted.Render(fmt.Sprintf("skipped %s: %s", s.Kind, s.Reason)))
		}
		r.Println("")
	}
}
