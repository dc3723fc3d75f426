package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/smartgen/internal/cli/config"
	"github.com/leapstack-labs/smartgen/internal/cli/output"
	intconfig "github.com/leapstack-labs/smartgen/internal/config"
	"github.com/leapstack-labs/smartgen/internal/loader"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/smartgen/pkg/pipeline"
)

// runIDKey is used to store the invocation id in context.
type runIDKey struct{}

// WithRunID stores the invocation id in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the invocation id stored in ctx, or "".
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	RunID    string
}

// NewCommandContext creates a CommandContext. format overrides the
// configured output mode when set.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	mode := output.ParseMode(cfg.OutputFormat)
	if format != "" {
		mode = output.ParseMode(format)
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
		RunID:    RunID(cmd.Context()),
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise loads defaults
// from the environment and the nearest smartgen.yaml.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	cfg, err := config.LoadConfig("", nil)
	if err != nil {
		cwd, _ := os.Getwd()
		return &config.Config{
			Snapshots:    intconfig.DefaultSnapshots(),
			OutputFormat: config.DefaultOutput,
			ProjectRoot:  cwd,
		}
	}
	return cfg
}

// LintOptions holds the rule selection flags shared by check, fix and generate.
type LintOptions struct {
	Disable []string // Rule IDs to disable
	Rules   []string // Run only specific rules
	Groups  []string // Run only rules of these groups
}

func (o *LintOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&o.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringSliceVar(&o.Groups, "group", nil, "Run only rules of these groups (enum, structure, keymember, extension, comparer, dispatch)")
}

// buildLintConfig merges the project lint settings with the CLI flags.
// Flags take precedence.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg := lint.NewConfig()
	if cfg != nil && cfg.Lint != nil {
		var err error
		if lintCfg, err = lint.NewConfigFromCore(cfg.Lint); err != nil {
			return nil, err
		}
	}
	if opts == nil {
		return lintCfg, nil
	}

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// --group and --rule narrow the rule set independently
	if len(opts.Groups) > 0 {
		enabled := make(map[string]bool)
		for _, g := range opts.Groups {
			g = strings.TrimSpace(g)
			rules := lint.GetByGroup(g)
			if len(rules) == 0 {
				return nil, fmt.Errorf("unknown rule group %q", g)
			}
			for _, r := range rules {
				enabled[r.ID] = true
			}
		}
		for _, rule := range lint.GetAll() {
			if !enabled[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			id = strings.TrimSpace(id)
			if _, ok := lint.GetByID(id); !ok {
				return nil, fmt.Errorf("unknown rule %q", id)
			}
			enabled[id] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabled[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}
	return lintCfg, nil
}

// newRunner builds the pipeline for the configured rules.
func newRunner(cc *CommandContext, opts *LintOptions) (*pipeline.Runner, error) {
	lintCfg, err := buildLintConfig(cc.Cfg, opts)
	if err != nil {
		return nil, err
	}
	if cc.Cfg.Lint != nil && cc.Cfg.Lint.DocsURL != "" {
		lint.SetDocsBaseURL(cc.Cfg.Lint.DocsURL)
	} else {
		lint.ResetDocsBaseURL()
	}
	return pipeline.New(pipeline.Config{
		Analyzer:    lint.NewAnalyzer(lintCfg, lint.WithParallel(cc.Cfg.Parallel)),
		Logger:      cc.Logger,
		Concurrency: cc.Cfg.Concurrency,
	}), nil
}

// loadSnapshots discovers and loads the snapshots named by args, or the
// configured snapshot patterns when args is empty.
func loadSnapshots(cc *CommandContext, args []string) (*loader.Result, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = cc.Cfg.Snapshots
	}
	if len(patterns) == 0 {
		patterns = intconfig.DefaultSnapshots()
	}

	scanner := loader.NewScanner(cc.Cfg.ProjectRoot, cc.Logger)
	paths, err := scanner.Discover(patterns)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no snapshot files found (patterns: %s)", strings.Join(patterns, ", "))
	}
	res := scanner.Load(paths)
	for _, le := range res.Errors {
		cc.Renderer.Warning(le.Error())
	}
	return res, nil
}

// loadErrors converts load failures for JSON output.
func loadErrors(res *loader.Result) []string {
	var errs []string
	for _, le := range res.Errors {
		errs = append(errs, le.Error())
	}
	return errs
}
