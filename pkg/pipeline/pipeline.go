// Package pipeline runs extraction, validation and generation for a batch
// of declarations.
//
// Each declaration is processed independently. The analyzer and the
// generator share one read-only model and run concurrently; fragments that
// error diagnostics block are dropped once both finish. A panic while
// processing one declaration is recovered and reported on that
// declaration's result only.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/smartgen/pkg/extract"
	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/model"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// ErrInternal marks a defect hit while processing one declaration.
var ErrInternal = errors.New("internal error")

// Result is the outcome for one declaration.
type Result struct {
	Decl *syntax.Decl
	// Model is nil for declarations without a category marker.
	Model       *model.TypeModel
	Diagnostics []lint.Diagnostic
	// Output holds the fragments left after blocking. It is nil when the
	// declaration is not annotated or processing failed.
	Output *gen.Output
	// Blocked lists the fragment kinds error diagnostics suppressed.
	Blocked map[string]bool
	// Err wraps ErrInternal when processing failed.
	Err error
}

// Annotated reports whether the declaration was processed at all.
func (r *Result) Annotated() bool {
	return r.Model != nil
}

// Config holds runner configuration.
type Config struct {
	// Analyzer runs the rules (default: all registered rules, default config)
	Analyzer *lint.Analyzer
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
	// Concurrency bounds the declarations processed at once (default: GOMAXPROCS)
	Concurrency int
}

// Runner processes declarations.
type Runner struct {
	analyzer    *lint.Analyzer
	logger      *slog.Logger
	concurrency int
}

// New creates a runner.
func New(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	analyzer := cfg.Analyzer
	if analyzer == nil {
		analyzer = lint.NewAnalyzer(nil)
	}
	n := cfg.Concurrency
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Runner{analyzer: analyzer, logger: logger, concurrency: n}
}

// Analyzer returns the analyzer the runner validates with.
func (r *Runner) Analyzer() *lint.Analyzer {
	return r.analyzer
}

// Run processes decls and returns one result per declaration in input
// order. The only error is the context's.
func (r *Runner) Run(ctx context.Context, decls []*syntax.Decl) ([]Result, error) {
	results := make([]Result, len(decls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, decl := range decls {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.Process(decl)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	r.logger.Debug("pipeline completed", "declarations", len(decls))
	return results, nil
}

// Process runs one declaration. It never panics.
func (r *Runner) Process(decl *syntax.Decl) (res Result) {
	res.Decl = decl
	if !extract.IsAnnotated(decl) {
		return res
	}

	defer func() {
		if p := recover(); p != nil {
			res = r.failed(decl, res.Model, fmt.Errorf("panic: %v", p))
		}
	}()

	m := extract.Extract(decl)
	res.Model = m

	var (
		diags []lint.Diagnostic
		out   *gen.Output
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		defer recoverInto(&err)
		diags = r.analyzer.Analyze(m, decl)
		return nil
	})
	g.Go(func() (err error) {
		defer recoverInto(&err)
		out, err = gen.Generate(m)
		return err
	})
	if err := g.Wait(); err != nil {
		return r.failed(decl, m, err)
	}

	res.Diagnostics = diags
	res.Blocked = r.analyzer.Blocked(diags)
	res.Output = out.Without(res.Blocked)

	r.logger.Debug("processed declaration",
		"type", decl.Name,
		"category", m.Category.String(),
		"items", len(m.Items),
		"variants", len(m.Variants),
		"diagnostics", len(diags),
		"fragments", len(res.Output.Fragments),
		"skipped", len(res.Output.Skipped))
	return res
}

// failed builds the result of a declaration whose processing hit a defect.
// Partial diagnostics and fragments are dropped.
func (r *Runner) failed(decl *syntax.Decl, m *model.TypeModel, err error) Result {
	r.logger.Error("declaration failed",
		"type", decl.Name,
		"file", decl.File,
		"error", err.Error(),
		"stack", string(debug.Stack()))
	return Result{Decl: decl, Model: m, Err: fmt.Errorf("%s: %w: %w", decl.Name, ErrInternal, err)}
}

func recoverInto(err *error) {
	if p := recover(); p != nil {
		*err = fmt.Errorf("panic: %v", p)
	}
}

// Diagnostics flattens the diagnostics of results in result order.
func Diagnostics(results []Result) []lint.Diagnostic {
	var out []lint.Diagnostic
	for _, r := range results {
		out = append(out, r.Diagnostics...)
	}
	return out
}

// Errors returns the per-declaration errors of results.
func Errors(results []Result) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
