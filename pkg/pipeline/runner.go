package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/observability"
	"github.com/novaent/labelsheet/pkg/render/marks"
)

// Runner executes the pipeline with logging and observability hooks.
// Both the CLI and the HTTP server use it.
//
// The Runner is stateless except for its logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Run executes plan → render for one record and returns the document.
func (r *Runner) Run(ctx context.Context, opts Options, rec label.Record) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 1: Plan
	planStart := time.Now()
	p, fellBack, err := PlanLayout(opts)
	hooks.OnPlan(ctx, opts.Layout, p.CellCount(), fellBack, err)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result := &Result{Plan: p, Format: opts.Format, FellBack: fellBack}
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.Cells = p.CellCount()

	if fellBack {
		opts.Logger.Warn("unrecognized layout, using default", "layout", opts.Layout, "default", p.Option)
	}
	opts.Logger.Debug("planned sheet",
		"layout", p.Option,
		"grid", fmt.Sprintf("%dx%d", p.Columns(), p.Rows()),
		"cell", fmt.Sprintf("%.2fx%.2fmm", p.CellWidth, p.CellHeight))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	result.Record = rec
	hooks.OnRenderStart(ctx, opts.Format, p.CellCount())
	renderStart := time.Now()
	data, ops, err := render(p, result.Record, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Data = data
	result.Stats.Bytes = len(data)
	result.Stats.Ops = ops
	crosses, ticks := marks.Count(marks.Compute(p))
	result.Stats.Marks = crosses + ticks

	opts.Logger.Info("rendered sheet",
		"layout", p.Option,
		"format", opts.Format,
		"ops", ops,
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RunToFile runs the pipeline and writes the document to path.
// Nothing is written if any stage fails.
func (r *Runner) RunToFile(ctx context.Context, opts Options, rec label.Record, path string) (*Result, error) {
	result, err := r.Run(ctx, opts, rec)
	if err != nil {
		return nil, err
	}

	writeStart := time.Now()
	err = WriteFile(path, result.Data)
	result.Stats.WriteTime = time.Since(writeStart)
	observability.Pipeline().OnWrite(ctx, path, len(result.Data), result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}
	result.Path = path

	r.Logger.Debug("wrote document", "path", path, "bytes", len(result.Data))
	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
