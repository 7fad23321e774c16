package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/novaent/labelsheet/pkg/errors"
	lsio "github.com/novaent/labelsheet/pkg/io"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/pipeline"
)

type batchOpts struct {
	outDir    string
	keepGoing bool
	sheet     sheetOpts
}

// batchCommand creates the batch command.
func (c *CLI) batchCommand() *cobra.Command {
	var opts batchOpts

	cmd := &cobra.Command{
		Use:   "batch <table.csv|table.xlsx>",
		Short: "Render one label sheet per table row",
		Long: `Render one label sheet per data row of a CSV or XLSX table.

The first row holds column captions such as "Product Name", "Batch No",
"Mfg. Date". Company-block columns may be omitted; they default to the
[footer] of the config file. Each sheet is written as
Label_HHMMSS_rNNN.<format>, NNN being the table row.`,
		Example: `  labelsheet batch drums.csv
  labelsheet batch drums.xlsx --layout 3x6 --out-dir out/
  labelsheet batch drums.csv --keep-going`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd.Context(), args[0], opts, time.Now())
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "d", "", "output directory (default: configured out_dir, else .)")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "skip rows that fail instead of stopping")
	opts.sheet.register(cmd.Flags())

	return cmd
}

func (c *CLI) runBatch(ctx context.Context, path string, opts batchOpts, now time.Time) error {
	logger, runID := runLogger(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	popts, err := opts.sheet.options(cfg)
	if err != nil {
		return err
	}
	table, err := lsio.ImportTable(path)
	if err != nil {
		return err
	}
	if len(table.Unrecognized) > 0 {
		logger.Warn("ignoring columns", "captions", table.Unrecognized)
	}

	dir := opts.outDir
	if dir == "" {
		dir = cfg.OutDir
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &errors.OutputError{Path: dir, Err: err}
		}
	}

	logger.Debug("batch started", "id", runID, "table", path, "rows", len(table.Rows), "options", popts.String())

	runner := c.newRunner()
	runner.Logger = logger
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d sheets...", len(table.Rows)))
	spinner.Start()

	var (
		written []string
		failed  int
		total   pipeline.Stats
	)
	for i, row := range table.Rows {
		spinner.SetMessage(fmt.Sprintf("Rendering row %d (%d of %d)...", row.Line, i+1, len(table.Rows)))

		out := filepath.Join(dir, batchFilename(now, row.Line, popts.Format))
		res, err := renderRow(ctx, runner, popts, row, cfg.Footer, out)
		if err != nil {
			if !opts.keepGoing || ctx.Err() != nil {
				spinner.StopWithError(fmt.Sprintf("Row %d failed", row.Line))
				return err
			}
			logger.Warn("row skipped", "row", row.Line, "err", err)
			failed++
			continue
		}
		written = append(written, res.Path)
		total.Cells += res.Stats.Cells
		total.Marks += res.Stats.Marks
		total.Bytes += res.Stats.Bytes
	}
	spinner.Stop()

	prog.done(fmt.Sprintf("Rendered %d sheets", len(written)))
	printSuccess("Rendered %d of %d sheets", len(written), len(table.Rows))
	for _, p := range written {
		printFile(p)
	}
	printDetail("run %s · %d cells · %d marks · %s", runID, total.Cells, total.Marks, formatBytes(total.Bytes))

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%d of %d rows failed", failed, len(table.Rows))
	}
	return nil
}

func renderRow(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, row lsio.Row, footer label.Footer, out string) (*pipeline.Result, error) {
	rec, err := row.Record(footer)
	if err != nil {
		return nil, err
	}
	res, err := runner.RunToFile(ctx, opts, rec, out)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", row.Line, err)
	}
	return res, nil
}

// batchFilename names the sheet rendered from table row line.
func batchFilename(now time.Time, line int, format string) string {
	return fmt.Sprintf("%s_r%03d.%s", now.Format(pipeline.FilenameLayout), line, format)
}
