package cli

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/novaent/labelsheet/pkg/config"
	lsio "github.com/novaent/labelsheet/pkg/io"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/pipeline"
)

// fieldFlag binds one command-line flag to a label field.
type fieldFlag struct {
	name  string
	field string
	usage string
}

var fieldFlags = []fieldFlag{
	{"product", label.FieldProductName, "product name (header)"},
	{"batch", label.FieldBatchNo, "batch number"},
	{"mfg-date", label.FieldMfgDate, "date of manufacture (dd/mm/yyyy)"},
	{"retest-date", label.FieldRetestDate, "re-test date (dd/mm/yyyy)"},
	{"net-wt", label.FieldNetWt, "net weight"},
	{"warning", label.FieldWarning, "hazard warning (printed in red)"},
	{"company", label.FieldCompanyName, "company name"},
	{"address1", label.FieldAddressLine1, "first address line"},
	{"address2", label.FieldAddressLine2, "second address line"},
	{"email", label.FieldEmail, "e-mail line"},
}

// recordOpts collects the record sources of a command.
type recordOpts struct {
	recordFile string
	sample     bool
	values     map[string]*string
}

func (o *recordOpts) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.recordFile, "record", "r", "", "record file (.toml, .yaml, .json)")
	fs.BoolVar(&o.sample, "sample", false, "start from the sample record")
	o.values = make(map[string]*string, len(fieldFlags))
	for _, f := range fieldFlags {
		o.values[f.field] = fs.String(f.name, "", f.usage)
	}
}

// build merges the record sources in increasing precedence: sample record,
// record file, field flags. Company-block fields still absent come from
// footer.
func (o *recordOpts) build(fs *pflag.FlagSet, footer label.Footer, now time.Time) (label.Record, error) {
	fields := map[string]string{}
	if o.sample {
		for k, v := range label.Sample(now).ToMap() {
			fields[k] = v
		}
	}
	if o.recordFile != "" {
		fromFile, err := lsio.ImportFields(o.recordFile)
		if err != nil {
			return label.Record{}, err
		}
		for k, v := range fromFile {
			fields[k] = v
		}
	}
	for _, f := range fieldFlags {
		if fs.Changed(f.name) {
			fields[f.field] = *o.values[f.field]
		}
	}
	footer.Fill(fields)
	return label.FromMap(fields)
}

// sheetOpts holds the flags shared by commands that render sheets.
type sheetOpts struct {
	layout  string
	format  string
	title   string
	lenient bool
}

func (o *sheetOpts) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.layout, "layout", "l", "", "sheet layout: 3x6, 2x8 (default from config, else 2x8)")
	fs.StringVarP(&o.format, "format", "f", "", "output format: pdf (default), svg, json")
	fs.StringVar(&o.title, "title", "", "document title metadata")
	fs.BoolVar(&o.lenient, "lenient", false, "fall back to 2x8 for unknown layouts instead of failing")
}

// options layers the flags over the configuration.
func (o *sheetOpts) options(cfg *config.Config) (pipeline.Options, error) {
	opts := cfg.Options()
	if o.layout != "" {
		opts.Layout = o.layout
	}
	if o.format != "" {
		f, err := pipeline.ParseFormat(o.format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	opts.Title = o.title
	opts.Strict = !o.lenient
	return opts, nil
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output string
		rec    recordOpts
		sheet  sheetOpts
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one label sheet",
		Long: `Render one label sheet.

The record comes from --record, --sample and the per-field flags, in that
order of increasing precedence. Every field must end up set; company-block
fields default to the [footer] of the config file.

The output name defaults to Label_HHMMSS.<format> in the configured out_dir.
A known extension on -o selects the format when --format is not given.`,
		Example: `  labelsheet generate --sample --layout 3x6
  labelsheet generate -r acetone.toml --batch 44/2526 -o acetone.pdf
  labelsheet generate -r acetone.yaml -f svg -o preview.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), cmd.Flags(), &rec, &sheet, output, time.Now())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: Label_HHMMSS.<format>)")
	sheet.register(cmd.Flags())
	rec.register(cmd.Flags())

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, fs *pflag.FlagSet, ro *recordOpts, so *sheetOpts, output string, now time.Time) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if so.format == "" && output != "" {
		if f := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), "."); pipeline.ValidFormats[f] {
			so.format = f
		}
	}
	opts, err := so.options(cfg)
	if err != nil {
		return err
	}
	rec, err := ro.build(fs, cfg.Footer, now)
	if err != nil {
		return err
	}

	path := outputPath(output, cfg.OutDir, now, opts.Format)
	logger.Debug("generating", "options", opts.String(), "path", path)

	res, err := c.newRunner().RunToFile(ctx, opts, rec, path)
	if err != nil {
		return err
	}

	if res.FellBack {
		printWarning("Unknown layout %q, used %s", opts.Layout, res.Plan.Option)
	}
	printSuccess("Generated %s sheet for %s", res.Plan.Option, StyleHighlight.Render(rec.ProductName))
	printFile(res.Path)
	printStats(res.Plan.Option.String(), res.Stats.Cells, res.Stats.Marks, res.Stats.Bytes, res.FellBack)
	return nil
}

// outputPath returns output, or the default timestamped name inside dir.
func outputPath(output, dir string, now time.Time, format string) string {
	if output != "" {
		return output
	}
	name := pipeline.DefaultFilename(now, format)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
