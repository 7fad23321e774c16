// Package pipeline assembles label sheets into finished documents.
//
// This package implements the plan → render → write pipeline shared by the
// CLI, the interactive form, batch runs and the HTTP endpoint. Centralizing
// it keeps every entry point producing identical sheets.
//
// # Architecture
//
// A run has three stages:
//
//  1. Plan: resolve the layout option and compute the sheet's cell grid
//  2. Render: draw every cell's label, then the cutting marks, into one
//     single-page document (PDF, SVG preview or JSON geometry)
//  3. Write: persist the bytes atomically (optional, see [WriteFile])
//
// # Usage
//
// The simplest entry point takes a layout name and a record:
//
//	pdf, err := pipeline.Generate("3x6", rec)
//
// Unrecognized layout names fall back to 2x8 there. For strict validation,
// other formats or logging, use a [Runner]:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Layout: "3x6",
//	    Format: pipeline.FormatPDF,
//	    Strict: true,
//	}, rec)
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/render/cell"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// Format constants for output documents.
const (
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultFormat is the print-ready document format.
const DefaultFormat = FormatPDF

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// Formats lists the supported formats in display order.
func Formats() []string {
	return []string{FormatPDF, FormatSVG, FormatJSON}
}

var contentTypes = map[string]string{
	FormatPDF:  "application/pdf",
	FormatSVG:  "image/svg+xml",
	FormatJSON: "application/json",
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// FilenameLayout is the time layout of default output names (Label_HHMMSS).
const FilenameLayout = "Label_150405"

// DefaultFilename names a document generated at t, e.g. Label_142501.pdf.
func DefaultFilename(t time.Time, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	return t.Format(FilenameLayout) + "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Layout names the sheet configuration ("3x6" or "2x8").
	Layout string `json:"layout,omitempty"`
	// Format is one of pdf, svg, json.
	Format string `json:"format,omitempty"`
	// Strict rejects unrecognized layouts instead of falling back to 2x8.
	Strict bool `json:"strict,omitempty"`
	// Title is written into document metadata.
	Title string `json:"title,omitempty"`

	// CreatedAt pins PDF document dates (zero means now).
	CreatedAt time.Time `json:"-"`
	// Metrics overrides the cell design (nil means cell.DefaultMetrics).
	Metrics *cell.Metrics `json:"-"`
	// Table overrides the sheet configurations (nil means sheet.DefaultTable).
	Table sheet.Table `json:"-"`

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the output of a pipeline run.
type Result struct {
	// Plan is the resolved sheet geometry.
	Plan sheet.Plan
	// Record is the record as printed.
	Record label.Record
	// Format and Data hold the finished document.
	Format string
	Data   []byte
	// FellBack is true when the layout name was not recognized and the
	// default layout was used instead.
	FellBack bool
	// Path is set once the document has been written.
	Path string

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Cells      int
	Marks      int
	Ops        int // drawing primitives emitted
	Bytes      int
	PlanTime   time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats(), ", "))
	}
	return nil
}

// ParseFormat normalizes user input into a format name.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		return DefaultFormat, nil
	}
	if err := ValidateFormat(f); err != nil {
		return "", err
	}
	return f, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Strict {
		if _, err := sheet.ParseOption(o.Layout); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// SetDefaults fills in empty fields.
func (o *Options) SetDefaults() {
	if o.Layout == "" {
		o.Layout = sheet.DefaultOption.String()
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Metrics == nil {
		m := cell.DefaultMetrics()
		o.Metrics = &m
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Option resolves the layout name. In strict mode unrecognized names are an
// INVALID_LAYOUT error; otherwise they resolve to the default layout and the
// second result is true.
func (o *Options) Option() (opt sheet.Option, fellBack bool, err error) {
	if o.Strict {
		opt, err = sheet.ParseOption(o.Layout)
		return opt, false, err
	}
	opt, ok := sheet.Resolve(o.Layout)
	return opt, !ok, nil
}

// String summarizes the options for log lines.
func (o Options) String() string {
	return fmt.Sprintf("layout=%s format=%s strict=%t", o.Layout, o.Format, o.Strict)
}
