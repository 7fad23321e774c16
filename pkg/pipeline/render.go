package pipeline

import (
	"fmt"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/render/cell"
	"github.com/novaent/labelsheet/pkg/render/draw"
	"github.com/novaent/labelsheet/pkg/render/marks"
	"github.com/novaent/labelsheet/pkg/render/sink"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// Assemble draws a complete sheet onto c: every cell in row-major order,
// each holding the same record, then the cutting marks once. It returns the
// marks it drew.
func Assemble(c draw.Canvas, p sheet.Plan, rec label.Record, m cell.Metrics) []marks.Segment {
	for _, r := range p.Cells() {
		cell.Render(c, r, rec, m)
	}
	segs := marks.Compute(p)
	marks.Draw(c, segs)
	return segs
}

// NewDocument opens an empty document of the given format sized for p.
func NewDocument(format string, p sheet.Plan, rec label.Record, opts Options) (sink.Document, error) {
	switch format {
	case FormatPDF:
		pdfOpts := []sink.PDFOption{sink.WithPDFAuthor(rec.CompanyName)}
		if opts.Title != "" {
			pdfOpts = append(pdfOpts, sink.WithPDFTitle(opts.Title))
		}
		if !opts.CreatedAt.IsZero() {
			pdfOpts = append(pdfOpts, sink.WithPDFCreatedAt(opts.CreatedAt))
		}
		return sink.NewPDF(p.Spec, pdfOpts...), nil
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.Title != "" {
			svgOpts = append(svgOpts, sink.WithSVGTitle(opts.Title))
		}
		return sink.NewSVG(p.Spec, svgOpts...), nil
	case FormatJSON:
		return sink.NewJSON(p, sink.WithJSONRecord(rec), sink.WithJSONMarks(marks.Compute(p))), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// Render produces the finished document bytes for p and rec.
func Render(p sheet.Plan, rec label.Record, opts Options) ([]byte, error) {
	data, _, err := render(p, rec, opts)
	return data, err
}

// render is Render that also reports how many primitives were drawn.
func render(p sheet.Plan, rec label.Record, opts Options) ([]byte, int, error) {
	opts.SetDefaults()
	doc, err := NewDocument(opts.Format, p, rec, opts)
	if err != nil {
		return nil, 0, err
	}
	var rc draw.Recorder
	Assemble(draw.Tee{doc, &rc}, p, rec, *opts.Metrics)
	data, err := doc.Bytes()
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeInternal, err, "finalize %s", opts.Format)
	}
	return data, len(rc.Ops), nil
}

// Generate renders a PDF of the named layout filled with rec. Unrecognized
// layout names fall back to 2x8.
func Generate(layout string, rec label.Record) ([]byte, error) {
	p, _, err := PlanLayout(Options{Layout: layout})
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	return Render(p, rec, Options{Format: FormatPDF})
}
