// Package sink provides the output documents a sheet is drawn into.
//
// # Overview
//
// Every sink implements [draw.Canvas], so the cell renderer and the
// cutting-mark generator draw into any of them unchanged, and a [Document]
// method to finalize the output:
//
//   - [PDF]: the print-ready single-page document (gofpdf, core fonts)
//   - [SVG]: a browser preview with identical geometry
//   - [JSON]: the plan, cell rectangles and every drawing primitive, for
//     cutter software and tests
//
// # PDF Output
//
// [NewPDF] opens one page exactly the size of the sheet, with automatic page
// breaks disabled so nothing is ever pushed onto a second page:
//
//	doc := sink.NewPDF(plan.Spec, sink.WithPDFTitle("Label sheet"))
//	// ... draw ...
//	data, err := doc.Bytes()
//
// Use [WithPDFCreatedAt] to pin the document dates; output is otherwise
// stamped with the time it was written.
//
// # Text
//
// All sinks measure text through [fonts.Measure], so centered text lands in
// the same place in every format.
//
// [draw.Canvas]: github.com/novaent/labelsheet/pkg/render/draw.Canvas
// [fonts.Measure]: github.com/novaent/labelsheet/pkg/fonts.Measure
package sink

import "github.com/novaent/labelsheet/pkg/render/draw"

// Document is a canvas that can be finalized into bytes.
type Document interface {
	draw.Canvas
	Bytes() ([]byte, error)
}

var (
	_ Document = (*PDF)(nil)
	_ Document = (*SVG)(nil)
	_ Document = (*JSON)(nil)
)
