// Package render groups the packages that turn a sheet plan and a label
// record into a document.
//
// # Overview
//
// Rendering is split by concern so each piece can be tested on its own:
//
//   - [draw]: primitives (stroked rectangles, lines, text runs) and the
//     [draw.Canvas] interface every output implements, plus a recording canvas
//   - [cell]: the content of one label cell (header, body, footer bands)
//   - [marks]: the cutting crosses and edge ticks between cells
//   - [sink]: PDF, SVG and JSON documents implementing [draw.Canvas]
//
// The pipeline package drives them: it plans the sheet, draws every cell
// through [cell], adds the [marks] once, and finalizes the [sink] document.
//
//	doc := sink.NewPDF(plan.Spec)
//	for _, r := range plan.Cells() {
//	    cell.Render(doc, r, rec, cell.DefaultMetrics())
//	}
//	marks.Draw(doc, marks.Compute(plan))
//	data, err := doc.Bytes()
//
// [draw]: github.com/novaent/labelsheet/pkg/render/draw
// [draw.Canvas]: github.com/novaent/labelsheet/pkg/render/draw.Canvas
// [cell]: github.com/novaent/labelsheet/pkg/render/cell
// [marks]: github.com/novaent/labelsheet/pkg/render/marks
// [sink]: github.com/novaent/labelsheet/pkg/render/sink
package render
