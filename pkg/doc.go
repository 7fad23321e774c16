// Package pkg provides the libraries behind labelsheet, a generator of
// print-ready drum-label sheets.
//
// # Overview
//
// A label sheet is one page of a 12x18 inch industrial sheet divided into a
// grid of identical cells. Every cell carries the same label record (product
// name, batch, dates, net weight, hazard warning and the manufacturer's
// company block), and cutting marks in the gaps between cells guide the
// guillotine. Two grids exist: 3x6 on a landscape sheet and 2x8 on a portrait
// one.
//
// The packages are organized as follows:
//
//  1. [sheet] - Sheet layouts and the geometry of their cells and gaps
//  2. [label] - The label record, its fields and the company footer
//  3. [render] - Drawing cells and cutting marks into PDF, SVG or JSON
//  4. [pipeline] - Orchestration (plan → render → write)
//  5. [io], [config] - Record files, batch tables and the configuration file
//
// # Architecture
//
// The data flow for one sheet:
//
//	layout name + label record
//	         ↓
//	    [sheet] package (resolve layout, plan cells)
//	         ↓
//	    [render] packages (cells, then cutting marks, into a sink)
//	         ↓
//	    PDF/SVG/JSON document
//
// # Quick Start
//
//	rec := label.Sample(time.Now())
//	pdf, err := pipeline.Generate("3x6", rec)
//
// For options such as strict layout checks, output format, cell metrics or
// company defaults, use a [pipeline.Runner]:
//
//	res, err := pipeline.NewRunner(logger).RunToFile(ctx, pipeline.Options{
//	    Layout: "2x8",
//	    Format: pipeline.FormatPDF,
//	    Strict: true,
//	}, rec, "Label_142501.pdf")
//
// # Supporting Packages
//
// [errors] - Coded errors shared by every package ([errors.MissingFieldError],
// [errors.LayoutError], [errors.OutputError]).
//
// [fonts] - Core-font text metrics, so centered text sits at the same place in
// every output format.
//
// [cache] - Document cache used by the HTTP server.
//
// [observability] - Hooks for pipeline stages and HTTP requests.
//
// [buildinfo] - Version information set at build time.
//
// [sheet]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/sheet
// [label]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/label
// [render]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/pipeline#Runner
// [io]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/io
// [config]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/config
// [errors]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/errors
// [errors.MissingFieldError]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/errors#MissingFieldError
// [errors.LayoutError]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/errors#LayoutError
// [errors.OutputError]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/errors#OutputError
// [fonts]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/cache
// [observability]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/novaent/labelsheet/pkg/buildinfo
package pkg
