// Package sheet computes the label grid for an industrial print sheet.
//
// # Overview
//
// A sheet is one of two fixed configurations, selected by an [Option]:
//
//   - [Layout3x6]: 18in x 12in landscape (457.2 x 304.8 mm), 3 columns x 6 rows
//   - [Layout2x8]: 12in x 18in portrait (304.8 x 457.2 mm), 2 columns x 8 rows
//
// Given an option, [New] derives a [Plan] with uniform cell dimensions from the sheet size,
// a fixed outer [Margin] and a fixed inter-cell [Gap]:
//
//	cellWidth  = (width  - 2*margin - (columns-1)*gap) / columns
//	cellHeight = (height - 2*margin - (rows-1)*gap)    / rows
//
// Cells, margins and gaps exactly tile the sheet. All values are millimeters
// with the origin at the sheet's top-left corner and Y increasing downward.
//
// # Options
//
// [ParseOption] is strict and is what command-line and HTTP collaborators use.
// [Resolve] keeps the historical behavior of treating any unrecognized value as
// [Layout2x8]; [PlanString] plans through it.
//
// # Cells and Bands
//
// [Plan.Cells] enumerates cell rectangles row by row. [Rect.Bands] splits a cell
// into its header (top 25%), body (middle 45%) and footer (bottom 30%).
//
// Degenerate grids (non-positive cell width or height) are reported as
// [errors.LayoutError] rather than producing negative rectangles.
//
// [errors.LayoutError]: github.com/novaent/labelsheet/pkg/errors.LayoutError
package sheet
