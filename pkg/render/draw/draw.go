// Package draw defines the drawing primitives shared by every output sink.
//
// Renderers describe a sheet as a sequence of stroked rectangles, stroked
// lines and text runs. Each primitive carries its complete style: there is
// no pen or font state on a [Canvas], so a red warning line cannot leak its
// color into whatever is drawn next.
//
// Coordinates are millimeters from the sheet's top-left corner with Y
// increasing downward. Font sizes are points. A text [Point] is the left end
// of the baseline.
package draw

import (
	"fmt"

	"github.com/novaent/labelsheet/pkg/sheet"
)

// Point is a position on the sheet in millimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Color is an RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	Black = Color{0, 0, 0}
	Red   = Color{255, 0, 0}
)

// Hex returns the color as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Stroke styles a line or rectangle outline.
type Stroke struct {
	Width float64 `json:"width"`
	Color Color   `json:"color"`
}

// Helvetica is the only typeface labels use. It is one of the PDF core fonts,
// so documents need no embedded font files.
const Helvetica = "Helvetica"

// Font styles a text run.
type Font struct {
	Family string  `json:"family"`
	Bold   bool    `json:"bold,omitempty"`
	Size   float64 `json:"size"`
	Color  Color   `json:"color"`
}

// Style returns the gofpdf style string for f ("B" or "").
func (f Font) Style() string {
	if f.Bold {
		return "B"
	}
	return ""
}

// Canvas receives drawing primitives. Implementations must not retain
// state between calls beyond the primitives themselves.
type Canvas interface {
	// Rect strokes the outline of r.
	Rect(r sheet.Rect, s Stroke)
	// Line strokes a straight segment from a to b.
	Line(a, b Point, s Stroke)
	// Text draws s with its baseline starting at p.
	Text(p Point, s string, f Font)
	// TextWidth returns the rendered width of s in millimeters.
	TextWidth(s string, f Font) float64
}
