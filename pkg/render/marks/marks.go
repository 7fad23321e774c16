// Package marks computes the cutting guides printed between label cells.
//
// Two kinds of marks are produced, all centered in the whitespace between
// cells so that cutting along them splits every gap in half:
//
//   - Inner crosses at every interior gap intersection, with arms of
//     [CrossSize] millimeters in each direction.
//   - Outer ticks at both sheet edges for every inter-column and inter-row
//     gap, running from the sheet edge to the margin.
//
// For a grid of c columns and r rows that is (c-1)(r-1) crosses (two segments
// each) and 2(c-1) + 2(r-1) ticks.
package marks

import (
	"github.com/novaent/labelsheet/pkg/render/draw"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// CrossSize is the half-length of each cross arm in millimeters.
const CrossSize = 2.0

// Width is the stroke width of every mark in millimeters.
const Width = 0.2

// Kind distinguishes interior crosses from edge ticks.
type Kind string

const (
	InnerCross Kind = "cross"
	OuterTick  Kind = "tick"
)

// Segment is one straight cutting-mark stroke.
type Segment struct {
	From draw.Point `json:"from"`
	To   draw.Point `json:"to"`
	Kind Kind       `json:"kind"`
}

// Compute returns every mark for p in drawing order: all crosses (column gap
// outer, row gap inner, horizontal arm before vertical arm), then column ticks
// (top then bottom), then row ticks (left then right).
func Compute(p sheet.Plan) []Segment {
	xs := p.GapCentersX()
	ys := p.GapCentersY()
	w, h := p.Spec.Width, p.Spec.Height

	segs := make([]Segment, 0, 2*len(xs)*len(ys)+2*len(xs)+2*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			segs = append(segs,
				Segment{From: draw.Pt(x-CrossSize, y), To: draw.Pt(x+CrossSize, y), Kind: InnerCross},
				Segment{From: draw.Pt(x, y-CrossSize), To: draw.Pt(x, y+CrossSize), Kind: InnerCross},
			)
		}
	}
	for _, x := range xs {
		segs = append(segs,
			Segment{From: draw.Pt(x, 0), To: draw.Pt(x, p.Margin), Kind: OuterTick},
			Segment{From: draw.Pt(x, h-p.Margin), To: draw.Pt(x, h), Kind: OuterTick},
		)
	}
	for _, y := range ys {
		segs = append(segs,
			Segment{From: draw.Pt(0, y), To: draw.Pt(p.Margin, y), Kind: OuterTick},
			Segment{From: draw.Pt(w-p.Margin, y), To: draw.Pt(w, y), Kind: OuterTick},
		)
	}
	return segs
}

// Stroke is the style every mark is drawn with.
func Stroke() draw.Stroke {
	return draw.Stroke{Width: Width, Color: draw.Red}
}

// Draw strokes segs onto c in order.
func Draw(c draw.Canvas, segs []Segment) {
	s := Stroke()
	for _, seg := range segs {
		c.Line(seg.From, seg.To, s)
	}
}

// Count returns the number of crosses and ticks in segs. A cross has two segments.
func Count(segs []Segment) (crosses, ticks int) {
	for _, s := range segs {
		switch s.Kind {
		case InnerCross:
			crosses++
		case OuterTick:
			ticks++
		}
	}
	return crosses / 2, ticks
}
