package draw

import (
	"github.com/novaent/labelsheet/pkg/fonts"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// OpKind identifies a recorded primitive.
type OpKind string

const (
	OpRect OpKind = "rect"
	OpLine OpKind = "line"
	OpText OpKind = "text"
)

// Op is one recorded drawing primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind      `json:"kind"`
	Rect   *sheet.Rect `json:"rect,omitempty"`
	From   *Point      `json:"from,omitempty"`
	To     *Point      `json:"to,omitempty"`
	At     *Point      `json:"at,omitempty"`
	Text   string      `json:"text,omitempty"`
	Stroke *Stroke     `json:"stroke,omitempty"`
	Font   *Font       `json:"font,omitempty"`
}

// Recorder is a Canvas that keeps every primitive in call order.
// Text is measured with the same core-font metrics the PDF sink uses.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Rect(rect sheet.Rect, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: &rect, Stroke: &s})
}

func (r *Recorder) Line(a, b Point, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: &a, To: &b, Stroke: &s})
}

func (r *Recorder) Text(p Point, s string, f Font) {
	r.Ops = append(r.Ops, Op{Kind: OpText, At: &p, Text: s, Font: &f})
}

func (r *Recorder) TextWidth(s string, f Font) float64 {
	return fonts.Measure(s, f.Family, f.Bold, f.Size)
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings of every text op in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Replay sends every recorded op to c in order.
func (r *Recorder) Replay(c Canvas) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpRect:
			c.Rect(*op.Rect, *op.Stroke)
		case OpLine:
			c.Line(*op.From, *op.To, *op.Stroke)
		case OpText:
			c.Text(*op.At, op.Text, *op.Font)
		}
	}
}

// Tee is a Canvas that forwards every primitive to all of its targets.
// Text is measured by the first target.
type Tee []Canvas

func (t Tee) Rect(r sheet.Rect, s Stroke) {
	for _, c := range t {
		c.Rect(r, s)
	}
}

func (t Tee) Line(a, b Point, s Stroke) {
	for _, c := range t {
		c.Line(a, b, s)
	}
}

func (t Tee) Text(p Point, s string, f Font) {
	for _, c := range t {
		c.Text(p, s, f)
	}
}

func (t Tee) TextWidth(s string, f Font) float64 {
	if len(t) == 0 {
		return 0
	}
	return t[0].TextWidth(s, f)
}
