package sink

import (
	"encoding/json"

	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/render/draw"
	"github.com/novaent/labelsheet/pkg/render/marks"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// JSONOption configures a [JSON] geometry export.
type JSONOption func(*JSON)

// WithJSONRecord embeds the label record the sheet was rendered from.
func WithJSONRecord(r label.Record) JSONOption {
	return func(j *JSON) { j.record = &r }
}

// WithJSONMarks lists the cutting marks separately from the drawing ops,
// for cutter software that only needs the guides.
func WithJSONMarks(segs []marks.Segment) JSONOption {
	return func(j *JSON) { j.marks = segs }
}

// JSON records every primitive and exports the sheet's geometry as a
// pretty-printed JSON document.
type JSON struct {
	draw.Recorder
	plan   sheet.Plan
	record *label.Record
	marks  []marks.Segment
}

type jsonOutput struct {
	Layout     string          `json:"layout"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Columns    int             `json:"columns"`
	Rows       int             `json:"rows"`
	Margin     float64         `json:"margin"`
	Gap        float64         `json:"gap"`
	CellWidth  float64         `json:"cell_width"`
	CellHeight float64         `json:"cell_height"`
	Cells      []sheet.Rect    `json:"cells"`
	Record     *label.Record   `json:"record,omitempty"`
	Marks      []marks.Segment `json:"marks,omitempty"`
	Ops        []draw.Op       `json:"ops"`
}

// NewJSON starts a geometry export for plan p.
func NewJSON(p sheet.Plan, opts ...JSONOption) *JSON {
	j := &JSON{plan: p}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Bytes returns the export. It only fails if marshaling fails.
func (j *JSON) Bytes() ([]byte, error) {
	ops := j.Ops
	if ops == nil {
		ops = []draw.Op{}
	}
	out := jsonOutput{
		Layout:     j.plan.Option.String(),
		Width:      j.plan.Spec.Width,
		Height:     j.plan.Spec.Height,
		Columns:    j.plan.Columns(),
		Rows:       j.plan.Rows(),
		Margin:     j.plan.Margin,
		Gap:        j.plan.Gap,
		CellWidth:  j.plan.CellWidth,
		CellHeight: j.plan.CellHeight,
		Cells:      j.plan.Cells(),
		Record:     j.record,
		Marks:      j.marks,
		Ops:        ops,
	}
	return json.MarshalIndent(out, "", "  ")
}
