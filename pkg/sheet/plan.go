package sheet

import (
	"github.com/novaent/labelsheet/pkg/errors"
)

const (
	// Margin is the whitespace between the sheet edge and the outermost cells (mm).
	Margin = 5.0
	// Gap is the whitespace between adjacent cells, both directions (mm).
	Gap = 10.0
)

// Plan is the resolved geometry of one sheet.
type Plan struct {
	Option     Option  `json:"layout"`
	Spec       Spec    `json:"sheet"`
	Margin     float64 `json:"margin"`
	Gap        float64 `json:"gap"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
}

// New computes the plan for opt using the configurations in table.
// A nil table means [DefaultTable].
func New(opt Option, table Table) (Plan, error) {
	if table == nil {
		table = DefaultTable()
	}
	spec, ok := table[opt]
	if !ok {
		return Plan{}, errors.New(errors.ErrCodeInvalidLayout, "layout %q is not configured", opt)
	}
	return planSpec(opt, spec)
}

// PlanString plans the layout named by s, falling back to [DefaultOption]
// for unrecognized names. The second result reports whether s was recognized.
func PlanString(s string) (Plan, bool, error) {
	opt, ok := Resolve(s)
	p, err := New(opt, nil)
	return p, ok, err
}

// MustPlan is like [New] with the default table, for use with the
// predefined options whose geometry is known to be valid.
func MustPlan(opt Option) Plan {
	p, err := New(opt, nil)
	if err != nil {
		panic(err)
	}
	return p
}

func planSpec(opt Option, spec Spec) (Plan, error) {
	p := Plan{Option: opt, Spec: spec, Margin: Margin, Gap: Gap}
	if spec.Columns <= 0 || spec.Rows <= 0 {
		return Plan{}, &errors.LayoutError{Option: string(opt), Columns: spec.Columns, Rows: spec.Rows}
	}
	p.CellWidth = cellSize(spec.Width, spec.Columns)
	p.CellHeight = cellSize(spec.Height, spec.Rows)
	if p.CellWidth <= 0 || p.CellHeight <= 0 {
		return Plan{}, &errors.LayoutError{
			Option:     string(opt),
			Columns:    spec.Columns,
			Rows:       spec.Rows,
			CellWidth:  p.CellWidth,
			CellHeight: p.CellHeight,
		}
	}
	return p, nil
}

func cellSize(extent float64, n int) float64 {
	available := extent - 2*Margin - float64(n-1)*Gap
	return available / float64(n)
}

// Columns returns the number of cells per row.
func (p Plan) Columns() int { return p.Spec.Columns }

// Rows returns the number of cells per column.
func (p Plan) Rows() int { return p.Spec.Rows }

// CellCount returns columns x rows.
func (p Plan) CellCount() int { return p.Spec.Columns * p.Spec.Rows }

// Cell returns the rectangle of the cell at the given column and row (zero-based).
func (p Plan) Cell(col, row int) Rect {
	return Rect{
		X: p.Margin + float64(col)*(p.CellWidth+p.Gap),
		Y: p.Margin + float64(row)*(p.CellHeight+p.Gap),
		W: p.CellWidth,
		H: p.CellHeight,
	}
}

// Cells returns every cell rectangle, row by row, left to right.
func (p Plan) Cells() []Rect {
	cells := make([]Rect, 0, p.CellCount())
	for row := 0; row < p.Spec.Rows; row++ {
		for col := 0; col < p.Spec.Columns; col++ {
			cells = append(cells, p.Cell(col, row))
		}
	}
	return cells
}

// GapCentersX returns the X coordinate of the midpoint of each inter-column gap.
func (p Plan) GapCentersX() []float64 {
	return gapCenters(p.Margin, p.CellWidth, p.Gap, p.Spec.Columns)
}

// GapCentersY returns the Y coordinate of the midpoint of each inter-row gap.
func (p Plan) GapCentersY() []float64 {
	return gapCenters(p.Margin, p.CellHeight, p.Gap, p.Spec.Rows)
}

func gapCenters(margin, cell, gap float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	centers := make([]float64, n-1)
	for i := range centers {
		centers[i] = margin + cell + float64(i)*(cell+gap) + gap/2
	}
	return centers
}
