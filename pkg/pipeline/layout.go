package pipeline

import (
	"github.com/novaent/labelsheet/pkg/render/cell"
	"github.com/novaent/labelsheet/pkg/render/marks"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// =============================================================================
// Plan Stage
// =============================================================================

// PlanLayout resolves opts.Layout and computes the sheet grid.
// The second result reports whether the default layout was substituted for
// an unrecognized name (never in strict mode).
func PlanLayout(opts Options) (sheet.Plan, bool, error) {
	opts.SetDefaults()
	opt, fellBack, err := opts.Option()
	if err != nil {
		return sheet.Plan{}, false, err
	}
	p, err := sheet.New(opt, opts.Table)
	if err != nil {
		return sheet.Plan{}, false, err
	}
	return p, fellBack, nil
}

// LayoutInfo summarizes one sheet layout for listings.
type LayoutInfo struct {
	sheet.Plan
	Default   bool    `json:"default"`
	TitleSize float64 `json:"title_size"`
	Crosses   int     `json:"crosses"`
	Ticks     int     `json:"ticks"`
}

// Layouts plans every layout option against table (nil means the built-in
// sheets) and returns them in option order.
func Layouts(table sheet.Table, m cell.Metrics) ([]LayoutInfo, error) {
	out := make([]LayoutInfo, 0, len(sheet.Options()))
	for _, opt := range sheet.Options() {
		p, err := sheet.New(opt, table)
		if err != nil {
			return nil, err
		}
		crosses, ticks := marks.Count(marks.Compute(p))
		out = append(out, LayoutInfo{
			Plan:      p,
			Default:   opt == sheet.DefaultOption,
			TitleSize: m.HeaderFontSize(p.CellWidth),
			Crosses:   crosses,
			Ticks:     ticks,
		})
	}
	return out, nil
}
