package sheet

import (
	"math"
	"testing"

	"github.com/novaent/labelsheet/pkg/errors"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestDefaultTableDimensions(t *testing.T) {
	tests := []struct {
		opt           Option
		width, height float64
		cols, rows    int
		landscape     bool
	}{
		{Layout3x6, 457.2, 304.8, 3, 6, true},
		{Layout2x8, 304.8, 457.2, 2, 8, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.opt), func(t *testing.T) {
			p, err := New(tt.opt, nil)
			if err != nil {
				t.Fatalf("New(%s) error: %v", tt.opt, err)
			}
			if !approx(p.Spec.Width, tt.width) || !approx(p.Spec.Height, tt.height) {
				t.Errorf("sheet = %.4f x %.4f, want %.1f x %.1f", p.Spec.Width, p.Spec.Height, tt.width, tt.height)
			}
			if p.Columns() != tt.cols || p.Rows() != tt.rows {
				t.Errorf("grid = %dx%d, want %dx%d", p.Columns(), p.Rows(), tt.cols, tt.rows)
			}
			if p.Spec.Landscape() != tt.landscape {
				t.Errorf("Landscape() = %v, want %v", p.Spec.Landscape(), tt.landscape)
			}
		})
	}
}

func TestPlanTilesSheet(t *testing.T) {
	for _, opt := range Options() {
		t.Run(string(opt), func(t *testing.T) {
			p := MustPlan(opt)
			cols, rows := float64(p.Columns()), float64(p.Rows())

			gotW := cols*p.CellWidth + (cols-1)*Gap + 2*Margin
			if !approx(gotW, p.Spec.Width) {
				t.Errorf("width identity: %.9f != %.9f", gotW, p.Spec.Width)
			}
			gotH := rows*p.CellHeight + (rows-1)*Gap + 2*Margin
			if !approx(gotH, p.Spec.Height) {
				t.Errorf("height identity: %.9f != %.9f", gotH, p.Spec.Height)
			}

			cells := p.Cells()
			if len(cells) != p.CellCount() {
				t.Fatalf("len(Cells()) = %d, want %d", len(cells), p.CellCount())
			}
			last := cells[len(cells)-1]
			if !approx(last.Right()+Margin, p.Spec.Width) || !approx(last.Bottom()+Margin, p.Spec.Height) {
				t.Errorf("last cell ends at (%.4f, %.4f), want margin from sheet edge", last.Right(), last.Bottom())
			}
			for i, c := range cells {
				if !approx(c.W, p.CellWidth) || !approx(c.H, p.CellHeight) {
					t.Errorf("cell %d size %.4fx%.4f differs from plan", i, c.W, c.H)
				}
			}
		})
	}
}

func TestCellsRowMajor(t *testing.T) {
	p := MustPlan(Layout3x6)
	cells := p.Cells()

	if got := cells[1]; !approx(got.X, Margin+p.CellWidth+Gap) || !approx(got.Y, Margin) {
		t.Errorf("cells[1] = %+v, want second column of first row", got)
	}
	if got := cells[3]; !approx(got.X, Margin) || !approx(got.Y, Margin+p.CellHeight+Gap) {
		t.Errorf("cells[3] = %+v, want first column of second row", got)
	}
	if cells[4] != p.Cell(1, 1) {
		t.Errorf("cells[4] = %+v, want Cell(1,1) = %+v", cells[4], p.Cell(1, 1))
	}
}

func TestCellsDoNotOverlap(t *testing.T) {
	for _, opt := range Options() {
		p := MustPlan(opt)
		cells := p.Cells()
		for i := range cells {
			for j := i + 1; j < len(cells); j++ {
				a, b := cells[i], cells[j]
				if a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom() {
					t.Errorf("%s: cells %d and %d overlap", opt, i, j)
				}
			}
		}
	}
}

func TestPlanStringFallback(t *testing.T) {
	tests := []struct {
		input  string
		want   Option
		wantOK bool
	}{
		{"3x6", Layout3x6, true},
		{"2x8", Layout2x8, true},
		{"3X6", Layout2x8, false},
		{" 3x6 ", Layout2x8, false},
		{"", Layout2x8, false},
		{"4x4", Layout2x8, false},
		{"landscape", Layout2x8, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok, err := PlanString(tt.input)
			if err != nil {
				t.Fatalf("PlanString(%q) error: %v", tt.input, err)
			}
			if ok != tt.wantOK {
				t.Errorf("recognized = %v, want %v", ok, tt.wantOK)
			}
			if p.Option != tt.want {
				t.Errorf("Option = %s, want %s", p.Option, tt.want)
			}
			if !tt.wantOK {
				if !approx(p.Spec.Width, 304.8) || !approx(p.Spec.Height, 457.2) {
					t.Errorf("fallback sheet = %.2f x %.2f, want 304.8 x 457.2", p.Spec.Width, p.Spec.Height)
				}
				if p.Columns() != 2 || p.Rows() != 8 {
					t.Errorf("fallback grid = %dx%d, want 2x8", p.Columns(), p.Rows())
				}
			}
		})
	}
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"3x6", false},
		{"2x8", false},
		{"2X8", false},
		{"", true},
		{"3x8", true},
		{"3 x 6", true},
	}

	for _, tt := range tests {
		_, err := ParseOption(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOption(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidLayout) {
			t.Errorf("ParseOption(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidLayout)
		}
	}
}

func TestNewDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"too many columns", Spec{Width: 50, Height: 300, Columns: 10, Rows: 2}},
		{"too many rows", Spec{Width: 300, Height: 50, Columns: 2, Rows: 10}},
		{"exactly zero width", Spec{Width: 20, Height: 300, Columns: 2, Rows: 2}},
		{"zero columns", Spec{Width: 300, Height: 300, Columns: 0, Rows: 2}},
		{"negative rows", Spec{Width: 300, Height: 300, Columns: 2, Rows: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Layout3x6, Table{Layout3x6: tt.spec})
			if err == nil {
				t.Fatal("expected a layout error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGeometry)
			}
		})
	}
}

func TestNewUnconfiguredOption(t *testing.T) {
	_, err := New(Layout2x8, Table{Layout3x6: DefaultTable()[Layout3x6]})
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("New() error = %v, want INVALID_LAYOUT", err)
	}
}

func TestGapCenters(t *testing.T) {
	p := MustPlan(Layout3x6)

	xs := p.GapCentersX()
	if len(xs) != p.Columns()-1 {
		t.Fatalf("len(GapCentersX) = %d, want %d", len(xs), p.Columns()-1)
	}
	for i, x := range xs {
		left := p.Cell(i, 0)
		right := p.Cell(i+1, 0)
		if !approx(x, (left.Right()+right.X)/2) {
			t.Errorf("GapCentersX[%d] = %.4f, want midpoint %.4f", i, x, (left.Right()+right.X)/2)
		}
	}

	ys := p.GapCentersY()
	if len(ys) != p.Rows()-1 {
		t.Fatalf("len(GapCentersY) = %d, want %d", len(ys), p.Rows()-1)
	}
	for j, y := range ys {
		top := p.Cell(0, j)
		below := p.Cell(0, j+1)
		if !approx(y, (top.Bottom()+below.Y)/2) {
			t.Errorf("GapCentersY[%d] = %.4f, want midpoint", j, y)
		}
	}

	single := Plan{Spec: Spec{Columns: 1, Rows: 1}}
	if got := single.GapCentersX(); got != nil {
		t.Errorf("single column GapCentersX = %v, want nil", got)
	}
}

func TestPlanDeterministic(t *testing.T) {
	a := MustPlan(Layout2x8)
	b := MustPlan(Layout2x8)
	if a != b {
		t.Errorf("plans differ: %+v vs %+v", a, b)
	}
}
