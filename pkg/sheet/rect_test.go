package sheet

import "testing"

func TestBandsSumToCellHeight(t *testing.T) {
	for _, opt := range Options() {
		p := MustPlan(opt)
		for i, c := range p.Cells() {
			b := c.Bands()
			sum := b.Header.H + b.Body.H + b.Footer.H
			if !approx(sum, c.H) {
				t.Errorf("%s cell %d: bands sum %.9f, want %.9f", opt, i, sum, c.H)
			}
			if !approx(b.Header.H, 0.25*c.H) || !approx(b.Footer.H, 0.30*c.H) || !approx(b.Body.H, 0.45*c.H) {
				t.Errorf("%s cell %d: bands %.4f/%.4f/%.4f not 25/45/30%%", opt, i, b.Header.H, b.Body.H, b.Footer.H)
			}
			if !approx(b.Body.Y, b.Header.Bottom()) || !approx(b.Footer.Y, b.Body.Bottom()) {
				t.Errorf("%s cell %d: bands are not contiguous", opt, i)
			}
		}
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}

	if r.Right() != 110 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %v/%v", r.Right(), r.Bottom())
	}
	if r.CenterX() != 60 || r.CenterY() != 40 {
		t.Errorf("Center = %v,%v", r.CenterX(), r.CenterY())
	}
	if !r.Contains(10, 20) || !r.Contains(110, 60) || r.Contains(9.9, 30) {
		t.Error("Contains boundary handling is wrong")
	}

	left, right := r.SplitX(0.5)
	if left.W != 50 || right.X != 60 || right.W != 50 {
		t.Errorf("SplitX(0.5) = %+v, %+v", left, right)
	}
}
