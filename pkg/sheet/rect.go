package sheet

// Band fractions of a cell's height.
const (
	HeaderFraction = 0.25
	FooterFraction = 0.30
	BodyFraction   = 1 - HeaderFraction - FooterFraction
)

// Rect is an axis-aligned rectangle in sheet millimeters; (X, Y) is its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point lies inside r or on its boundary.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Bands holds the three horizontal regions of a label cell.
type Bands struct {
	Header Rect
	Body   Rect
	Footer Rect
}

// Bands splits r into header, body and footer bands.
// The header and footer boundaries are where the cell's divider lines are drawn.
func (r Rect) Bands() Bands {
	headerH := r.H * HeaderFraction
	footerH := r.H * FooterFraction
	footerY := r.Y + r.H - footerH
	return Bands{
		Header: Rect{X: r.X, Y: r.Y, W: r.W, H: headerH},
		Body:   Rect{X: r.X, Y: r.Y + headerH, W: r.W, H: footerY - (r.Y + headerH)},
		Footer: Rect{X: r.X, Y: footerY, W: r.W, H: footerH},
	}
}

// SplitX divides r at fraction f of its width into a left and right part.
func (r Rect) SplitX(f float64) (Rect, Rect) {
	lw := r.W * f
	return Rect{X: r.X, Y: r.Y, W: lw, H: r.H}, Rect{X: r.X + lw, Y: r.Y, W: r.W - lw, H: r.H}
}
