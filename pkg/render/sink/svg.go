package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/novaent/labelsheet/pkg/fonts"
	"github.com/novaent/labelsheet/pkg/render/draw"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// PointsToMM converts font sizes to sheet units.
const PointsToMM = sheet.MMPerInch / 72

const svgFontFamily = `Helvetica, Arial, sans-serif`

// SVGOption configures an [SVG] preview.
type SVGOption func(*SVG)

// WithSVGBackground fills the sheet with color before drawing (white by default).
func WithSVGBackground(c draw.Color) SVGOption { return func(s *SVG) { s.background = c } }

// WithSVGTitle adds a <title> element.
func WithSVGTitle(t string) SVGOption { return func(s *SVG) { s.title = t } }

// SVG renders a sheet as a scalable preview in millimeter units. Text is
// placed with the same metrics as the PDF, so centering matches.
type SVG struct {
	spec       sheet.Spec
	background draw.Color
	title      string
	body       bytes.Buffer
}

// NewSVG starts a preview of one sheet.
func NewSVG(spec sheet.Spec, opts ...SVGOption) *SVG {
	s := &SVG{spec: spec, background: draw.Color{R: 255, G: 255, B: 255}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SVG) Rect(r sheet.Rect, st draw.Stroke) {
	fmt.Fprintf(&s.body, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.X, r.Y, r.W, r.H, st.Color.Hex(), st.Width)
}

func (s *SVG) Line(a, b draw.Point, st draw.Stroke) {
	fmt.Fprintf(&s.body, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		a.X, a.Y, b.X, b.Y, st.Color.Hex(), st.Width)
}

func (s *SVG) Text(p draw.Point, text string, f draw.Font) {
	weight := ""
	if f.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&s.body, `  <text x="%.3f" y="%.3f" font-family="%s" font-size="%.3f"%s fill="%s" xml:space="preserve">%s</text>`+"\n",
		p.X, p.Y, svgFontFamily, f.Size*PointsToMM, weight, f.Color.Hex(), escapeXML(text))
}

func (s *SVG) TextWidth(text string, f draw.Font) float64 {
	return fonts.Measure(text, f.Family, f.Bold, f.Size)
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w, h := s.spec.Width, s.spec.Height
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.1fmm" height="%.1fmm">`+"\n",
		w, h, w, h)
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(s.title))
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, s.background.Hex())
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
