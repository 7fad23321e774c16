// Package cell draws the content of one label into its rectangle.
//
// A cell is split into three bands (see [sheet.Rect.Bands]):
//
//	+------------------------------------------+
//	|              PRODUCT NAME                |  header 25%
//	+------------------------------------------+
//	| BATCH NO:      ...      NET WT: ...      |
//	| DATE OF MFG:   ...                       |  body 45%
//	| RE-TEST DATE: ...       (WARNING)        |
//	+---------------------+--------------------+
//	|    COMPANY NAME     | address line 1     |  footer 30%
//	|                     | address line 2     |
//	|                     | email              |
//	+---------------------+--------------------+
//
// [Render] emits the primitives in a fixed order and every primitive carries
// its own stroke or font, so rendering a cell never depends on what was drawn
// before it.
//
// [sheet.Rect.Bands]: github.com/novaent/labelsheet/pkg/sheet.Rect.Bands
package cell

import (
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/render/draw"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// Body line prefixes. The padding aligns the values in the PDF core font.
const (
	PrefixBatch  = "BATCH NO:      "
	PrefixMfg    = "DATE OF MFG:   "
	PrefixRetest = "RE-TEST DATE: "
	PrefixNetWt  = "NET WT: "
)

// Render draws rec into r on c.
func Render(c draw.Canvas, r sheet.Rect, rec label.Record, m Metrics) {
	bands := r.Bands()
	border := draw.Stroke{Width: m.BorderWidth, Color: m.Ink}

	c.Rect(r, border)
	c.Line(draw.Pt(r.X, bands.Header.Bottom()), draw.Pt(r.Right(), bands.Header.Bottom()), border)
	c.Line(draw.Pt(r.X, bands.Footer.Y), draw.Pt(r.Right(), bands.Footer.Y), border)

	renderHeader(c, bands.Header, rec, m)
	renderBody(c, bands.Body, rec, m)
	renderFooter(c, bands.Footer, rec, m)
}

func renderHeader(c draw.Canvas, band sheet.Rect, rec label.Record, m Metrics) {
	f := helvetica(m.HeaderFontSize(band.W), true, m.Ink)
	centered(c, band, rec.ProductName, f, m)
}

func renderBody(c draw.Canvas, band sheet.Rect, rec label.Record, m Metrics) {
	regular := helvetica(m.BodySize, false, m.Ink)
	warning := helvetica(m.WarningSize, true, m.WarningColor)

	left := band.X + m.BodyPadding
	right := band.X + band.W*m.RightColumn
	y := band.Y + m.BodyBaseline()

	text(c, draw.Pt(left, y), PrefixBatch+rec.BatchNo, regular)
	text(c, draw.Pt(left, y+m.BodyLineSpacing), PrefixMfg+rec.MfgDate, regular)
	text(c, draw.Pt(left, y+2*m.BodyLineSpacing), PrefixRetest+rec.RetestDate, regular)

	text(c, draw.Pt(right, y), PrefixNetWt+rec.NetWt, regular)
	text(c, draw.Pt(right, y+2*m.BodyLineSpacing), rec.Warning, warning)
}

func renderFooter(c draw.Canvas, band sheet.Rect, rec label.Record, m Metrics) {
	company, address := band.SplitX(m.FooterSplit)

	c.Line(draw.Pt(address.X, band.Y), draw.Pt(address.X, band.Bottom()),
		draw.Stroke{Width: m.SplitWidth, Color: m.Ink})

	centered(c, company, rec.CompanyName, helvetica(m.CompanySize, true, m.Ink), m)

	small := helvetica(m.AddressSize, false, m.Ink)
	x := address.X + m.AddressInset
	y := band.Y + m.AddressBaseline()
	text(c, draw.Pt(x, y), rec.AddressLine1, small)
	text(c, draw.Pt(x, y+m.AddressLineHeight), rec.AddressLine2, small)
	text(c, draw.Pt(x, y+2*m.AddressLineHeight), rec.Email, small)
}

// centered draws s horizontally centered in band, on the band's optical midline.
func centered(c draw.Canvas, band sheet.Rect, s string, f draw.Font, m Metrics) {
	w := c.TextWidth(s, f)
	x := band.X + (band.W-w)/2
	y := band.Y + band.H/2 + f.Size*m.BaselineFactor
	text(c, draw.Pt(x, y), s, f)
}

// text skips empty runs so blank fields leave nothing in the output.
func text(c draw.Canvas, p draw.Point, s string, f draw.Font) {
	if s == "" {
		return
	}
	c.Text(p, s, f)
}

func helvetica(size float64, bold bool, color draw.Color) draw.Font {
	return draw.Font{Family: draw.Helvetica, Bold: bold, Size: size, Color: color}
}
