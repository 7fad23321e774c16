package cell

import "github.com/novaent/labelsheet/pkg/render/draw"

// Metrics holds every typographic and stroke constant of a label cell.
// Lengths are millimeters, font sizes points, fractions relative to the cell width.
//
// A zero field means "not set": [Metrics.Merge] skips it, so no metric can be
// overridden to zero. The two baseline offsets are derived from their font
// size unless set explicitly.
type Metrics struct {
	BorderWidth float64 `toml:"border_width" json:"border_width"`
	SplitWidth  float64 `toml:"split_width" json:"split_width"`

	TitleSizeLarge float64 `toml:"title_size_large" json:"title_size_large"`
	TitleSizeSmall float64 `toml:"title_size_small" json:"title_size_small"`
	// Cells wider than TitleWidthMin get the large title.
	TitleWidthMin float64 `toml:"title_width_min" json:"title_width_min"`
	// A centered baseline sits BaselineFactor*size below the band's midline.
	BaselineFactor float64 `toml:"baseline_factor" json:"baseline_factor"`

	BodySize        float64 `toml:"body_size" json:"body_size"`
	BodyPadding     float64 `toml:"body_padding" json:"body_padding"`
	BodyLineSpacing float64 `toml:"body_line_spacing" json:"body_line_spacing"`
	RightColumn     float64 `toml:"right_column" json:"right_column"`
	WarningSize     float64 `toml:"warning_size" json:"warning_size"`

	FooterSplit       float64 `toml:"footer_split" json:"footer_split"`
	CompanySize       float64 `toml:"company_size" json:"company_size"`
	AddressSize       float64 `toml:"address_size" json:"address_size"`
	AddressInset      float64 `toml:"address_inset" json:"address_inset"`
	AddressLineHeight float64 `toml:"address_line_height" json:"address_line_height"`

	// First-line offsets below the header and footer dividers. Zero derives
	// them as BodySize-4 and AddressSize-3.
	BodyBaselineOffset    float64 `toml:"body_baseline_offset,omitempty" json:"body_baseline_offset,omitempty"`
	AddressBaselineOffset float64 `toml:"address_baseline_offset,omitempty" json:"address_baseline_offset,omitempty"`

	Ink          draw.Color `toml:"-" json:"-"`
	WarningColor draw.Color `toml:"-" json:"-"`
}

// DefaultMetrics returns the production label design.
func DefaultMetrics() Metrics {
	return Metrics{
		BorderWidth: 0.3,
		SplitWidth:  0.2,

		TitleSizeLarge: 20,
		TitleSizeSmall: 14,
		TitleWidthMin:  80,
		BaselineFactor: 0.15,

		BodySize:        10,
		BodyPadding:     5,
		BodyLineSpacing: 5,
		RightColumn:     0.55,
		WarningSize:     9,

		FooterSplit:       0.5,
		CompanySize:       14,
		AddressSize:       7,
		AddressInset:      3,
		AddressLineHeight: 3.5,

		Ink:          draw.Black,
		WarningColor: draw.Red,
	}
}

// Merge returns m with every non-zero numeric field of o applied on top.
func (m Metrics) Merge(o Metrics) Metrics {
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&m.BorderWidth, o.BorderWidth)
	set(&m.SplitWidth, o.SplitWidth)
	set(&m.TitleSizeLarge, o.TitleSizeLarge)
	set(&m.TitleSizeSmall, o.TitleSizeSmall)
	set(&m.TitleWidthMin, o.TitleWidthMin)
	set(&m.BaselineFactor, o.BaselineFactor)
	set(&m.BodySize, o.BodySize)
	set(&m.BodyPadding, o.BodyPadding)
	set(&m.BodyLineSpacing, o.BodyLineSpacing)
	set(&m.BodyBaselineOffset, o.BodyBaselineOffset)
	set(&m.RightColumn, o.RightColumn)
	set(&m.WarningSize, o.WarningSize)
	set(&m.FooterSplit, o.FooterSplit)
	set(&m.CompanySize, o.CompanySize)
	set(&m.AddressSize, o.AddressSize)
	set(&m.AddressInset, o.AddressInset)
	set(&m.AddressBaselineOffset, o.AddressBaselineOffset)
	set(&m.AddressLineHeight, o.AddressLineHeight)
	return m
}

// BodyBaseline returns the offset of the first body line below the header
// divider.
func (m Metrics) BodyBaseline() float64 {
	if m.BodyBaselineOffset != 0 {
		return m.BodyBaselineOffset
	}
	return m.BodySize - 4
}

// AddressBaseline returns the offset of the first address line below the
// footer divider.
func (m Metrics) AddressBaseline() float64 {
	if m.AddressBaselineOffset != 0 {
		return m.AddressBaselineOffset
	}
	return m.AddressSize - 3
}

// HeaderFontSize returns the product-name size for a cell of width w.
func (m Metrics) HeaderFontSize(w float64) float64 {
	if w > m.TitleWidthMin {
		return m.TitleSizeLarge
	}
	return m.TitleSizeSmall
}

// HeaderFontSize is [Metrics.HeaderFontSize] with the default metrics.
func HeaderFontSize(w float64) float64 {
	return DefaultMetrics().HeaderFontSize(w)
}
