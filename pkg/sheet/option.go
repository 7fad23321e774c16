package sheet

import (
	"strings"

	"github.com/novaent/labelsheet/pkg/errors"
)

// Option selects one of the predefined sheet configurations.
type Option string

const (
	Layout3x6 Option = "3x6" // landscape, 3 columns x 6 rows
	Layout2x8 Option = "2x8" // portrait, 2 columns x 8 rows
)

// DefaultOption is used when no layout is given, and is the fallback for
// unrecognized values in [Resolve].
const DefaultOption = Layout2x8

// MMPerInch converts the sheet's inch dimensions to millimeters.
const MMPerInch = 25.4

// Options lists every supported layout in display order.
func Options() []Option {
	return []Option{Layout3x6, Layout2x8}
}

// Valid reports whether o is one of the supported layouts.
func (o Option) Valid() bool {
	return o == Layout3x6 || o == Layout2x8
}

func (o Option) String() string { return string(o) }

// ParseOption converts user input into an Option. Surrounding whitespace is
// ignored and "X" is accepted for "x". Anything else is an INVALID_LAYOUT error.
func ParseOption(s string) (Option, error) {
	o := Option(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", errors.New(errors.ErrCodeInvalidLayout,
			"unknown layout %q (must be one of: 3x6, 2x8)", s)
	}
	return o, nil
}

// Resolve maps s to an Option without failing. Only the exact names "3x6"
// and "2x8" are recognized; anything else, including "3X6" or " 3x6",
// falls back to [DefaultOption]. The second result is false when the
// fallback was taken.
func Resolve(s string) (Option, bool) {
	if o := Option(s); o.Valid() {
		return o, true
	}
	return DefaultOption, false
}

// Spec is the physical size and grid shape of one sheet configuration.
type Spec struct {
	Width   float64 `json:"width" toml:"width"`
	Height  float64 `json:"height" toml:"height"`
	Columns int     `json:"columns" toml:"columns"`
	Rows    int     `json:"rows" toml:"rows"`
}

// Landscape reports whether the sheet is wider than it is tall.
func (s Spec) Landscape() bool { return s.Width > s.Height }

// Table maps each layout option to its sheet configuration.
type Table map[Option]Spec

// DefaultTable returns the two industrial sheet configurations.
func DefaultTable() Table {
	short := 12 * MMPerInch
	long := 18 * MMPerInch
	return Table{
		Layout3x6: {Width: long, Height: short, Columns: 3, Rows: 6},
		Layout2x8: {Width: short, Height: long, Columns: 2, Rows: 8},
	}
}
