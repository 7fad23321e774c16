// Package fonts provides text metrics for the PDF core fonts.
//
// Labels are set in Helvetica, which every PDF viewer ships, so nothing is
// embedded. Centering text still needs its width, and the SVG and JSON sinks
// must agree with the PDF sink on it. [Measure] answers from gofpdf's own
// core-font width tables through a single shared measuring document.
//
// Strings are translated to cp1252 before measuring and drawing, the encoding
// core fonts use; characters outside it are replaced.
package fonts

import (
	"strings"
	"sync"

	"github.com/phpdave11/gofpdf"
)

// Encoding is the code page core-font text is translated to.
const Encoding = "cp1252"

var (
	meterOnce sync.Once
	meterMu   sync.Mutex
	meter     *gofpdf.Fpdf
	translate func(string) string
)

func initMeter() {
	meterOnce.Do(func() {
		meter = gofpdf.New("P", "mm", "A4", "")
		translate = meter.UnicodeTranslatorFromDescriptor(Encoding)
	})
}

// Translate converts UTF-8 text to the core-font encoding.
func Translate(s string) string {
	initMeter()
	return translate(s)
}

// Translator returns the shared UTF-8 to cp1252 translation function.
func Translator() func(string) string {
	initMeter()
	return translate
}

// Measure returns the width in millimeters of s set in the given core font
// family at size points. Unknown families measure as Helvetica.
func Measure(s, family string, bold bool, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	initMeter()

	style := ""
	if bold {
		style = "B"
	}

	meterMu.Lock()
	defer meterMu.Unlock()
	meter.SetFont(coreFamily(family), style, size)
	return meter.GetStringWidth(translate(s))
}

func coreFamily(family string) string {
	switch strings.ToLower(family) {
	case "courier", "helvetica", "times":
		return family
	default:
		return "Helvetica"
	}
}
