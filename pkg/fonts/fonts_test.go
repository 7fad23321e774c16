package fonts

import (
	"math"
	"sync"
	"testing"
)

func TestMeasure(t *testing.T) {
	// Helvetica "H" is 722/1000 em; 10pt = 10*25.4/72 mm per em.
	want := 0.722 * 10 * 25.4 / 72
	if got := Measure("H", "Helvetica", false, 10); math.Abs(got-want) > 1e-6 {
		t.Errorf("Measure(H) = %.6f, want %.6f", got, want)
	}

	if Measure("", "Helvetica", false, 10) != 0 {
		t.Error("empty string should measure 0")
	}
	if Measure("abc", "Helvetica", false, 0) != 0 {
		t.Error("zero size should measure 0")
	}
	if Measure("abc", "Wingdings", false, 10) != Measure("abc", "Helvetica", false, 10) {
		t.Error("unknown family should fall back to Helvetica")
	}
	if Measure("abc", "Helvetica", true, 10) <= Measure("abc", "Helvetica", false, 10) {
		t.Error("bold should be wider")
	}
}

func TestMeasureConcurrent(t *testing.T) {
	want := Measure("NET WT: 150 KGS", "Helvetica", false, 10)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(bold bool) {
			defer wg.Done()
			Measure("M/S. NOVA ENTERPRISES", "Helvetica", bold, 14)
			if got := Measure("NET WT: 150 KGS", "Helvetica", false, 10); got != want {
				t.Errorf("concurrent Measure = %v, want %v", got, want)
			}
		}(i%2 == 0)
	}
	wg.Wait()
}

func TestTranslate(t *testing.T) {
	if got := Translate("plain ASCII"); got != "plain ASCII" {
		t.Errorf("Translate(ASCII) = %q", got)
	}
	// U+00E9 is 0xE9 in cp1252.
	if got := Translate("é"); got != "\xe9" {
		t.Errorf("Translate(e-acute) = %q, want \\xe9", got)
	}
	if Translator()("x") != "x" {
		t.Error("Translator() should match Translate")
	}
}
