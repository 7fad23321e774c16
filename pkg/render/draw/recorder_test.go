package draw

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/novaent/labelsheet/pkg/sheet"
)

func TestRecorderReplay(t *testing.T) {
	var src Recorder
	src.Rect(sheet.Rect{X: 1, Y: 2, W: 3, H: 4}, Stroke{Width: 0.3, Color: Black})
	src.Line(Pt(0, 0), Pt(5, 5), Stroke{Width: 0.2, Color: Red})
	src.Text(Pt(1, 1), "hello", Font{Family: Helvetica, Size: 10, Color: Black})

	var dst Recorder
	src.Replay(&dst)

	if diff := cmp.Diff(src.Ops, dst.Ops); diff != "" {
		t.Errorf("Replay mismatch (-src +dst):\n%s", diff)
	}
	if src.Count(OpLine) != 1 || src.Count(OpRect) != 1 || src.Count(OpText) != 1 {
		t.Errorf("Count() wrong: %+v", src.Ops)
	}
	if got := src.Texts(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("Texts() = %v", got)
	}
}

func TestTee(t *testing.T) {
	var a, b Recorder
	tee := Tee{&a, &b}
	tee.Line(Pt(0, 0), Pt(1, 0), Stroke{Width: 1})
	tee.Text(Pt(0, 0), "x", Font{Family: Helvetica, Size: 10})

	if len(a.Ops) != 2 || len(b.Ops) != 2 {
		t.Errorf("ops = %d, %d, want 2 each", len(a.Ops), len(b.Ops))
	}
	if tee.TextWidth("x", Font{Family: Helvetica, Size: 10}) <= 0 {
		t.Error("Tee.TextWidth should measure with the first target")
	}
	if (Tee{}).TextWidth("x", Font{Size: 10}) != 0 {
		t.Error("empty Tee should measure 0")
	}
}

func TestRecorderTextWidth(t *testing.T) {
	var r Recorder
	regular := Font{Family: Helvetica, Size: 10}
	bold := Font{Family: Helvetica, Bold: true, Size: 10}

	w := r.TextWidth("TRIETHYLAMINE", regular)
	if w <= 0 {
		t.Fatalf("TextWidth = %v, want > 0", w)
	}
	if r.TextWidth("TRIETHYLAMINE", bold) <= w {
		t.Error("bold text should be wider than regular")
	}
	big := Font{Family: Helvetica, Size: 20}
	if got := r.TextWidth("TRIETHYLAMINE", big); got < 1.99*w || got > 2.01*w {
		t.Errorf("width should scale with size: %v vs %v", got, w)
	}
	if r.TextWidth("", regular) != 0 {
		t.Error("empty text should have zero width")
	}
}

func TestColorHex(t *testing.T) {
	if Red.Hex() != "#ff0000" || Black.Hex() != "#000000" {
		t.Errorf("Hex() = %s, %s", Red.Hex(), Black.Hex())
	}
}
