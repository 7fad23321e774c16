package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/observability"
	"github.com/novaent/labelsheet/pkg/render/cell"
	"github.com/novaent/labelsheet/pkg/render/draw"
	"github.com/novaent/labelsheet/pkg/sheet"
)

func sample() label.Record {
	return label.Sample(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
}

func assemble(t *testing.T, layout string, rec label.Record) (sheet.Plan, *draw.Recorder) {
	t.Helper()
	p, _, err := PlanLayout(Options{Layout: layout})
	if err != nil {
		t.Fatalf("PlanLayout(%q) error: %v", layout, err)
	}
	var rc draw.Recorder
	Assemble(&rc, p, rec, cell.DefaultMetrics())
	return p, &rc
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"pdf", false},
		{"svg", false},
		{"json", false},
		{"png", true},
		{"PDF", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" SVG "); err != nil || f != FormatSVG {
		t.Errorf("ParseFormat(SVG) = %q, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatPDF {
		t.Errorf("ParseFormat(\"\") = %q, %v", f, err)
	}
	if _, err := ParseFormat("png"); err == nil {
		t.Error("ParseFormat(png) should fail")
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options should validate: %v", err)
	}
	if opts.Layout != "2x8" || opts.Format != FormatPDF || opts.Metrics == nil || opts.Logger == nil {
		t.Errorf("defaults not applied: %+v", opts)
	}

	strict := Options{Layout: "A4", Strict: true}
	if err := strict.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("strict unknown layout error = %v, want INVALID_LAYOUT", err)
	}
}

// Scenario A: 3x6 with the sample record.
func TestAssemble3x6(t *testing.T) {
	p, rc := assemble(t, "3x6", sample())

	if p.Spec.Width != 18*25.4 || p.Spec.Height != 12*25.4 {
		t.Errorf("sheet = %.2f x %.2f, want 457.2 x 304.8", p.Spec.Width, p.Spec.Height)
	}
	if got := rc.Count(draw.OpRect); got != 18 {
		t.Errorf("bordered cells = %d, want 18", got)
	}

	var rects []sheet.Rect
	for _, op := range rc.Ops {
		if op.Kind == draw.OpRect {
			rects = append(rects, *op.Rect)
		}
	}
	if diff := cmp.Diff(p.Cells(), rects); diff != "" {
		t.Errorf("cell borders differ from plan (-want +got):\n%s", diff)
	}

	// Per cell: two horizontal dividers plus the footer split; then 34 mark segments.
	if got, want := rc.Count(draw.OpLine), 18*3+34; got != want {
		t.Errorf("lines = %d, want %d", got, want)
	}
	if got := rc.Count(draw.OpText); got != 18*10 {
		t.Errorf("texts = %d, want %d", got, 18*10)
	}
}

// Scenario B: 2x8.
func TestAssemble2x8(t *testing.T) {
	p, rc := assemble(t, "2x8", sample())

	if p.Columns() != 2 || p.Rows() != 8 {
		t.Errorf("grid = %dx%d, want 2x8", p.Columns(), p.Rows())
	}
	if p.Spec.Width != 12*25.4 || p.Spec.Height != 18*25.4 {
		t.Errorf("sheet = %.2f x %.2f", p.Spec.Width, p.Spec.Height)
	}
	if got := rc.Count(draw.OpRect); got != 16 {
		t.Errorf("cells = %d, want 16", got)
	}
	if got, want := rc.Count(draw.OpLine), 16*3+30; got != want {
		t.Errorf("lines = %d, want %d", got, want)
	}
}

func TestAssembleMarksLast(t *testing.T) {
	p, rc := assemble(t, "3x6", sample())
	tail := rc.Ops[len(rc.Ops)-34:]
	for i, op := range tail {
		if op.Kind != draw.OpLine || op.Stroke.Color != draw.Red {
			t.Fatalf("op %d of tail = %+v, want red mark", i, op)
		}
	}
	if first := tail[0]; first.From.X != p.GapCentersX()[0]-2 {
		t.Errorf("first mark starts at %+v", first.From)
	}
}

// Scenario C: blank warning.
func TestGenerateEmptyWarning(t *testing.T) {
	rec := sample()
	rec.Warning = ""

	data, err := Generate("3x6", rec)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}

	_, rc := assemble(t, "3x6", rec)
	for _, op := range rc.Ops {
		if op.Kind == draw.OpText && op.Font.Color == draw.Red {
			t.Fatalf("blank warning still drew red text %q", op.Text)
		}
	}
	if got := rc.Count(draw.OpText); got != 18*9 {
		t.Errorf("texts = %d, want %d", got, 18*9)
	}
}

// Scenario D: the header size follows the cell width.
func TestHeaderSizeFollowsCellWidth(t *testing.T) {
	narrow := sheet.Table{sheet.Layout3x6: {Width: 200, Height: 304.8, Columns: 3, Rows: 6}}
	tests := []struct {
		name  string
		opts  Options
		size  float64
		width func(sheet.Plan) bool
	}{
		{"wide cells", Options{Layout: "3x6"}, 20, func(p sheet.Plan) bool { return p.CellWidth > 80 }},
		{"narrow cells", Options{Layout: "3x6", Table: narrow}, 14, func(p sheet.Plan) bool { return p.CellWidth <= 80 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, err := PlanLayout(tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if !tt.width(p) {
				t.Fatalf("cell width %.2f on the wrong side of 80mm", p.CellWidth)
			}
			var rc draw.Recorder
			Assemble(&rc, p, sample(), cell.DefaultMetrics())
			for _, op := range rc.Ops {
				if op.Kind == draw.OpText && op.Text == "TRIETHYLAMINE" && op.Font.Size != tt.size {
					t.Fatalf("title size = %v, want %v", op.Font.Size, tt.size)
				}
			}
		})
	}
}

func TestAssembleIdempotent(t *testing.T) {
	for _, layout := range []string{"3x6", "2x8"} {
		_, a := assemble(t, layout, sample())
		_, b := assemble(t, layout, sample())
		if diff := cmp.Diff(a.Ops, b.Ops); diff != "" {
			t.Errorf("%s: second run differs:\n%s", layout, diff)
		}
	}
}

func TestGenerateFallback(t *testing.T) {
	for _, layout := range []string{"", "4x4", "landscape"} {
		p, fellBack, err := PlanLayout(Options{Layout: layout})
		if err != nil {
			t.Fatalf("PlanLayout(%q) error: %v", layout, err)
		}
		if p.Option != sheet.Layout2x8 {
			t.Errorf("PlanLayout(%q) = %s, want 2x8", layout, p.Option)
		}
		if layout != "" && !fellBack {
			t.Errorf("PlanLayout(%q) should report the fallback", layout)
		}
		if _, err := Generate(layout, sample()); err != nil {
			t.Errorf("Generate(%q) error: %v", layout, err)
		}
	}
}

func TestGenerateDegenerateGeometry(t *testing.T) {
	_, _, err := PlanLayout(Options{
		Layout: "3x6",
		Table:  sheet.Table{sheet.Layout3x6: {Width: 30, Height: 300, Columns: 3, Rows: 6}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("error = %v, want INVALID_GEOMETRY", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) add(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, s)
}

func (h *recordingHooks) OnPlan(_ context.Context, layout string, _ int, _ bool, _ error) {
	h.add("plan:" + layout)
}

func (h *recordingHooks) OnRenderStart(_ context.Context, format string, _ int) {
	h.add("render-start:" + format)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	h.add("render-done:" + format)
}

func (h *recordingHooks) OnWrite(_ context.Context, path string, _ int, _ time.Duration, err error) {
	if err != nil {
		h.add("write-failed")
		return
	}
	h.add("write:" + filepath.Base(path))
}

func TestRunnerRun(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	r := NewRunner(nil)
	res, err := r.Run(context.Background(), Options{Layout: "3x6", Format: FormatJSON, Strict: true}, sample())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Stats.Cells != 18 || res.Stats.Marks != 10+14 || res.Stats.Bytes != len(res.Data) {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.FellBack {
		t.Error("3x6 should not fall back")
	}

	var doc struct {
		Layout string            `json:"layout"`
		Cells  []sheet.Rect      `json:"cells"`
		Ops    []json.RawMessage `json:"ops"`
	}
	if err := json.Unmarshal(res.Data, &doc); err != nil {
		t.Fatalf("JSON output: %v", err)
	}
	if doc.Layout != "3x6" || len(doc.Cells) != 18 {
		t.Errorf("JSON plan = %s with %d cells", doc.Layout, len(doc.Cells))
	}
	if res.Stats.Ops == 0 || res.Stats.Ops != len(doc.Ops) {
		t.Errorf("Stats.Ops = %d, document has %d ops", res.Stats.Ops, len(doc.Ops))
	}

	want := []string{"plan:3x6", "render-start:json", "render-done:json"}
	if diff := cmp.Diff(want, hooks.events); diff != "" {
		t.Errorf("hook events (-want +got):\n%s", diff)
	}
}

func TestRunnerStrictRejectsUnknownLayout(t *testing.T) {
	_, err := NewRunner(nil).Run(context.Background(), Options{Layout: "A4", Strict: true}, sample())
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("error = %v, want INVALID_LAYOUT", err)
	}
}

func TestRunnerLenientFallsBack(t *testing.T) {
	res, err := NewRunner(nil).Run(context.Background(), Options{Layout: "A4"}, sample())
	if err != nil {
		t.Fatal(err)
	}
	if !res.FellBack || res.Plan.Option != sheet.Layout2x8 {
		t.Errorf("FellBack=%v Option=%s, want fallback to 2x8", res.FellBack, res.Plan.Option)
	}
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRunner(nil).Run(ctx, Options{}, sample()); err == nil {
		t.Error("Run() with canceled context should fail")
	}
}

func TestRunnerKeepsBlankCompanyFields(t *testing.T) {
	rec := sample()
	rec.CompanyName = ""
	rec.Email = ""

	res, err := NewRunner(nil).Run(context.Background(), Options{Format: FormatSVG}, rec)
	if err != nil {
		t.Fatal(err)
	}
	if res.Record != rec {
		t.Errorf("printed record = %+v, want %+v", res.Record, rec)
	}
	if bytes.Contains(res.Data, []byte(label.DefaultFooter().CompanyName)) {
		t.Error("blank company name should print nothing")
	}
}

func TestRunToFile(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "Label_101500.pdf")

	res, err := NewRunner(nil).RunToFile(context.Background(), Options{Layout: "2x8"}, sample(), path)
	if err != nil {
		t.Fatalf("RunToFile() error: %v", err)
	}
	if res.Path != path {
		t.Errorf("Path = %q", res.Path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, res.Data) {
		t.Error("file content differs from result data")
	}
	if hooks.events[len(hooks.events)-1] != "write:Label_101500.pdf" {
		t.Errorf("last hook event = %q", hooks.events[len(hooks.events)-1])
	}
}

func TestRunToFileUnwritable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.pdf")

	_, err := NewRunner(nil).RunToFile(context.Background(), Options{}, sample(), path)
	var oe *errors.OutputError
	if !errors.As(err, &oe) {
		t.Fatalf("error = %v, want *OutputError", err)
	}
	if oe.Path != path || !errors.Is(err, errors.ErrCodeOutput) {
		t.Errorf("OutputError = %+v", oe)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no document should exist after a failed write")
	}
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.pdf")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "sheet.pdf" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory = %v, want only sheet.pdf", names)
	}
	if data, _ := os.ReadFile(path); string(data) != "second" {
		t.Errorf("content = %q, want overwrite", data)
	}
}

func TestWriteFileInvalidPath(t *testing.T) {
	for _, path := range []string{"", "out/", "bad\x00name.pdf"} {
		if err := WriteFile(path, []byte("x")); !errors.Is(err, errors.ErrCodeInvalidPath) {
			t.Errorf("WriteFile(%q) error = %v, want INVALID_PATH", path, err)
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	at := time.Date(2025, 3, 9, 14, 25, 1, 0, time.UTC)
	if got := DefaultFilename(at, FormatPDF); got != "Label_142501.pdf" {
		t.Errorf("DefaultFilename = %q", got)
	}
	if got := DefaultFilename(at, ""); got != "Label_142501.pdf" {
		t.Errorf("DefaultFilename(empty format) = %q", got)
	}
	if ContentType(FormatSVG) != "image/svg+xml" || ContentType("x") != "application/octet-stream" {
		t.Error("ContentType is wrong")
	}
}
