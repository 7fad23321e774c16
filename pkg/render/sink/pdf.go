package sink

import (
	"bytes"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/novaent/labelsheet/pkg/fonts"
	"github.com/novaent/labelsheet/pkg/render/draw"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// Producer is written into document metadata.
const Producer = "labelsheet"

// PDFOption configures a [PDF] document.
type PDFOption func(*pdfConfig)

type pdfConfig struct {
	title     string
	author    string
	createdAt time.Time
	compress  bool
}

// WithPDFTitle sets the document title metadata.
func WithPDFTitle(s string) PDFOption { return func(c *pdfConfig) { c.title = s } }

// WithPDFAuthor sets the document author metadata.
func WithPDFAuthor(s string) PDFOption { return func(c *pdfConfig) { c.author = s } }

// WithPDFCreatedAt pins the creation and modification dates. Two documents
// with the same content and date are byte-identical.
func WithPDFCreatedAt(t time.Time) PDFOption { return func(c *pdfConfig) { c.createdAt = t } }

// WithPDFCompression toggles stream compression (on by default).
func WithPDFCompression(on bool) PDFOption { return func(c *pdfConfig) { c.compress = on } }

// PDF is a single-page document exactly the size of one sheet, with automatic
// page breaks disabled. It implements [draw.Canvas].
type PDF struct {
	doc  *gofpdf.Fpdf
	tr   func(string) string
	out  []byte
	done bool
}

// NewPDF opens a document with one page of the given sheet size.
func NewPDF(spec sheet.Spec, opts ...PDFOption) *PDF {
	cfg := pdfConfig{compress: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: spec.Width, Ht: spec.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(cfg.compress)
	doc.SetCatalogSort(true)
	doc.SetProducer(Producer, false)
	if cfg.title != "" {
		doc.SetTitle(cfg.title, true)
	}
	if cfg.author != "" {
		doc.SetAuthor(cfg.author, true)
	}
	if !cfg.createdAt.IsZero() {
		doc.SetCreationDate(cfg.createdAt)
		doc.SetModificationDate(cfg.createdAt)
	}
	doc.AddPage()

	return &PDF{doc: doc, tr: fonts.Translator()}
}

func (p *PDF) stroke(s draw.Stroke) {
	p.doc.SetLineWidth(s.Width)
	p.doc.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
}

func (p *PDF) Rect(r sheet.Rect, s draw.Stroke) {
	p.stroke(s)
	p.doc.Rect(r.X, r.Y, r.W, r.H, "D")
}

func (p *PDF) Line(a, b draw.Point, s draw.Stroke) {
	p.stroke(s)
	p.doc.Line(a.X, a.Y, b.X, b.Y)
}

func (p *PDF) Text(at draw.Point, s string, f draw.Font) {
	p.doc.SetFont(f.Family, f.Style(), f.Size)
	p.doc.SetTextColor(int(f.Color.R), int(f.Color.G), int(f.Color.B))
	p.doc.Text(at.X, at.Y, p.tr(s))
}

func (p *PDF) TextWidth(s string, f draw.Font) float64 {
	return fonts.Measure(s, f.Family, f.Bold, f.Size)
}

// Bytes finalizes the document and returns it. Later calls return the same
// bytes; drawing after Bytes has no effect on them.
func (p *PDF) Bytes() ([]byte, error) {
	if p.done {
		return p.out, p.doc.Error()
	}
	p.done = true
	if err := p.doc.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := p.doc.Output(&buf); err != nil {
		return nil, err
	}
	p.out = buf.Bytes()
	return p.out, nil
}
