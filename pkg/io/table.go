package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
)

// Table is a parsed batch table.
type Table struct {
	// Columns holds the field name of each column, "" for unrecognized ones.
	Columns []string
	// Unrecognized lists header captions that map to no field.
	Unrecognized []string
	Rows         []Row
}

// Row is one data row of a batch table.
type Row struct {
	// Line is the 1-based row number in the source (the header is line 1).
	Line int
	// Fields holds a value for every recognized column. Cells past the end
	// of a short row are empty strings.
	Fields map[string]string
}

// Record builds the row's label record. Company-block columns missing from
// the table are taken from footer.
func (r Row) Record(footer label.Footer) (label.Record, error) {
	values := make(map[string]string, len(r.Fields)+4)
	for k, v := range r.Fields {
		values[k] = v
	}
	footer.Fill(values)
	rec, err := label.FromMap(values)
	if err != nil {
		return label.Record{}, fmt.Errorf("row %d: %w", r.Line, err)
	}
	return rec, nil
}

var headerAliases = map[string]string{
	"product":          label.FieldProductName,
	"product_name":     label.FieldProductName,
	"chemical":         label.FieldProductName,
	"batch":            label.FieldBatchNo,
	"batch_number":     label.FieldBatchNo,
	"date_of_mfg":      label.FieldMfgDate,
	"mfg":              label.FieldMfgDate,
	"manufacture_date": label.FieldMfgDate,
	"re_test_date":     label.FieldRetestDate,
	"retest":           label.FieldRetestDate,
	"net_weight":       label.FieldNetWt,
	"weight":           label.FieldNetWt,
	"company":          label.FieldCompanyName,
	"address_line_1":   label.FieldAddressLine1,
	"address1":         label.FieldAddressLine1,
	"address_line_2":   label.FieldAddressLine2,
	"address2":         label.FieldAddressLine2,
	"e_mail":           label.FieldEmail,
}

// HeaderField maps a column caption to a label field name. Matching ignores
// case, surrounding space, a trailing colon or " *", and treats spaces,
// hyphens and dots alike: "Re-Test Date:" and "retest_date" both map to
// retest_date.
func HeaderField(caption string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(caption))
	n = strings.TrimSuffix(n, " *")
	n = strings.TrimSuffix(strings.TrimSpace(n), ":")
	n = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '/':
			return '_'
		}
		return r
	}, strings.TrimSpace(n))
	for strings.Contains(n, "__") {
		n = strings.ReplaceAll(n, "__", "_")
	}
	n = strings.Trim(n, "_")

	if label.IsField(n) {
		return n, true
	}
	f, ok := headerAliases[n]
	return f, ok
}

// newTable maps the header and collects non-blank data rows.
func newTable(rows [][]string) (*Table, error) {
	if len(rows) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"table must contain a header row and at least one data row")
	}

	t := &Table{Columns: make([]string, len(rows[0]))}
	seen := map[string]bool{}
	for i, h := range rows[0] {
		f, ok := HeaderField(h)
		if !ok {
			if strings.TrimSpace(h) != "" {
				t.Unrecognized = append(t.Unrecognized, h)
			}
			continue
		}
		if seen[f] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "column %q repeats field %s", h, f)
		}
		seen[f] = true
		t.Columns[i] = f
	}
	if len(seen) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"no column header names a label field (e.g. %s)", label.FieldProductName)
	}

	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		row := Row{Line: i + 2, Fields: make(map[string]string, len(seen))}
		for col, f := range t.Columns {
			if f == "" {
				continue
			}
			var v string
			if col < len(cells) {
				v = strings.TrimSpace(cells[col])
			}
			row.Fields[f] = v
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "table has no data rows")
	}
	return t, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ReadCSV parses a CSV batch table.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse csv")
	}
	return newTable(rows)
}

// ReadXLSX parses the first sheet of an XLSX workbook.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", sheet)
	}
	return newTable(rows)
}

// ReadTable parses a batch table in the given format (csv or xlsx).
func ReadTable(r io.Reader, format string) (*Table, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported table format %q", format)
	}
}

// ImportTable reads the batch table at path.
func ImportTable(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadTable(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
