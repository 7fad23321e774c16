// Package io reads label records and batch tables from files.
//
// # Record Files
//
// A record file holds the ten label fields keyed by name. TOML, YAML and
// JSON are accepted; the format is picked from the file extension:
//
//	product_name  = "TRIETHYLAMINE"
//	batch_no      = "1113/2526"
//	mfg_date      = "09/03/2025"
//	retest_date   = "11/11/2026"
//	net_wt        = "150 KG"
//	warning       = "CORROSIVE & FLAMMABLE"
//	company_name  = "M/S. NOVA ENTERPRISES"
//	address_line1 = "Plot no. F-39, MIDC Shiroli, Kolhapur-416 122"
//	address_line2 = "Ph.: +91-9922996051"
//	email         = "e-mail: sales@novaent.in"
//
// Use [ImportRecord] for a path or [ReadRecord] for any io.Reader. Callers
// that want to combine a file with other sources (flags, configured footer
// defaults) use [ReadFields] and build the record with [label.FromMap].
//
// YAML scalars are taken exactly as written, so batch_no: 0123 stays "0123".
// In TOML and JSON, values that are not strings (numbers, booleans, TOML
// dates) are printed with their natural text form. Tables and arrays are
// rejected.
//
// # Batch Tables
//
// A batch table is a CSV file or the first sheet of an XLSX workbook. The
// first row is a header; each following non-blank row is one record. Headers
// may be field names or the captions printed on the label ("Batch No",
// "Date of Mfg", "Re-Test Date", ...); see [HeaderField]. Unknown columns are
// reported in [Table.Unrecognized] and otherwise ignored.
//
//	t, err := io.ImportTable("drums.xlsx")
//	for _, row := range t.Rows {
//	    rec, err := row.Record(footer)
//	    ...
//	}
//
// # Export
//
// [WriteRecord] and [ExportRecord] write a record in any of the record file
// formats, which makes a quick template for hand editing:
//
//	err := io.ExportRecord(label.Sample(time.Now()), "label.toml")
package io
