// Package label defines the content of one drum label.
//
// A [Record] carries the ten text fields printed on every cell of a sheet.
// All fields are plain strings; empty strings are legal and render as
// blank text. A record is immutable once handed to the renderer.
//
// Records come from many places (command-line flags, TOML/YAML/JSON files,
// spreadsheet rows, HTTP request bodies). Sources that are keyed by field
// name go through [FromMap], which requires every field to be present:
//
//	rec, err := label.FromMap(values)
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    // report which field was absent
//	}
package label

import (
	"time"

	"github.com/novaent/labelsheet/pkg/errors"
)

// Field names, in print order. These are the keys used by every record
// source (maps, files, spreadsheet headers, JSON bodies).
const (
	FieldProductName  = "product_name"
	FieldBatchNo      = "batch_no"
	FieldMfgDate      = "mfg_date"
	FieldRetestDate   = "retest_date"
	FieldNetWt        = "net_wt"
	FieldWarning      = "warning"
	FieldCompanyName  = "company_name"
	FieldAddressLine1 = "address_line1"
	FieldAddressLine2 = "address_line2"
	FieldEmail        = "email"
)

// DateLayout is the dd/mm/yyyy format used for manufacture and re-test dates.
const DateLayout = "02/01/2006"

// Record is the content printed on a single label cell.
type Record struct {
	ProductName  string `json:"product_name" toml:"product_name" yaml:"product_name"`
	BatchNo      string `json:"batch_no" toml:"batch_no" yaml:"batch_no"`
	MfgDate      string `json:"mfg_date" toml:"mfg_date" yaml:"mfg_date"`
	RetestDate   string `json:"retest_date" toml:"retest_date" yaml:"retest_date"`
	NetWt        string `json:"net_wt" toml:"net_wt" yaml:"net_wt"`
	Warning      string `json:"warning" toml:"warning" yaml:"warning"`
	CompanyName  string `json:"company_name" toml:"company_name" yaml:"company_name"`
	AddressLine1 string `json:"address_line1" toml:"address_line1" yaml:"address_line1"`
	AddressLine2 string `json:"address_line2" toml:"address_line2" yaml:"address_line2"`
	Email        string `json:"email" toml:"email" yaml:"email"`
}

// Fields returns every field name in print order.
func Fields() []string {
	return []string{
		FieldProductName,
		FieldBatchNo,
		FieldMfgDate,
		FieldRetestDate,
		FieldNetWt,
		FieldWarning,
		FieldCompanyName,
		FieldAddressLine1,
		FieldAddressLine2,
		FieldEmail,
	}
}

// IsField reports whether name is one of the record's field names.
func IsField(name string) bool {
	_, ok := fieldRefs(&Record{})[name]
	return ok
}

func fieldRefs(r *Record) map[string]*string {
	return map[string]*string{
		FieldProductName:  &r.ProductName,
		FieldBatchNo:      &r.BatchNo,
		FieldMfgDate:      &r.MfgDate,
		FieldRetestDate:   &r.RetestDate,
		FieldNetWt:        &r.NetWt,
		FieldWarning:      &r.Warning,
		FieldCompanyName:  &r.CompanyName,
		FieldAddressLine1: &r.AddressLine1,
		FieldAddressLine2: &r.AddressLine2,
		FieldEmail:        &r.Email,
	}
}

// Get returns the value of the named field.
func (r Record) Get(name string) (string, bool) {
	p, ok := fieldRefs(&r)[name]
	if !ok {
		return "", false
	}
	return *p, true
}

// Set assigns the named field. It returns an INVALID_INPUT error for
// unknown names.
func (r *Record) Set(name, value string) error {
	p, ok := fieldRefs(r)[name]
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown label field %q", name)
	}
	*p = value
	return nil
}

// ToMap returns the record keyed by field name.
func (r Record) ToMap() map[string]string {
	m := make(map[string]string, len(Fields()))
	for name, p := range fieldRefs(&r) {
		m[name] = *p
	}
	return m
}

// FromMap builds a record from values keyed by field name. Every field must
// be present (an empty value is fine); the first absent field in print order
// is reported as a [errors.MissingFieldError]. Unknown keys are ignored.
func FromMap(values map[string]string) (Record, error) {
	var r Record
	refs := fieldRefs(&r)
	for _, name := range Fields() {
		v, ok := values[name]
		if !ok {
			return Record{}, &errors.MissingFieldError{Field: name}
		}
		*refs[name] = v
	}
	return r, nil
}

// Merge returns r with every empty field taken from fallback.
func (r Record) Merge(fallback Record) Record {
	out := r
	dst := fieldRefs(&out)
	src := fieldRefs(&fallback)
	for name, p := range dst {
		if *p == "" {
			*p = *src[name]
		}
	}
	return out
}

// Sample returns the record the interactive form starts from: a
// triethylamine drum manufactured on now.
func Sample(now time.Time) Record {
	r := Record{
		ProductName: "TRIETHYLAMINE",
		BatchNo:     "1113/2526",
		MfgDate:     now.Format(DateLayout),
		RetestDate:  "11/11/2026",
		NetWt:       "150 KGS",
		Warning:     "(FOR INDUSTRIAL USE ONLY)",
	}
	return WithFooter(r, DefaultFooter())
}
