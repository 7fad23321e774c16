package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
)

// WriteRecord encodes rec to w as a TOML, YAML or JSON record file.
// The output can be read back with [ReadRecord].
func WriteRecord(w io.Writer, rec label.Record, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(rec)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unsupported record format %q", format)
	}
}

// ExportRecord writes rec to path, picking the format from the extension.
func ExportRecord(rec label.Record, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteRecord(&buf, rec, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &errors.OutputError{Path: path, Err: err}
	}
	return nil
}
