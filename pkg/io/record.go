package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
)

// File formats understood by this package.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var extFormats = map[string]string{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
	".csv":  FormatCSV,
	".xlsx": FormatXLSX,
}

// FormatFromPath returns the file format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput,
		"unsupported file type %q (want .toml, .yaml, .yml, .json, .csv or .xlsx)", ext)
}

// ReadFields decodes a record file from r and returns the label fields it
// sets. Keys that are not label fields are dropped. Missing fields are simply
// absent from the result.
func ReadFields(r io.Reader, format string) (map[string]string, error) {
	raw := map[string]any{}
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
		}
	case FormatYAML:
		return readYAMLFields(r)
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported record format %q", format)
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		if !label.IsField(k) {
			continue
		}
		s, err := scalar(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "field %q", k)
		}
		fields[k] = s
	}
	return fields, nil
}

// scalar renders a decoded value as label text.
func scalar(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case time.Time:
		return v.Format(label.DateLayout), nil
	case map[string]any, []any, []map[string]any:
		return "", fmt.Errorf("must be a single value, got %T", v)
	default:
		return fmt.Sprint(v), nil
	}
}

// readYAMLFields keeps the source text of every scalar. Decoding into
// native values would turn 0123 into 83 and 1.50 into 1.5.
func readYAMLFields(r io.Reader) (map[string]string, error) {
	nodes := map[string]yaml.Node{}
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
	}

	fields := make(map[string]string, len(nodes))
	for k, n := range nodes {
		if !label.IsField(k) {
			continue
		}
		node := &n
		if node.Kind == yaml.AliasNode && node.Alias != nil {
			node = node.Alias
		}
		if node.Kind != yaml.ScalarNode {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"field %q: must be a single value", k)
		}
		if node.Tag == "!!null" {
			fields[k] = ""
			continue
		}
		fields[k] = node.Value
	}
	return fields, nil
}

// ReadRecord decodes a complete record from r. A field absent from the
// input is reported as *errors.MissingFieldError.
func ReadRecord(r io.Reader, format string) (label.Record, error) {
	fields, err := ReadFields(r, format)
	if err != nil {
		return label.Record{}, err
	}
	return label.FromMap(fields)
}

// ImportFields reads the label fields of the record file at path.
func ImportFields(path string) (map[string]string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if format == FormatCSV || format == FormatXLSX {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%s is a batch table, not a record file", filepath.Base(path))
	}

	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fields, err := ReadFields(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}

// ImportRecord reads a complete record from the file at path.
func ImportRecord(path string) (label.Record, error) {
	fields, err := ImportFields(path)
	if err != nil {
		return label.Record{}, err
	}
	rec, err := label.FromMap(fields)
	if err != nil {
		return label.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
