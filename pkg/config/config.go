// Package config loads the labelsheet configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/labelsheet/config.toml
// (falling back to ~/.config/labelsheet/config.toml). Every key is optional:
//
//	layout  = "3x6"
//	format  = "pdf"
//	out_dir = "/srv/labels"
//	cache_dir = "/var/cache/labelsheet"
//
//	[footer]
//	company_name  = "M/S. NOVA ENTERPRISES"
//	address_line1 = "Plot no. F-39, MIDC Shiroli, Kolhapur-416 122"
//	address_line2 = "Ph.: +91-9922996051"
//	email         = "e-mail: sales@novaent.in"
//
//	[metrics]
//	title_size_large = 22
//
//	[sheets.3x6]
//	width   = 457.2
//	height  = 304.8
//	columns = 3
//	rows    = 6
//
// Footer values fill the company block of records that leave it empty.
// Metric and sheet entries override the built-in design field by field.
// Command-line flags take precedence over the file.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/pipeline"
	"github.com/novaent/labelsheet/pkg/render/cell"
	"github.com/novaent/labelsheet/pkg/sheet"
)

const (
	// AppName names the configuration directory.
	AppName = "labelsheet"
	// FileName is the configuration file inside [Dir].
	FileName = "config.toml"
)

// Config is the decoded configuration file.
type Config struct {
	Layout  string                `toml:"layout,omitempty"`
	Format  string                `toml:"format,omitempty"`
	OutDir  string                `toml:"out_dir,omitempty"`
	Footer  label.Footer          `toml:"footer"`
	Metrics cell.Metrics          `toml:"metrics,omitempty"`
	Sheets  map[string]sheet.Spec `toml:"sheets,omitempty"`

	// CacheDir enables the server's document cache when set.
	CacheDir string `toml:"cache_dir,omitempty"`

	// Path is the file the configuration was read from, "" for defaults.
	Path string `toml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Layout: sheet.DefaultOption.String(),
		Format: pipeline.DefaultFormat,
		Footer: label.DefaultFooter(),
	}
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultPath returns the configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the configuration at path. With an empty path the default
// location is used, and a missing file there yields [Default]. An explicit
// path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInvalidInput
		}
		return nil, errors.Wrap(code, err, "config %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes configuration from TOML text on top of [Default].
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks layout, format and sheet overrides.
func (c *Config) Validate() error {
	if c.Layout != "" {
		if _, err := sheet.ParseOption(c.Layout); err != nil {
			return err
		}
	}
	if c.Format != "" {
		if err := pipeline.ValidateFormat(c.Format); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(c.Sheets))
	for name := range c.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		opt, err := sheet.ParseOption(name)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "[sheets.%s]", name)
		}
		if _, err := sheet.New(opt, c.Table()); err != nil {
			return err
		}
	}
	return nil
}

// Table returns the built-in sheet table with configured overrides applied.
// Zero fields of an override keep the built-in value.
func (c *Config) Table() sheet.Table {
	t := sheet.DefaultTable()
	for name, o := range c.Sheets {
		opt, err := sheet.ParseOption(name)
		if err != nil {
			continue
		}
		s := t[opt]
		if o.Width != 0 {
			s.Width = o.Width
		}
		if o.Height != 0 {
			s.Height = o.Height
		}
		if o.Columns != 0 {
			s.Columns = o.Columns
		}
		if o.Rows != 0 {
			s.Rows = o.Rows
		}
		t[opt] = s
	}
	return t
}

// CellMetrics returns the default cell design with configured overrides.
func (c *Config) CellMetrics() cell.Metrics {
	return cell.DefaultMetrics().Merge(c.Metrics)
}

// Options returns pipeline options seeded from the configuration.
func (c *Config) Options() pipeline.Options {
	m := c.CellMetrics()
	return pipeline.Options{
		Layout:  c.Layout,
		Format:  c.Format,
		Metrics: &m,
		Table:   c.Table(),
	}
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &errors.OutputError{Path: path, Err: err}
	}
	return pipeline.WriteFile(path, data)
}
