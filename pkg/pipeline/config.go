package pipeline

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tidyorg/orgchart/pkg/errors"
)

// ConfigFilename is the name of the optional per-chart configuration file.
// It is looked up in the directory of the source document.
const ConfigFilename = "orgchart.toml"

// FileConfig holds layout settings read from an orgchart.toml file.
// Pointer fields distinguish "not set" from an explicit zero, so the file
// only overrides the options it actually mentions.
type FileConfig struct {
	NodeSize *float64 `toml:"node_size"`
	Margin   *float64 `toml:"margin"`
	FontSize *float64 `toml:"font_size"`
	Offset   *float64 `toml:"offset"`
	Scale    *float64 `toml:"scale"`
	Style    *string  `toml:"style"`
	Newline  *bool    `toml:"newline"`
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read config file %s", path)
	}
	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}
	return &fc, nil
}

// FindConfig looks for an orgchart.toml next to the source document.
// It returns the empty string when no config file exists.
func FindConfig(source string) string {
	path := filepath.Join(filepath.Dir(source), ConfigFilename)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}

// Apply copies the settings present in the file onto opts. Options already
// set on the command line keep their values; only fields the caller left at
// zero are filled in.
func (fc *FileConfig) Apply(opts *Options) {
	if fc.NodeSize != nil && opts.Layout.NodeSize == 0 {
		opts.Layout.NodeSize = *fc.NodeSize
	}
	if fc.Margin != nil && opts.Layout.Margin == 0 {
		opts.Layout.Margin = *fc.Margin
	}
	if fc.FontSize != nil && opts.Layout.FontSize == 0 {
		opts.Layout.FontSize = *fc.FontSize
	}
	if fc.Offset != nil && opts.Layout.Offset == 0 {
		opts.Layout.Offset = *fc.Offset
	}
	if fc.Scale != nil && opts.Layout.Scale == 0 {
		opts.Layout.Scale = *fc.Scale
	}
	if fc.Style != nil && opts.Layout.CStyle == "" {
		opts.Layout.CStyle = *fc.Style
	}
	if fc.Newline != nil && !opts.Newline {
		opts.Newline = *fc.Newline
	}
}
