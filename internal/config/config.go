// Package config loads the optional .hqlc.yaml project file (SPEC_FULL.md
// §10.3): printer style/indent defaults and import-path aliases a project
// can pin so `hqlc build` doesn't need every flag repeated. Parsed with
// goccy/go-yaml, the YAML library already pulled in by the teacher's stack.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/hqlcompiler/hqlc/internal/printer"
)

// FileName is the project config file hqlc looks for in the input file's
// directory and each parent, the way the teacher's fmt command looks for
// .dwscriptrc.
const FileName = ".hqlc.yaml"

// Config is the on-disk shape of .hqlc.yaml.
type Config struct {
	Printer struct {
		Style       string `yaml:"style"`
		IndentWidth int    `yaml:"indentWidth"`
		Tabs        bool   `yaml:"tabs"`
	} `yaml:"printer"`
	ImportAliases map[string]string `yaml:"importAliases"`
}

// Default returns an empty config with the printer's own defaults applied.
func Default() *Config {
	c := &Config{}
	c.Printer.IndentWidth = 2
	c.Printer.Style = "detailed"
	c.ImportAliases = map[string]string{}
	return c
}

// Load reads and parses path. A missing file is not an error — it returns
// Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Discover walks upward from dir looking for FileName, returning Default()
// if none is found before reaching the filesystem root.
func Discover(dir string) (*Config, error) {
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// PrinterOptions translates the config's printer section into
// printer.Options, applied on top of printer.DefaultOptions().
func (c *Config) PrinterOptions() printer.Options {
	opts := printer.DefaultOptions()
	switch c.Printer.Style {
	case "compact":
		opts.Style = printer.StyleCompact
	case "multiline":
		opts.Style = printer.StyleMultiline
	default:
		opts.Style = printer.StyleDetailed
	}
	if c.Printer.IndentWidth > 0 {
		opts.IndentWidth = c.Printer.IndentWidth
	}
	opts.UseSpaces = !c.Printer.Tabs
	return opts
}

// ResolveImport applies a configured alias to a js-import/import source
// string, returning it unchanged if no alias matches.
func (c *Config) ResolveImport(source string) string {
	if alias, ok := c.ImportAliases[source]; ok {
		return alias
	}
	return source
}
