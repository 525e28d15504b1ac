package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqlcompiler/hqlc/internal/printer"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadParsesPrinterAndAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := "printer:\n  style: compact\n  indentWidth: 4\n  tabs: true\nimportAliases:\n  lodash: \"./vendor/lodash.js\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "compact", c.Printer.Style)
	assert.Equal(t, 4, c.Printer.IndentWidth)
	assert.True(t, c.Printer.Tabs)
	assert.Equal(t, "./vendor/lodash.js", c.ImportAliases["lodash"])
}

func TestDiscoverWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("printer:\n  style: multiline\n"), 0o644))

	c, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, "multiline", c.Printer.Style)
}

func TestPrinterOptionsAppliesOverrides(t *testing.T) {
	c := Default()
	c.Printer.Style = "multiline"
	c.Printer.IndentWidth = 4
	c.Printer.Tabs = true

	opts := c.PrinterOptions()
	assert.Equal(t, printer.StyleMultiline, opts.Style)
	assert.Equal(t, 4, opts.IndentWidth)
	assert.False(t, opts.UseSpaces)
}

func TestResolveImportFallsBackToSource(t *testing.T) {
	c := Default()
	c.ImportAliases["react"] = "preact/compat"
	assert.Equal(t, "preact/compat", c.ResolveImport("react"))
	assert.Equal(t, "lodash", c.ResolveImport("lodash"))
}
