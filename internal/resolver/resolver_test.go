package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBareSpecifier(t *testing.T) {
	assert.True(t, IsBareSpecifier("lodash"))
	assert.True(t, IsBareSpecifier("npm:left-pad"))
	assert.True(t, IsBareSpecifier("jsr:@std/path"))
	assert.False(t, IsBareSpecifier("./util"))
	assert.False(t, IsBareSpecifier("/abs/path"))
}

func TestResolveBareSpecifierReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Resolve("/src", "lodash"))
}

func TestResolveRelativeJoinsAndCleans(t *testing.T) {
	got := Resolve("/src/pkg", "../util/helpers")
	assert.Equal(t, filepath.Clean("/src/util/helpers"), got)
}

func TestExistsFindsExtensionVariant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helper.js")
	require.NoError(t, os.WriteFile(path, []byte("export {}"), 0o644))

	assert.True(t, Exists(filepath.Join(dir, "helper")))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
	assert.True(t, Exists(""))
}
