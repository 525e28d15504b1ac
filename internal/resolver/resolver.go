// Package resolver implements the module-path resolution stub named in
// SPEC_FULL.md §11.6: HQL never resolves another module's exports at
// compile time (every import/export form lowers structurally, spec §4.5),
// so this package only turns a relative import source into a filesystem
// path and checks whether that path exists on disk. `hqlc build` does not
// call it, and no warning about a missing import target is emitted.
// Deliberately stdlib-only — there is nothing here
// an HTTP client, a registry SDK, or a VCS library would improve; resolution
// never leaves the local filesystem.
package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// IsBareSpecifier reports whether source names a package-manager module
// (e.g. "react", "npm:lodash@4") rather than a relative/absolute file path.
func IsBareSpecifier(source string) bool {
	if strings.HasPrefix(source, "npm:") || strings.HasPrefix(source, "jsr:") {
		return true
	}
	return !strings.HasPrefix(source, ".") && !strings.HasPrefix(source, "/")
}

// Resolve returns the filesystem path source would read from if importerDir
// is the directory of the file containing the import, or "" if source is a
// bare specifier (left to the JS runtime's own resolution at run time).
func Resolve(importerDir, source string) string {
	if IsBareSpecifier(source) {
		return ""
	}
	return filepath.Clean(filepath.Join(importerDir, source))
}

// Exists reports whether Resolve's result (or any of its common JS/TS
// extensions) is present on disk; the empty path of a bare specifier counts
// as present. The spec never requires cross-module resolution (spec §4.5
// Non-goals).
func Exists(resolvedPath string) bool {
	if resolvedPath == "" {
		return true
	}
	candidates := []string{resolvedPath, resolvedPath + ".js", resolvedPath + ".mjs", resolvedPath + ".ts"}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
