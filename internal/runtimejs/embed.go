// Package runtimejs embeds the small JS helper library emitted code depends
// on at runtime (spec §5 "Runtime contract": the `get`/`getNumeric` pair).
// go:embed keeps the snippet next to the Go source it's versioned with
// instead of fetched or regenerated at build time.
package runtimejs

import _ "embed"

//go:embed runtime.js
var Source string
