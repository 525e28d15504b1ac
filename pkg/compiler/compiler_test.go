package compiler

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// TestMain lets go-snaps prune obsolete snapshots after the full run
// (the teacher's fixture_test.go relies on the same cleanup hook).
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func compileOK(t *testing.T, name, source string) string {
	t.Helper()
	res, err := New().Compile(source, DefaultOptions())
	require.NoError(t, err, "compiling %s", name)
	return res.JS
}

func TestCompileSnapshots(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{
			name:   "literals_and_let",
			source: `(let (x 1 y "two" z true) (vector x y z))`,
		},
		{
			name:   "if_expression",
			source: `(fn describe (n) (if (> n 0) "positive" "non-positive"))`,
		},
		{
			name:   "fx_typed_function",
			source: `(fx add (a: Int b: Int = 1) (-> Int) (+ a b))`,
		},
		{
			name:   "class_declaration",
			source: `(class Point (var x) (var y) (constructor (x y) (set! this.x x) (set! this.y y)))`,
		},
		{
			name:   "enum_simple",
			source: `(enum Color (case Red) (case Green) (case Blue))`,
		},
		{
			name:   "enum_with_associated_values",
			source: `(enum Shape (case Circle radius: Double) (case Square))`,
		},
		{
			name:   "loop_recur",
			source: `(fn countdown (n) (loop (i n) (if (> i 0) (recur (- i 1)) (return i))))`,
		},
		{
			name:   "js_import_and_export",
			source: `(import [readFile] from "fs") (export (fn add (a b) (+ a b)))`,
		},
		{
			name:   "dot_property_sugar_method_call",
			source: `(fn run (req) (req.headers.get "content-type"))`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			js := compileOK(t, tc.name, tc.source)
			snaps.MatchSnapshot(t, js)
		})
	}
}

func TestCompileWithRuntimePrependsHelpers(t *testing.T) {
	opts := DefaultOptions()
	opts.WithRuntime = true
	res, err := New().Compile(`(fn noop () (return 1))`, opts)
	require.NoError(t, err)
	require.Contains(t, res.JS, "function get(obj, key)")
	require.Contains(t, res.JS, "function getNumeric(obj, key)")
}

func TestCompileParseErrorReportsStage(t *testing.T) {
	_, err := New().Compile(`(let (x 1)`, DefaultOptions())
	require.Error(t, err)
	cerr, ok := err.(*CompileError)
	require.True(t, ok, "expected *CompileError, got %T", err)
	require.Equal(t, StageParse, cerr.Stage)
}
