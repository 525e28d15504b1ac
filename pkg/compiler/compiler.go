// Package compiler is HQL's public API, mirroring the shape the teacher
// exposes through pkg/dwscript.Engine.Compile — a single entry point that
// runs the whole read → lower → codegen → print pipeline and returns either
// rendered JS or a structured *CompileError. (The teacher's own
// pkg/dwscript carries no buildable source in this retrieval pack, only
// tests, so this is grounded on the *shape* its tests imply plus the
// internal pipeline already built: internal/reader, internal/hir,
// internal/lowering, internal/codegen, internal/printer.)
package compiler

import (
	"fmt"

	"github.com/hqlcompiler/hqlc/internal/codegen"
	"github.com/hqlcompiler/hqlc/internal/compilerrors"
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/lowering"
	"github.com/hqlcompiler/hqlc/internal/printer"
	"github.com/hqlcompiler/hqlc/internal/reader"
	"github.com/hqlcompiler/hqlc/internal/runtimejs"
)

// Stage identifies which pipeline phase a CompileError came from.
type Stage int

const (
	StageParse Stage = iota
	StageLower
	StageCodegen
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageLower:
		return "lower"
	case StageCodegen:
		return "codegen"
	default:
		return "unknown"
	}
}

// CompileError is returned when Compile fails; Errors holds every
// diagnostic collected at the failing stage.
type CompileError struct {
	Stage  Stage
	Errors []error
}

func (e *CompileError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s failed: %s", e.Stage, compilerrors.FormatAll(e.Errors))
}

// Result is a successful compilation's output.
type Result struct {
	JS       string
	Warnings []string
}

// Options configures one Compile call.
type Options struct {
	FilePath     string
	Printer      printer.Options
	WithRuntime  bool // prepend the embedded get/getNumeric helpers
}

// DefaultOptions mirrors printer.DefaultOptions with no runtime prelude.
func DefaultOptions() Options {
	return Options{Printer: printer.DefaultOptions()}
}

// Engine runs compilations; it carries no mutable state of its own (each
// Compile call builds a fresh hir.Context, per spec §5's "no shared
// process-global state across compilations" design note).
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine { return &Engine{} }

// Compile runs source through the full pipeline and returns rendered JS.
func (e *Engine) Compile(source string, opts Options) (*Result, error) {
	nodes, parseErrs := reader.Parse(source)
	if len(parseErrs) > 0 {
		errs := make([]error, len(parseErrs))
		for i, pe := range parseErrs {
			errs[i] = pe
		}
		return nil, &CompileError{Stage: StageParse, Errors: errs}
	}

	ctx := hir.NewContext()
	lowered, err := lowering.Lower(ctx, nodes, source, opts.FilePath)
	if err != nil {
		return nil, &CompileError{Stage: StageLower, Errors: []error{err}}
	}

	jsProgram := codegen.Generate(lowered.Program)
	js := printer.Print(jsProgram, opts.Printer)
	if opts.WithRuntime {
		js = runtimejs.Source + "\n" + js
	}

	return &Result{JS: js, Warnings: lowered.Warnings}, nil
}
