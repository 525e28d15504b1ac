// Package compilerrors implements the error taxonomy the lowering and
// codegen layers raise across the §6 boundary (ValidationError,
// TransformError, CodeGenError, ImportError), plus the uniform
// context/cause-preserving envelope from §7.
//
// The rendering (header, source line, caret) is grounded on the teacher's
// internal/errors.CompilerError.Format, with fatih/color swapped in for the
// raw ANSI escapes (SPEC_FULL.md §10.2).
package compilerrors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/hqlcompiler/hqlc/internal/token"
)

// Location is the optional SourceLocation a call-binding or lowering error
// carries when it can be attributed to a specific surface node (spec §4.3).
type Location struct {
	FilePath string
	Pos      token.Position
}

func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.FilePath != "" {
		return fmt.Sprintf("%s:%s", l.FilePath, l.Pos)
	}
	return l.Pos.String()
}

type positioned struct {
	Message string
	Context string
	Loc     *Location
	Source  string
}

func (p *positioned) format(kind string) string {
	var sb strings.Builder
	if p.Loc != nil && p.Loc.Pos.IsValid() {
		header := fmt.Sprintf("%s: %s", kind, p.Loc)
		sb.WriteString(color.New(color.Bold).Sprint(header))
		sb.WriteString("\n")
		if line := sourceLine(p.Source, p.Loc.Pos.Line); line != "" {
			lineNumStr := fmt.Sprintf("%4d | ", p.Loc.Pos.Line)
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+p.Loc.Pos.Column-1))
			sb.WriteString(color.New(color.FgRed, color.Bold).Sprint("^"))
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString(color.New(color.Bold).Sprintf("%s:", kind))
		sb.WriteString(" ")
	}
	if p.Context != "" {
		sb.WriteString(fmt.Sprintf("[%s] ", p.Context))
	}
	sb.WriteString(p.Message)
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// ValidationError reports malformed input shape: bad arity, unknown named
// parameter, recur outside loop, a placeholder with no default, mixed
// named/positional arguments (spec §6/§7).
type ValidationError struct {
	positioned
	Expected string
	Actual   string
}

func NewValidationError(message, context string, loc *Location) *ValidationError {
	return &ValidationError{positioned: positioned{Message: message, Context: context, Loc: loc}}
}

func (e *ValidationError) Error() string { return e.positioned.format("ValidationError") }

// TransformError reports a failure while rewriting a lowered form, keeping
// the original cause for inspection.
type TransformError struct {
	positioned
	Cause error
}

func NewTransformError(message, context string, cause error) *TransformError {
	return &TransformError{positioned: positioned{Message: message, Context: context}, Cause: cause}
}

func (e *TransformError) Error() string {
	msg := e.positioned.format("TransformError")
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TransformError) Unwrap() error { return e.Cause }

// CodeGenError reports a failure converting HIR into the target AST or
// printing it.
type CodeGenError struct {
	positioned
	Cause error
}

func NewCodeGenError(message, context string, cause error) *CodeGenError {
	return &CodeGenError{positioned: positioned{Message: message, Context: context}, Cause: cause}
}

func (e *CodeGenError) Error() string {
	msg := e.positioned.format("CodeGenError")
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CodeGenError) Unwrap() error { return e.Cause }

// ImportError reports a malformed or unresolved import/export form.
type ImportError struct {
	positioned
}

func NewImportError(message string, loc *Location) *ImportError {
	return &ImportError{positioned: positioned{Message: message, Loc: loc}}
}

func (e *ImportError) Error() string { return e.positioned.format("ImportError") }

// Wrap applies the uniform recovery policy from spec §7: attach context to
// err, but re-throw unchanged if it is already one of the four typed kinds.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *ValidationError, *TransformError, *CodeGenError, *ImportError:
		return err
	default:
		return NewTransformError(err.Error(), context, err)
	}
}

// FormatAll renders every error in errs, separated for multi-error reports
// (mirrors the teacher's errors.FormatErrors).
func FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[%d/%d] %s\n", i+1, len(errs), err.Error()))
	}
	return sb.String()
}
