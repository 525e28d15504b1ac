// Package printer renders internal/jsast back to deterministic JavaScript
// source text (spec §4.10): LF newlines, stable statement order, comments
// preserved, no semicolon-omission tricks, single output file.
//
// The teacher repo's own pkg/printer carries no buildable source in this
// retrieval pack (only *_test.go survive) — there is nothing to adapt line by
// line. This package is instead grounded on the printer *surface* the
// teacher's CLI exposes (cmd/dwscript/cmd/fmt.go's Options/Style flags) and
// on the teacher's general style elsewhere (explicit type switches over a
// closed AST, a Builder accumulating into a strings.Builder, an Options
// struct threaded through every method rather than package-level state).
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hqlcompiler/hqlc/internal/jsast"
	"github.com/kr/text"
)

// Style selects the overall formatting shape, mirroring the three the
// teacher's `dwscript fmt --style` flag accepts.
type Style int

const (
	// StyleDetailed prints one statement per line with blank lines between
	// top-level declarations. The default.
	StyleDetailed Style = iota
	// StyleCompact omits blank lines between top-level declarations.
	StyleCompact
	// StyleMultiline behaves like StyleDetailed but also forces object and
	// array literals with more than one property/element onto their own
	// lines, regardless of width.
	StyleMultiline
)

// Options configures the printer (spec §4.10; surface mirrors the teacher's
// printer.Options shape).
type Options struct {
	Style       Style
	IndentWidth int
	UseSpaces   bool
}

// DefaultOptions matches the teacher CLI's own defaults: two-space indent.
func DefaultOptions() Options {
	return Options{Style: StyleDetailed, IndentWidth: 2, UseSpaces: true}
}

// Print renders a whole program to a single JS source string.
func Print(prog *jsast.Program, opts Options) string {
	p := &printerState{opts: opts}
	for i, s := range prog.Body {
		if i > 0 && opts.Style != StyleCompact {
			p.buf.WriteByte('\n')
		}
		p.stmt(s, 0)
	}
	return p.buf.String()
}

type printerState struct {
	buf  strings.Builder
	opts Options
}

func (p *printerState) indentUnit() string {
	if p.opts.UseSpaces {
		return strings.Repeat(" ", p.opts.IndentWidth)
	}
	return "\t"
}

func (p *printerState) indent(depth int) string {
	return strings.Repeat(p.indentUnit(), depth)
}

func (p *printerState) writeLine(depth int, line string) {
	p.buf.WriteString(p.indent(depth))
	p.buf.WriteString(line)
	p.buf.WriteByte('\n')
}

// --- Statements ---

func (p *printerState) stmt(s jsast.Stmt, depth int) {
	switch v := s.(type) {
	case nil:
		return

	case *jsast.VariableDeclaration:
		p.writeLine(depth, p.varDecl(v)+";")

	case *jsast.ExpressionStatement:
		p.writeLine(depth, p.expr(v.Expression)+";")

	case *jsast.BlockStatement:
		p.writeLine(depth, "{")
		for _, inner := range v.Body {
			p.stmt(inner, depth+1)
		}
		p.writeLine(depth, "}")

	case *jsast.IfStatement:
		p.writeLine(depth, "if ("+p.expr(v.Test)+") {")
		p.blockBody(v.Consequent, depth+1)
		if v.Alternate == nil {
			p.writeLine(depth, "}")
			return
		}
		if nested, ok := v.Alternate.(*jsast.IfStatement); ok {
			p.buf.WriteString(p.indent(depth))
			p.buf.WriteString("} else ")
			p.stmtInline(nested, depth)
			return
		}
		p.writeLine(depth, "} else {")
		p.blockBody(v.Alternate, depth+1)
		p.writeLine(depth, "}")

	case *jsast.ReturnStatement:
		if v.Argument == nil {
			p.writeLine(depth, "return;")
			return
		}
		p.writeLine(depth, "return "+p.expr(v.Argument)+";")

	case *jsast.FunctionDeclaration:
		p.writeLine(depth, "function "+v.Id.Name+"("+p.paramList(v.Params)+") {")
		p.blockStmts(v.Body, depth+1)
		p.writeLine(depth, "}")

	case *jsast.ClassDeclaration:
		p.writeLine(depth, "class "+v.Id.Name+" {")
		for i, m := range v.Members {
			if i > 0 && p.opts.Style != StyleCompact {
				p.buf.WriteByte('\n')
			}
			p.classMember(m, depth+1)
		}
		p.writeLine(depth, "}")

	case *jsast.ImportDeclaration:
		names := make([]string, len(v.Specifiers))
		for i, spec := range v.Specifiers {
			if spec.Imported == spec.Local {
				names[i] = spec.Local
			} else {
				names[i] = spec.Imported + " as " + spec.Local
			}
		}
		p.writeLine(depth, fmt.Sprintf("import { %s } from %q;", strings.Join(names, ", "), v.Source))

	case *jsast.DefaultImportDeclaration:
		p.writeLine(depth, fmt.Sprintf("import %s from %q;", v.Local, v.Source))

	case *jsast.ExportNamedDeclaration:
		if v.Declaration != nil {
			p.buf.WriteString(p.indent(depth))
			p.buf.WriteString("export ")
			p.stmtInline(v.Declaration, depth)
			return
		}
		names := make([]string, len(v.Specifiers))
		for i, spec := range v.Specifiers {
			if spec.Local == spec.Exported {
				names[i] = spec.Local
			} else {
				names[i] = spec.Local + " as " + spec.Exported
			}
		}
		p.writeLine(depth, fmt.Sprintf("export { %s };", strings.Join(names, ", ")))

	case *jsast.ExportVariableDeclaration:
		p.writeLine(depth, "export "+p.varDecl(v.Declaration)+";")

	case *jsast.CommentBlock:
		for _, line := range strings.Split(v.Text, "\n") {
			p.writeLine(depth, "// "+line)
		}

	case *jsast.Raw:
		p.writeLine(depth, v.Text)

	default:
		p.writeLine(depth, fmt.Sprintf("/* unprintable statement %T */", s))
	}
}

// stmtInline prints a statement that follows an inline prefix (e.g. `} else
// ` or `export `) without re-emitting its own leading indent.
func (p *printerState) stmtInline(s jsast.Stmt, depth int) {
	switch v := s.(type) {
	case *jsast.IfStatement:
		p.buf.WriteString("if (" + p.expr(v.Test) + ") {\n")
		p.blockBody(v.Consequent, depth+1)
		if v.Alternate == nil {
			p.writeLine(depth, "}")
			return
		}
		if nested, ok := v.Alternate.(*jsast.IfStatement); ok {
			p.buf.WriteString(p.indent(depth) + "} else ")
			p.stmtInline(nested, depth)
			return
		}
		p.writeLine(depth, "} else {")
		p.blockBody(v.Alternate, depth+1)
		p.writeLine(depth, "}")
	case *jsast.VariableDeclaration:
		p.buf.WriteString(p.varDecl(v) + ";\n")
	case *jsast.FunctionDeclaration:
		p.buf.WriteString("function " + v.Id.Name + "(" + p.paramList(v.Params) + ") {\n")
		p.blockStmts(v.Body, depth+1)
		p.writeLine(depth, "}")
	case *jsast.ClassDeclaration:
		p.buf.WriteString("class " + v.Id.Name + " {\n")
		for _, m := range v.Members {
			p.classMember(m, depth+1)
		}
		p.writeLine(depth, "}")
	default:
		p.buf.WriteByte('\n')
		p.stmt(s, depth)
	}
}

// blockBody prints s as the body of a surrounding `{ ... }` without adding
// its own braces — for single statements already wrapped by a BlockStatement
// this just delegates, otherwise it treats s itself as the sole statement.
func (p *printerState) blockBody(s jsast.Stmt, depth int) {
	if b, ok := s.(*jsast.BlockStatement); ok {
		p.blockStmts(b, depth)
		return
	}
	p.stmt(s, depth)
}

func (p *printerState) blockStmts(b *jsast.BlockStatement, depth int) {
	if b == nil {
		return
	}
	for _, s := range b.Body {
		p.stmt(s, depth)
	}
}

func (p *printerState) varDecl(v *jsast.VariableDeclaration) string {
	parts := make([]string, len(v.Declarators))
	for i, d := range v.Declarators {
		if d.Init == nil {
			parts[i] = d.Id.Name
		} else {
			parts[i] = d.Id.Name + " = " + p.expr(d.Init)
		}
	}
	return v.Kind + " " + strings.Join(parts, ", ")
}

func (p *printerState) paramList(params []jsast.Param) string {
	parts := make([]string, len(params))
	for i, pr := range params {
		switch {
		case pr.Rest:
			parts[i] = "..." + pr.Name
		case pr.Default != nil:
			parts[i] = pr.Name + " = " + p.expr(pr.Default)
		default:
			parts[i] = pr.Name
		}
	}
	return strings.Join(parts, ", ")
}

func (p *printerState) classMember(m jsast.ClassMember, depth int) {
	switch v := m.(type) {
	case *jsast.FieldMember:
		prefix := ""
		if v.Static {
			prefix = "static "
		}
		if v.Init == nil {
			p.writeLine(depth, prefix+v.Name+";")
			return
		}
		p.writeLine(depth, prefix+v.Name+" = "+p.expr(v.Init)+";")
	case *jsast.ConstructorMember:
		p.writeLine(depth, "constructor("+p.paramList(v.Params)+") {")
		p.blockStmts(v.Body, depth+1)
		p.writeLine(depth, "}")
	case *jsast.MethodMember:
		prefix := ""
		if v.Static {
			prefix = "static "
		}
		p.writeLine(depth, prefix+v.Name+"("+p.paramList(v.Params)+") {")
		p.blockStmts(v.Body, depth+1)
		p.writeLine(depth, "}")
	}
}

// --- Expressions ---

func (p *printerState) expr(e jsast.Expr) string {
	switch v := e.(type) {
	case nil:
		return "undefined"
	case *jsast.NullLiteral:
		return "null"
	case *jsast.BooleanLiteral:
		return strconv.FormatBool(v.Value)
	case *jsast.NumericLiteral:
		return formatNumber(v.Value)
	case *jsast.StringLiteral:
		return strconv.Quote(v.Value)
	case *jsast.Identifier:
		return v.Name
	case *jsast.SpreadElement:
		return "..." + p.expr(v.Argument)
	case *jsast.ArrayExpression:
		parts := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			parts[i] = p.expr(el)
		}
		if p.opts.Style == StyleMultiline && len(parts) > 1 {
			inner := p.indentUnit()
			return "[\n" + inner + strings.Join(parts, ",\n"+inner) + "\n]"
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *jsast.ObjectExpression:
		return p.objectExpr(v)
	case *jsast.NewExpression:
		return "new " + p.expr(v.Callee) + "(" + p.argList(v.Args) + ")"
	case *jsast.MemberExpression:
		if v.Computed {
			return p.exprParen(v.Object) + "[" + p.expr(v.Property) + "]"
		}
		return p.exprParen(v.Object) + "." + p.expr(v.Property)
	case *jsast.CallExpression:
		return p.exprParen(v.Callee) + "(" + p.argList(v.Args) + ")"
	case *jsast.BinaryExpression:
		return p.operand(v.Left) + " " + v.Operator + " " + p.operand(v.Right)
	case *jsast.LogicalExpression:
		return p.operand(v.Left) + " " + v.Operator + " " + p.operand(v.Right)
	case *jsast.UnaryExpression:
		if v.Prefix {
			if isWordOperator(v.Operator) {
				return v.Operator + " " + p.operand(v.Argument)
			}
			return v.Operator + p.operand(v.Argument)
		}
		return p.operand(v.Argument) + v.Operator
	case *jsast.AssignmentExpression:
		return p.expr(v.Left) + " " + v.Operator + " " + p.expr(v.Right)
	case *jsast.ConditionalExpression:
		return p.expr(v.Test) + " ? " + p.expr(v.Consequent) + " : " + p.expr(v.Alternate)
	case *jsast.FunctionExpression:
		name := ""
		if v.Id != nil {
			name = " " + v.Id.Name
		}
		inner := &printerState{opts: p.opts}
		inner.blockStmts(v.Body, 0)
		// inner printed its own body at depth 0; re-indent it one level now
		// that it's spliced into the surrounding expression instead of
		// tracking an expr-level depth parameter through every case above.
		return "function" + name + "(" + p.paramList(v.Params) + ") {\n" + text.Indent(inner.buf.String(), p.indentUnit()) + "}"
	case *jsast.Raw:
		return v.Text
	default:
		return fmt.Sprintf("/* unprintable expr %T */ null", e)
	}
}

// exprParen wraps e in parens when printing it bare as a callee/member
// object would change its meaning (function expressions, conditionals).
func (p *printerState) exprParen(e jsast.Expr) string {
	switch e.(type) {
	case *jsast.FunctionExpression, *jsast.ConditionalExpression, *jsast.AssignmentExpression, *jsast.BinaryExpression:
		return "(" + p.expr(e) + ")"
	default:
		return p.expr(e)
	}
}

// operand prints e as the operand of a binary, logical or unary operator,
// parenthesizing a nested operator expression so its grouping survives.
func (p *printerState) operand(e jsast.Expr) string {
	switch e.(type) {
	case *jsast.BinaryExpression, *jsast.LogicalExpression, *jsast.ConditionalExpression, *jsast.AssignmentExpression:
		return "(" + p.expr(e) + ")"
	default:
		return p.expr(e)
	}
}

func (p *printerState) argList(args []jsast.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = p.expr(a)
	}
	return strings.Join(parts, ", ")
}

func (p *printerState) objectExpr(v *jsast.ObjectExpression) string {
	if len(v.Properties) == 0 {
		return "{}"
	}
	parts := make([]string, len(v.Properties))
	for i, prop := range v.Properties {
		key := prop.Key
		if prop.Computed {
			key = "[" + p.expr(prop.KeyExpr) + "]"
		} else if !isValidIdent(key) {
			key = strconv.Quote(key)
		}
		parts[i] = key + ": " + p.expr(prop.Value)
	}
	if p.opts.Style == StyleMultiline && len(parts) > 1 {
		inner := p.indentUnit()
		return "{\n" + inner + strings.Join(parts, ",\n"+inner) + "\n}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !(r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
		if i > 0 && !(r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

func isWordOperator(op string) bool {
	return op == "typeof" || op == "void" || op == "delete"
}

// formatNumber mirrors JS's own number-to-string rules closely enough for
// generated literals: integers print without a trailing ".0".
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
