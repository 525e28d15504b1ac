package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hqlcompiler/hqlc/internal/jsast"
)

func TestFormatNumberDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "42", formatNumber(42))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "3.5", formatNumber(3.5))
}

func TestPrintVariableDeclaration(t *testing.T) {
	prog := &jsast.Program{Body: []jsast.Stmt{
		&jsast.VariableDeclaration{
			Kind: "const",
			Declarators: []jsast.VariableDeclarator{
				{Id: &jsast.Identifier{Name: "x"}, Init: &jsast.NumericLiteral{Value: 1}},
			},
		},
	}}
	out := Print(prog, DefaultOptions())
	assert.Equal(t, "const x = 1;\n", out)
}

func TestPrintFunctionDeclaration(t *testing.T) {
	prog := &jsast.Program{Body: []jsast.Stmt{
		&jsast.FunctionDeclaration{
			Id:     &jsast.Identifier{Name: "add"},
			Params: []jsast.Param{{Name: "a"}, {Name: "b"}},
			Body: &jsast.BlockStatement{Body: []jsast.Stmt{
				&jsast.ReturnStatement{Argument: &jsast.BinaryExpression{Operator: "+", Left: &jsast.Identifier{Name: "a"}, Right: &jsast.Identifier{Name: "b"}}},
			}},
		},
	}}
	out := Print(prog, DefaultOptions())
	assert.Equal(t, "function add(a, b) {\n  return a + b;\n}\n", out)
}

func TestPrintIfElseChain(t *testing.T) {
	prog := &jsast.Program{Body: []jsast.Stmt{
		&jsast.IfStatement{
			Test:       &jsast.Identifier{Name: "cond"},
			Consequent: &jsast.BlockStatement{Body: []jsast.Stmt{&jsast.ReturnStatement{Argument: &jsast.NumericLiteral{Value: 1}}}},
			Alternate:  &jsast.BlockStatement{Body: []jsast.Stmt{&jsast.ReturnStatement{Argument: &jsast.NumericLiteral{Value: 2}}}},
		},
	}}
	out := Print(prog, DefaultOptions())
	assert.Equal(t, "if (cond) {\n  return 1;\n} else {\n  return 2;\n}\n", out)
}

func TestPrintObjectExpressionCompactVsMultiline(t *testing.T) {
	obj := &jsast.ObjectExpression{Properties: []jsast.Property{
		{Key: "a", Value: &jsast.NumericLiteral{Value: 1}},
		{Key: "b", Value: &jsast.NumericLiteral{Value: 2}},
	}}
	prog := &jsast.Program{Body: []jsast.Stmt{&jsast.ExpressionStatement{Expression: obj}}}

	detailed := Print(prog, DefaultOptions())
	assert.Equal(t, "{ a: 1, b: 2 };\n", detailed)

	multi := Print(prog, Options{Style: StyleMultiline, IndentWidth: 2, UseSpaces: true})
	assert.True(t, strings.Contains(multi, "{\n  a: 1,\n  b: 2\n}"))
}

func TestPrintClassDeclaration(t *testing.T) {
	class := &jsast.ClassDeclaration{
		Id: &jsast.Identifier{Name: "Point"},
		Members: []jsast.ClassMember{
			&jsast.FieldMember{Name: "x"},
			&jsast.ConstructorMember{Params: []jsast.Param{{Name: "x"}}, Body: &jsast.BlockStatement{}},
		},
	}
	prog := &jsast.Program{Body: []jsast.Stmt{class}}
	out := Print(prog, Options{Style: StyleCompact, IndentWidth: 2, UseSpaces: true})
	assert.True(t, strings.HasPrefix(out, "class Point {\n"))
	assert.True(t, strings.Contains(out, "x;\n"))
	assert.True(t, strings.Contains(out, "constructor(x) {\n"))
}

func TestPrintImportAndExport(t *testing.T) {
	prog := &jsast.Program{Body: []jsast.Stmt{
		&jsast.ImportDeclaration{Specifiers: []jsast.ImportSpecifier{{Imported: "readFile", Local: "readFile"}}, Source: "fs"},
		&jsast.DefaultImportDeclaration{Local: "React", Source: "react"},
	}}
	out := Print(prog, DefaultOptions())
	assert.Contains(t, out, `import { readFile } from "fs";`)
	assert.Contains(t, out, `import React from "react";`)
}
