package irdump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqlcompiler/hqlc/internal/hir"
)

func sampleProgram() []hir.Stmt {
	return []hir.Stmt{
		&hir.VariableDeclaration{
			Kind: hir.DeclConst,
			Declarators: []hir.VariableDeclarator{
				{Id: &hir.Identifier{Name: "x"}, Init: &hir.NumericLiteral{Value: 1}},
			},
		},
		&hir.ExpressionStatement{
			Expression: &hir.CallExpression{
				Callee: &hir.Identifier{Name: "f"},
				Args:   []hir.Expr{&hir.StringLiteral{Value: "a"}, &hir.BooleanLiteral{Value: true}},
			},
		},
	}
}

func TestDumpIsDeterministicAcrossRuns(t *testing.T) {
	program := sampleProgram()
	first, err := Dump(program)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Dump(program)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d diverged", i)
	}
}

func TestDumpRendersKnownNodeKinds(t *testing.T) {
	out, err := Dump(sampleProgram())
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "VariableDeclaration"`)
	assert.Contains(t, out, `"kind": "CallExpression"`)
	assert.Contains(t, out, `"name": "f"`)
}

func TestDumpFallsBackToUnknownForUnmappedKind(t *testing.T) {
	out, err := Dump([]hir.Stmt{&hir.CommentBlock{Text: "todo"}})
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "Unknown"`)
	assert.Contains(t, out, "CommentBlock")
}
