package lowering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqlcompiler/hqlc/internal/hir"
)

func lowerExprOK(t *testing.T, src string) hir.Expr {
	t.Helper()
	l := newTestLowerer()
	n := parseOne(t, src)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	return expr
}

func TestArithmeticOpsFoldLeftAssociative(t *testing.T) {
	expr := lowerExprOK(t, "(+ 1 2 3)")
	outer, ok := expr.(*hir.BinaryExpression)
	require.True(t, ok, "expected BinaryExpression, got %T", expr)
	assert.Equal(t, "+", outer.Operator)
	inner, ok := outer.Left.(*hir.BinaryExpression)
	require.True(t, ok, "expected nested left BinaryExpression, got %T", outer.Left)
	assert.Equal(t, float64(1), inner.Left.(*hir.NumericLiteral).Value)
	assert.Equal(t, float64(2), inner.Right.(*hir.NumericLiteral).Value)
	assert.Equal(t, float64(3), outer.Right.(*hir.NumericLiteral).Value)
}

func TestUnaryMinusWithOneArg(t *testing.T) {
	expr := lowerExprOK(t, "(- 5)")
	unary, ok := expr.(*hir.UnaryExpression)
	require.True(t, ok, "expected UnaryExpression, got %T", expr)
	assert.Equal(t, "-", unary.Operator)
}

func TestBinaryMinusWithTwoArgs(t *testing.T) {
	expr := lowerExprOK(t, "(- 5 2)")
	bin, ok := expr.(*hir.BinaryExpression)
	require.True(t, ok, "expected BinaryExpression, got %T", expr)
	assert.Equal(t, "-", bin.Operator)
}

func TestComparisonOpMapsToStrictOperators(t *testing.T) {
	cases := map[string]string{
		"(= a b)":  "===",
		"(!= a b)": "!==",
		"(< a b)":  "<",
		"(>= a b)": ">=",
	}
	for src, want := range cases {
		bin, ok := lowerExprOK(t, src).(*hir.BinaryExpression)
		require.True(t, ok, "source=%q", src)
		assert.Equal(t, want, bin.Operator, "source=%q", src)
	}
}

func TestComparisonOpRejectsNonBinaryArity(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, "(< a b c)")
	_, err := l.lowerNode(n)
	assert.Error(t, err)
}

func TestLogicalOpsMapToJSOperators(t *testing.T) {
	and, ok := lowerExprOK(t, "(and a b)").(*hir.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "&&", and.Operator)

	or, ok := lowerExprOK(t, "(or a b)").(*hir.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "||", or.Operator)
}

func TestNotProducesLogicalNegation(t *testing.T) {
	not, ok := lowerExprOK(t, "(not a)").(*hir.UnaryExpression)
	require.True(t, ok)
	assert.Equal(t, "!", not.Operator)
}
