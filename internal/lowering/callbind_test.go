package lowering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

func parseOne(t *testing.T, src string) reader.Node {
	t.Helper()
	nodes, errs := reader.Parse(src)
	require.Empty(t, errs, "unexpected parse errors for %q", src)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func newTestLowerer() *Lowerer {
	return New(hir.NewContext(), "", "test.hql")
}

func TestPositionalCallToUnregisteredCallee(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, "(foo 1 2)")
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call, ok := expr.(*hir.CallExpression)
	require.True(t, ok, "expected CallExpression, got %T", expr)
	assert.Equal(t, "foo", call.Callee.(*hir.Identifier).Name)
	assert.Len(t, call.Args, 2)
}

func TestNamedCallToUnregisteredCalleeBuildsObjectArg(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `(foo a: 1 b: 2)`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call, ok := expr.(*hir.CallExpression)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	obj, ok := call.Args[0].(*hir.ObjectExpression)
	require.True(t, ok, "expected ObjectExpression, got %T", call.Args[0])
	require.Len(t, obj.Properties, 2)
	assert.Equal(t, "a", obj.Properties[0].Key)
	assert.Equal(t, "b", obj.Properties[1].Key)
}

func TestMixedPositionalAndNamedArgsRejected(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `(foo 1 b: 2)`)
	_, err := l.lowerNode(n)
	assert.Error(t, err)
}

func TestNamedCallReordersToRegisteredParamOrder(t *testing.T) {
	l := newTestLowerer()
	l.ctx.Registries.Fn["greet"] = &hir.FnDecl{
		Name: "greet",
		Params: []hir.Param{
			{Name: "greeting", Default: &hir.StringLiteral{Value: "hi"}},
			{Name: "name"},
		},
	}
	n := parseOne(t, `(greet name: "Ada" greeting: "Hello")`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call, ok := expr.(*hir.CallExpression)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "Hello", call.Args[0].(*hir.StringLiteral).Value)
	assert.Equal(t, "Ada", call.Args[1].(*hir.StringLiteral).Value)
}

func TestNamedCallPlaceholderSelectsDefault(t *testing.T) {
	l := newTestLowerer()
	l.ctx.Registries.Fn["greet"] = &hir.FnDecl{
		Name: "greet",
		Params: []hir.Param{
			{Name: "greeting", Default: &hir.StringLiteral{Value: "hi"}},
			{Name: "name"},
		},
	}
	n := parseOne(t, `(greet name: "Ada" greeting: _)`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call := expr.(*hir.CallExpression)
	assert.Equal(t, "hi", call.Args[0].(*hir.StringLiteral).Value)
}

func TestNamedCallUnknownParamErrors(t *testing.T) {
	l := newTestLowerer()
	l.ctx.Registries.Fn["greet"] = &hir.FnDecl{Name: "greet", Params: []hir.Param{{Name: "name"}}}
	n := parseOne(t, `(greet bogus: 1)`)
	_, err := l.lowerNode(n)
	assert.Error(t, err)
}

func TestPositionalCallFillsMissingTrailingDefaults(t *testing.T) {
	l := newTestLowerer()
	l.ctx.Registries.Fn["greet"] = &hir.FnDecl{
		Name: "greet",
		Params: []hir.Param{
			{Name: "name"},
			{Name: "greeting", Default: &hir.StringLiteral{Value: "hi"}},
		},
	}
	n := parseOne(t, `(greet "Ada")`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call := expr.(*hir.CallExpression)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "hi", call.Args[1].(*hir.StringLiteral).Value)
}

func TestPositionalCallTooManyArgumentsRejected(t *testing.T) {
	l := newTestLowerer()
	l.ctx.Registries.Fn["greet"] = &hir.FnDecl{Name: "greet", Params: []hir.Param{{Name: "name"}}}
	n := parseOne(t, `(greet "Ada" "extra")`)
	_, err := l.lowerNode(n)
	assert.Error(t, err)
}

func TestPositionalCallVariadicSurplusPassesThrough(t *testing.T) {
	l := newTestLowerer()
	l.ctx.Registries.Fn["sum"] = &hir.FnDecl{Name: "sum", Params: []hir.Param{{Name: "rest", Variadic: true}}}
	n := parseOne(t, `(sum 1 2 3)`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call := expr.(*hir.CallExpression)
	assert.Len(t, call.Args, 3)
}

func TestDotPropertyAccessAsCallHeadBecomesMemberCall(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `(obj.a.b 1 2)`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call, ok := expr.(*hir.CallMemberExpression)
	require.True(t, ok, "expected CallMemberExpression, got %T", expr)
	assert.Equal(t, "b", call.MethodName)
	assert.Len(t, call.Args, 2)
	inner, ok := call.Object.(*hir.MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "a", inner.Property.(*hir.Identifier).Name)
}

func TestDotPrefixCallIsDistinctFromPropertyAccessCall(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `(.toString x)`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call, ok := expr.(*hir.CallExpression)
	require.True(t, ok, "expected CallExpression, got %T", expr)
	member := call.Callee.(*hir.MemberExpression)
	assert.Equal(t, "toString", member.Property.(*hir.Identifier).Name)
}

func TestNestedListHeadPlainCall(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `((lambda (x) x) 5)`)
	expr, err := l.lowerNode(n)
	require.NoError(t, err)
	call, ok := expr.(*hir.CallExpression)
	require.True(t, ok, "expected CallExpression, got %T", expr)
	_, ok = call.Callee.(*hir.FunctionExpression)
	assert.True(t, ok)
	assert.Len(t, call.Args, 1)
}
