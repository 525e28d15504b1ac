package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/jsast"
)

func TestConvertNumericLiteralSplitsNegativeSign(t *testing.T) {
	out := convertExpr(&hir.NumericLiteral{Value: -3.5})
	unary, ok := out.(*jsast.UnaryExpression)
	require.True(t, ok, "expected a UnaryExpression, got %T", out)
	assert.Equal(t, "-", unary.Operator)
	assert.True(t, unary.Prefix)
	lit, ok := unary.Argument.(*jsast.NumericLiteral)
	require.True(t, ok)
	assert.Equal(t, 3.5, lit.Value)
}

func TestConvertNumericLiteralPositivePassesThrough(t *testing.T) {
	out := convertExpr(&hir.NumericLiteral{Value: 42})
	lit, ok := out.(*jsast.NumericLiteral)
	require.True(t, ok)
	assert.Equal(t, float64(42), lit.Value)
}

func TestConvertEnumSimpleUsesObjectFreeze(t *testing.T) {
	enum := &hir.EnumDeclaration{
		Id: &hir.Identifier{Name: "Color"},
		Cases: []hir.EnumCase{
			{Id: "Red"},
			{Id: "Green"},
		},
	}
	out := convertEnum(enum)
	decl, ok := out.(*jsast.VariableDeclaration)
	require.True(t, ok, "expected a const VariableDeclaration, got %T", out)
	assert.Equal(t, "const", decl.Kind)
	call, ok := decl.Declarators[0].Init.(*jsast.CallExpression)
	require.True(t, ok)
	member, ok := call.Callee.(*jsast.MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "Object", member.Object.(*jsast.Identifier).Name)
	assert.Equal(t, "freeze", member.Property.(*jsast.Identifier).Name)
}

func TestConvertEnumAssociatedValuesUsesClass(t *testing.T) {
	enum := &hir.EnumDeclaration{
		Id: &hir.Identifier{Name: "Shape"},
		Cases: []hir.EnumCase{
			{Id: "Circle", AssociatedValues: []hir.EnumAssociatedValue{{Name: "radius", TypeName: "Double"}}},
			{Id: "Square"},
		},
	}
	out := convertEnum(enum)
	class, ok := out.(*jsast.ClassDeclaration)
	require.True(t, ok, "expected a ClassDeclaration, got %T", out)
	assert.Equal(t, "Shape", class.Id.Name)
	// constructor, is, getValue, plus one static member per case
	assert.Len(t, class.Members, 3+len(enum.Cases))
}

func TestConvertFxFunctionUsesRestParamsAndDefaults(t *testing.T) {
	fx := &hir.FxFunctionDeclaration{
		Id: &hir.Identifier{Name: "greet"},
		Params: []hir.FxParam{
			{Name: "name", TypeName: "String"},
			{Name: "times", TypeName: "Int"},
		},
		Body: hir.NewBlock(hir.Base{}, []hir.Stmt{&hir.ReturnStatement{Argument: &hir.Identifier{Name: "name"}}}),
	}
	out := convertFxFunction(fx)
	require.Len(t, out.Params, 1)
	assert.True(t, out.Params[0].Rest)
	assert.Equal(t, "args", out.Params[0].Name)
	// two `let` default decls plus the dispatch if, before the original body
	assert.GreaterOrEqual(t, len(out.Body.Body), 3)
}

func TestModuleImportName(t *testing.T) {
	cases := map[string]string{
		"npm:lodash":          "lodashModule",
		"jsr:@std/path":       "pathModule",
		"./utils/string-fmt":  "stringFmtModule",
		"react-dom/client.js": "clientModule",
	}
	for source, want := range cases {
		assert.Equal(t, want, ModuleImportName(source), "source=%q", source)
	}
}

func TestIsNoopGetPlaceholderOnlyMatchesUnderscoreReceiver(t *testing.T) {
	placeholder := &hir.MemberExpression{Object: &hir.StringLiteral{Value: "_"}, Property: &hir.Identifier{Name: "k"}}
	assert.True(t, isNoopGetPlaceholder(placeholder))

	real := &hir.MemberExpression{Object: &hir.Identifier{Name: "obj"}, Property: &hir.Identifier{Name: "k"}}
	assert.False(t, isNoopGetPlaceholder(real))
}

func TestConvertBlockFiltersNoopGetPlaceholder(t *testing.T) {
	block := hir.NewBlock(hir.Base{}, []hir.Stmt{
		&hir.ExpressionStatement{Expression: &hir.MemberExpression{Object: &hir.StringLiteral{Value: "_"}, Property: &hir.Identifier{Name: "k"}}},
		&hir.ReturnStatement{Argument: &hir.NullLiteral{}},
	})
	out := convertBlock(block)
	require.Len(t, out.Body, 1)
	_, ok := out.Body[0].(*jsast.ReturnStatement)
	assert.True(t, ok)
}
