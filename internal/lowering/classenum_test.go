package lowering

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/hqlcompiler/hqlc/internal/hir"
)

// assertNoDiff fails with a kr/pretty structural diff when got and want
// disagree, instead of Go's default one-line %+v dump — useful here since
// HIR trees nest many pointer fields that %v hides behind addresses.
func assertNoDiff(t *testing.T, want, got any) {
	t.Helper()
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Fatalf("HIR mismatch:\n%s", pretty.Sprint(diff))
	}
}

func TestLowerClassProducesFieldsAndConstructor(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `(class Point (var x) (var y) (constructor (x y) (set! this.x x) (set! this.y y)))`)

	stmt, err := l.lowerNodeAsStmt(n)
	require.NoError(t, err)
	class, ok := stmt.(*hir.ClassDeclaration)
	require.True(t, ok, "expected *hir.ClassDeclaration, got %T", stmt)
	require.Equal(t, "Point", class.Id.Name)
	require.Len(t, class.Members, 3)

	fieldX, ok := class.Members[0].(*hir.FieldMember)
	require.True(t, ok)
	assertNoDiff(t, "x", fieldX.Name)

	ctor, ok := class.Members[2].(*hir.ConstructorMember)
	require.True(t, ok, "expected *hir.ConstructorMember, got %T", class.Members[2])
	assertNoDiff(t, []string{"x", "y"}, paramNames(ctor.Params))
}

func TestLowerEnumSimpleHasNoAssociatedValues(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `(enum Color (case Red) (case Green) (case Blue))`)
	stmt, err := l.lowerNodeAsStmt(n)
	require.NoError(t, err)
	enum, ok := stmt.(*hir.EnumDeclaration)
	require.True(t, ok, "expected *hir.EnumDeclaration, got %T", stmt)
	assertNoDiff(t, []string{"Red", "Green", "Blue"}, caseNames(enum.Cases))
	require.False(t, hir.HasAssociatedValues(enum.Cases))
}

func TestLowerEnumWithAssociatedValues(t *testing.T) {
	l := newTestLowerer()
	n := parseOne(t, `(enum Shape (case Circle radius: Double) (case Square))`)
	stmt, err := l.lowerNodeAsStmt(n)
	require.NoError(t, err)
	enum, ok := stmt.(*hir.EnumDeclaration)
	require.True(t, ok, "expected *hir.EnumDeclaration, got %T", stmt)
	require.True(t, hir.HasAssociatedValues(enum.Cases))
	require.Len(t, enum.Cases[0].AssociatedValues, 1)
	assertNoDiff(t, "radius", enum.Cases[0].AssociatedValues[0].Name)
}

func paramNames(params []hir.Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Name
	}
	return out
}

func caseNames(cases []hir.EnumCase) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.Id
	}
	return out
}
