// Package hir defines HQL's intermediate representation: a closed algebraic
// data type (spec §3.2). Node is realized the way the teacher's
// internal/ast package realizes its own closed AST — a narrow interface plus
// unexported marker methods — but HIR is a distinct, smaller tree shaped for
// the single JS-shaped lowering target rather than DWScript's own grammar.
package hir

import "github.com/hqlcompiler/hqlc/internal/token"

// Node is the Base interface every HIR node satisfies.
type Node interface {
	Pos() token.Position
	hirNode()
}

// Expr is any HIR node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any HIR node that performs an action without itself producing a
// value (spec §3.2 invariant: every node is either a statement or an
// expression, and the set is fixed).
type Stmt interface {
	Node
	stmtNode()
}

type Base struct {
	Position token.Position
}

func (b Base) Pos() token.Position { return b.Position }

// At returns a Base embedding the given position; every node literal below
// embeds this so callers only have to spell Position once.
func At(pos token.Position) Base { return Base{Position: pos} }
