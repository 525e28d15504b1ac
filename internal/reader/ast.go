package reader

import "github.com/hqlcompiler/hqlc/internal/token"

// Node is the input contract the lowering core consumes (spec §3.1): an
// ordered sequence of Literal, Symbol, or List nodes.
type Node interface {
	Pos() token.Position
	node()
}

// Literal is an untyped value: nil, bool, float64, or string.
type Literal struct {
	Position token.Position
	Value    any
}

func (n *Literal) Pos() token.Position { return n.Position }
func (n *Literal) node()               {}

// Symbol is a name. It may contain '.', '/', a trailing ':', a leading '.',
// or be the reserved placeholder "_".
type Symbol struct {
	Position token.Position
	Name     string
}

func (n *Symbol) Pos() token.Position { return n.Position }
func (n *Symbol) node()               {}

// List is an ordered sequence of nodes, e.g. `(f a b)`.
type List struct {
	Position token.Position
	Elements []Node
}

func (n *List) Pos() token.Position { return n.Position }
func (n *List) node()               {}

// IsNamedArg reports whether a Symbol is a named-argument key token, i.e. it
// ends in ':' and is not just the lone ":" (spec §4.3/GLOSSARY).
func (n *Symbol) IsNamedArg() bool {
	return len(n.Name) > 1 && n.Name[len(n.Name)-1] == ':'
}
