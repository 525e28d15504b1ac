package lowering

import "github.com/hqlcompiler/hqlc/internal/hir"

// CloneStrategy emits the statements an `fx` body prelude uses to make each
// parameter observably independent of the caller's state (spec Design
// Notes: "object parameters are JSON-roundtripped; non-objects pass
// through"). The spec flags the literal `JSON.parse(JSON.stringify(x))`
// approximation as lossy (drops functions, dates, symbols) and asks for a
// pluggable hook; DefaultCloneStrategy below is that literal approximation,
// kept as the default because it requires no runtime dependency, while a
// host program may substitute a CloneStrategy backed by a richer structural
// clone helper.
type CloneStrategy interface {
	// Clone returns an expression evaluating to a deep copy of name, e.g.
	// `JSON.parse(JSON.stringify(name))`; deepCopyPrelude assigns it back.
	Clone(pos hir.Base, name string) hir.Expr
}

type jsonRoundtripClone struct{}

// DefaultCloneStrategy is the spec's literal JSON.parse(JSON.stringify(x)).
var DefaultCloneStrategy CloneStrategy = jsonRoundtripClone{}

func (jsonRoundtripClone) Clone(pos hir.Base, name string) hir.Expr {
	arg := &hir.Identifier{Base: pos, Name: name}
	stringify := &hir.CallExpression{
		Base: pos,
		Callee: &hir.MemberExpression{
			Base:     pos,
			Object:   &hir.Identifier{Base: pos, Name: "JSON"},
			Property: &hir.Identifier{Base: pos, Name: "stringify"},
		},
		Args: []hir.Expr{arg},
	}
	return &hir.CallExpression{
		Base: pos,
		Callee: &hir.MemberExpression{
			Base:     pos,
			Object:   &hir.Identifier{Base: pos, Name: "JSON"},
			Property: &hir.Identifier{Base: pos, Name: "parse"},
		},
		Args: []hir.Expr{stringify},
	}
}

// deepCopyPrelude builds the statements injected at the top of an `fx`
// body: one reassignment per parameter, cloning it via the active
// CloneStrategy so the function body cannot mutate the caller's object
// (spec §4.2 `fx` row: "object parameters are JSON-roundtripped;
// non-objects pass through"). The clone is guarded by a typeof/null check so
// non-object params (numbers, strings, booleans, undefined, functions) pass
// through unchanged instead of going through JSON.stringify/parse, which
// throws on undefined and mangles functions.
func deepCopyPrelude(pos hir.Base, params []hir.FxParam) []hir.Stmt {
	stmts := make([]hir.Stmt, 0, len(params))
	for _, p := range params {
		ident := &hir.Identifier{Base: pos, Name: p.Name}
		isObject := &hir.BinaryExpression{
			Base:     pos,
			Operator: "&&",
			Left: &hir.BinaryExpression{
				Base:     pos,
				Operator: "===",
				Left:     &hir.UnaryExpression{Base: pos, Operator: "typeof", Argument: ident, Prefix: true},
				Right:    &hir.StringLiteral{Base: pos, Value: "object"},
			},
			Right: &hir.BinaryExpression{
				Base:     pos,
				Operator: "!==",
				Left:     ident,
				Right:    &hir.NullLiteral{Base: pos},
			},
		}
		guardedClone := &hir.ConditionalExpression{
			Base:       pos,
			Test:       isObject,
			Consequent: DefaultCloneStrategy.Clone(pos, p.Name),
			Alternate:  ident,
		}
		stmts = append(stmts, &hir.ExpressionStatement{
			Base: pos,
			Expression: &hir.AssignmentExpression{
				Base:     pos,
				Operator: "=",
				Left:     &hir.Identifier{Base: pos, Name: p.Name},
				Right:    guardedClone,
			},
		})
	}
	return stmts
}
