package lowering

import (
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// lowerLoop implements spec §4.4: `(loop (bindings...) body...)` becomes an
// IIFE containing a synthesized named function and a tail call to it.
func (l *Lowerer) lowerLoop(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "loop", "expected (loop (bindings...) body...)")
	}
	bindingList, ok := list.Elements[1].(*reader.List)
	if !ok {
		return nil, l.validationErr(list, "loop", "expected a binding list")
	}
	if len(bindingList.Elements)%2 != 0 {
		return nil, l.validationErr(bindingList, "loop", "binding list must have an even number of entries")
	}

	var params []hir.Param
	var initArgs []hir.Expr
	for i := 0; i < len(bindingList.Elements); i += 2 {
		sym, ok := bindingList.Elements[i].(*reader.Symbol)
		if !ok {
			return nil, l.validationErr(bindingList, "loop", "binding name must be a symbol")
		}
		init, err := l.lowerNode(bindingList.Elements[i+1])
		if err != nil {
			return nil, err
		}
		params = append(params, hir.Param{Name: sanitizeIdent(sym.Name)})
		initArgs = append(initArgs, init)
	}

	name := l.ctx.PushLoop()
	body, err := lowerLoopBody(l, list.Elements[2:])
	l.ctx.PopLoop()
	if err != nil {
		return nil, err
	}

	pos := hir.At(list.Pos())
	loopFn := &hir.FunctionDeclaration{
		Base:   pos,
		Id:     &hir.Identifier{Base: pos, Name: name},
		Params: params,
		Body:   body,
	}
	tailCall := &hir.ReturnStatement{
		Base: pos,
		Argument: &hir.CallExpression{
			Base:   pos,
			Callee: &hir.Identifier{Base: pos, Name: name},
			Args:   initArgs,
		},
	}
	return wrapIIFE(pos, hir.NewBlock(pos, []hir.Stmt{loopFn, tailCall})), nil
}

// lowerLoopBody lowers a loop body with the terminal-position hard rule
// (spec §4.4 step 4): the last statement must be either a ReturnStatement
// or a `recur` call; an `if` in terminal position has both arms lowered the
// same way (missing else becomes `return null`). A terminal `cond` is lowered
// as one expression and wrapped in a single ReturnStatement, so its clauses
// cannot contain `recur`.
func lowerLoopBody(l *Lowerer, body []reader.Node) (*hir.BlockStatement, error) {
	if len(body) == 0 {
		return hir.NewBlock(hir.Base{}, nil), nil
	}
	pos := hir.At(body[0].Pos())
	stmts, err := l.lowerBodyStatements(body[:len(body)-1])
	if err != nil {
		return nil, err
	}
	last, err := l.lowerTerminalStmt(body[len(body)-1])
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, last)
	return hir.NewBlock(pos, stmts), nil
}

// lowerTerminalStmt lowers a node known to sit in tail position inside a
// loop body: `if` becomes an IfStatement whose branches are themselves
// terminal (recursively), `recur` becomes its tail call, `return` is lowered
// as-is, and anything else is wrapped in a ReturnStatement.
func (l *Lowerer) lowerTerminalStmt(n reader.Node) (hir.Stmt, error) {
	pos := hir.At(n.Pos())
	if list, ok := n.(*reader.List); ok && len(list.Elements) > 0 {
		if sym, ok := list.Elements[0].(*reader.Symbol); ok {
			switch sym.Name {
			case "if":
				return l.lowerTerminalIf(list)
			case "recur":
				return l.lowerRecur(list)
			case "return":
				return l.lowerReturn(list)
			}
		}
	}
	e, err := l.lowerNode(n)
	if err != nil {
		return nil, err
	}
	return &hir.ReturnStatement{Base: pos, Argument: e}, nil
}

func (l *Lowerer) lowerTerminalIf(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) != 3 && len(list.Elements) != 4 {
		return nil, l.validationErr(list, "if", "expected 2 or 3 arguments, got %d", len(list.Elements)-1)
	}
	pos := hir.At(list.Pos())
	test, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	cons, err := l.lowerTerminalStmt(list.Elements[2])
	if err != nil {
		return nil, err
	}
	var alt hir.Stmt
	if len(list.Elements) == 4 {
		alt, err = l.lowerTerminalStmt(list.Elements[3])
		if err != nil {
			return nil, err
		}
	} else {
		alt = &hir.ReturnStatement{Base: pos, Argument: &hir.NullLiteral{Base: pos}}
	}
	return &hir.IfStatement{Base: pos, Test: test, Consequent: cons, Alternate: alt}, nil
}

// lowerRecur implements spec §4.4: `(recur args...)` -> `return L(args...)`
// where L is the top of the loop-context stack; outside any loop it is a
// validation error (spec §3.4, invariant 3).
func (l *Lowerer) lowerRecur(list *reader.List) (hir.Stmt, error) {
	name, ok := l.ctx.CurrentLoop()
	if !ok {
		return nil, l.validationErr(list, "recur", "recur used outside any loop")
	}
	args, err := l.lowerArgs(list.Elements[1:])
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	return &hir.ReturnStatement{
		Base: pos,
		Argument: &hir.CallExpression{
			Base:   pos,
			Callee: &hir.Identifier{Base: pos, Name: name},
			Args:   args,
		},
	}, nil
}
