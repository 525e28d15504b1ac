package lowering

import (
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// lowerQuote implements spec §4.2's `quote` row: literal -> literal;
// symbol -> string literal of its name; list -> ArrayExpression of
// recursively quoted elements.
func (l *Lowerer) lowerQuote(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 2 {
		return nil, l.validationErr(list, "quote", "expected exactly 1 argument, got %d", len(list.Elements)-1)
	}
	return l.quoteNode(list.Elements[1]), nil
}

func (l *Lowerer) quoteNode(n reader.Node) hir.Expr {
	pos := hir.At(n.Pos())
	switch v := n.(type) {
	case *reader.Literal:
		return l.lowerLiteral(v)
	case *reader.Symbol:
		return &hir.StringLiteral{Base: pos, Value: v.Name}
	case *reader.List:
		elems := make([]hir.Expr, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = l.quoteNode(e)
		}
		return &hir.ArrayExpression{Base: pos, Elements: elems}
	default:
		return &hir.NullLiteral{Base: pos}
	}
}

// lowerIf implements spec §4.2 `if` for expression position: 2 or 3 args,
// always a ConditionalExpression. Statement position (inside a loop body,
// so `recur` can appear in a branch) uses lowerIfStmt instead (spec §4.2
// `if` row, §4.4 step 4).
func (l *Lowerer) lowerIf(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 3 && len(list.Elements) != 4 {
		return nil, l.validationErr(list, "if", "expected 2 or 3 arguments, got %d", len(list.Elements)-1)
	}
	test, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	cons, err := l.lowerNode(list.Elements[2])
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	var alt hir.Expr = &hir.NullLiteral{Base: pos}
	if len(list.Elements) == 4 {
		alt, err = l.lowerNode(list.Elements[3])
		if err != nil {
			return nil, err
		}
	}
	return &hir.ConditionalExpression{Base: pos, Test: test, Consequent: cons, Alternate: alt}, nil
}

// lowerIfStmt lowers `if` directly to an IfStatement, used inside loop
// bodies (spec §4.2/§4.4).
func (l *Lowerer) lowerIfStmt(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) != 3 && len(list.Elements) != 4 {
		return nil, l.validationErr(list, "if", "expected 2 or 3 arguments, got %d", len(list.Elements)-1)
	}
	test, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	cons, err := l.lowerNodeAsStmt(list.Elements[2])
	if err != nil {
		return nil, err
	}
	var alt hir.Stmt
	if len(list.Elements) == 4 {
		alt, err = l.lowerNodeAsStmt(list.Elements[3])
		if err != nil {
			return nil, err
		}
	}
	return &hir.IfStatement{Base: pos, Test: test, Consequent: cons, Alternate: alt}, nil
}

// lowerNodeAsStmt lowers a node to a Stmt: the declaration/control heads in
// stmtHeads go straight to their Stmt-producing lowerer (`if` additionally
// needs the loop-context check since only then is it statement-shaped);
// everything else is lowered as an Expr and coerced into an
// ExpressionStatement, the one coercion point spec §3.2 allows.
func (l *Lowerer) lowerNodeAsStmt(n reader.Node) (hir.Stmt, error) {
	if list, ok := n.(*reader.List); ok && len(list.Elements) > 0 {
		if sym, ok := list.Elements[0].(*reader.Symbol); ok {
			if sym.Name == "if" && l.inLoop() {
				return l.lowerIfStmt(list)
			}
			if s, handled, err := l.lowerStmtForm(list, sym); handled {
				return s, err
			}
		}
	}
	e, err := l.lowerNode(n)
	if err != nil {
		return nil, err
	}
	return &hir.ExpressionStatement{Base: hir.At(n.Pos()), Expression: e}, nil
}

// lowerCond right-folds spec §4.2's `cond` clauses into a chain of
// ConditionalExpressions terminated with null; `else`/`true` becomes the
// final alternate.
func (l *Lowerer) lowerCond(list *reader.List) (hir.Expr, error) {
	clauses := list.Elements[1:]
	if len(clauses)%2 != 0 {
		return nil, l.validationErr(list, "cond", "expected an even number of test/result forms, got %d", len(clauses))
	}
	pos := hir.At(list.Pos())
	var result hir.Expr = &hir.NullLiteral{Base: pos}
	for i := len(clauses) - 2; i >= 0; i -= 2 {
		testNode, resultNode := clauses[i], clauses[i+1]
		resultExpr, err := l.lowerNode(resultNode)
		if err != nil {
			return nil, err
		}
		if sym, ok := testNode.(*reader.Symbol); ok && (sym.Name == "else" || sym.Name == "true") {
			result = resultExpr
			continue
		}
		if lit, ok := testNode.(*reader.Literal); ok && lit.Value == true {
			result = resultExpr
			continue
		}
		testExpr, err := l.lowerNode(testNode)
		if err != nil {
			return nil, err
		}
		result = &hir.ConditionalExpression{Base: pos, Test: testExpr, Consequent: resultExpr, Alternate: result}
	}
	return result, nil
}

// lowerDo implements spec §4.2 `do`: 0 -> null; 1 -> the single expression;
// n -> IIFE whose body is all-but-last as statements and the last as a
// ReturnStatement.
func (l *Lowerer) lowerDo(list *reader.List) (hir.Expr, error) {
	body := list.Elements[1:]
	pos := hir.At(list.Pos())
	if len(body) == 0 {
		return &hir.NullLiteral{Base: pos}, nil
	}
	if len(body) == 1 {
		return l.lowerNode(body[0])
	}
	stmts, err := l.lowerBodyStatements(body)
	if err != nil {
		return nil, err
	}
	return wrapIIFE(pos, hir.NewFunctionBody(pos, stmts)), nil
}

// lowerBodyStatements lowers every node to a Stmt, used for do/IIFE bodies
// and function bodies alike (spec §4.5).
func (l *Lowerer) lowerBodyStatements(nodes []reader.Node) ([]hir.Stmt, error) {
	out := make([]hir.Stmt, 0, len(nodes))
	for _, n := range nodes {
		s, err := l.lowerNodeAsStmt(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// wrapIIFE wraps a block body as `(function(){ ...body })()`.
func wrapIIFE(pos hir.Base, body *hir.BlockStatement) hir.Expr {
	return &hir.CallExpression{
		Base:   pos,
		Callee: &hir.FunctionExpression{Base: pos, Body: body},
	}
}

// letVarDeclarators lowers the `(let (n1 v1 n2 v2 ...) ...)` binding list of
// the multi-binding shape of spec §4.2 `let`/`var`.
func (l *Lowerer) letVarDeclarators(kind hir.DeclKind, bindings *reader.List) ([]hir.Stmt, error) {
	if len(bindings.Elements)%2 != 0 {
		return nil, l.validationErr(bindings, "let", "binding list must have an even number of entries")
	}
	var stmts []hir.Stmt
	for i := 0; i < len(bindings.Elements); i += 2 {
		sym, ok := bindings.Elements[i].(*reader.Symbol)
		if !ok {
			return nil, l.validationErr(bindings, "let", "binding name must be a symbol")
		}
		value, err := l.lowerNode(bindings.Elements[i+1])
		if err != nil {
			return nil, err
		}
		declPos := hir.At(bindings.Elements[i].Pos())
		stmts = append(stmts, &hir.VariableDeclaration{
			Base: declPos,
			Kind: kind,
			Declarators: []hir.VariableDeclarator{{
				Id:   &hir.Identifier{Base: declPos, Name: sanitizeIdent(sym.Name)},
				Init: value,
			}},
		})
	}
	return stmts, nil
}

func letVarKind(list *reader.List) hir.DeclKind {
	if sym, ok := list.Elements[0].(*reader.Symbol); ok && sym.Name == "var" {
		return hir.DeclVar
	}
	return hir.DeclConst
}

// lowerLetVarStmt implements spec §4.2's two `let`/`var` shapes as a Stmt:
// `(let name value)` is a single VariableDeclaration; `(let (bindings...)
// body...)` is an IIFE coerced into an ExpressionStatement.
func (l *Lowerer) lowerLetVarStmt(list *reader.List) (hir.Stmt, error) {
	pos := hir.At(list.Pos())
	kind := letVarKind(list)
	args := list.Elements[1:]
	if len(args) < 1 {
		return nil, l.validationErr(list, "let", "expected at least a binding target")
	}
	if _, isList := args[0].(*reader.List); !isList {
		if len(args) != 2 {
			return nil, l.validationErr(list, "let", "single-binding form expects (let name value)")
		}
		sym, ok := args[0].(*reader.Symbol)
		if !ok {
			return nil, l.validationErr(list, "let", "binding target must be a symbol")
		}
		value, err := l.lowerNode(args[1])
		if err != nil {
			return nil, err
		}
		return &hir.VariableDeclaration{
			Base: pos,
			Kind: kind,
			Declarators: []hir.VariableDeclarator{{
				Id:   &hir.Identifier{Base: pos, Name: sanitizeIdent(sym.Name)},
				Init: value,
			}},
		}, nil
	}

	iife, err := l.lowerLetVarIIFE(list, kind, args)
	if err != nil {
		return nil, err
	}
	return &hir.ExpressionStatement{Base: pos, Expression: iife}, nil
}

// lowerLetVarIIFE builds the `(let (bindings...) body...)` IIFE that
// lowerLetVarStmt wraps in an ExpressionStatement. `let`/`var` is a
// statement-only head, so this shape is rejected in expression position.
func (l *Lowerer) lowerLetVarIIFE(list *reader.List, kind hir.DeclKind, args []reader.Node) (hir.Expr, error) {
	bindings := args[0].(*reader.List)
	stmts, err := l.letVarDeclarators(kind, bindings)
	if err != nil {
		return nil, err
	}
	bodyStmts, err := l.lowerBodyStatements(args[1:])
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, bodyStmts...)
	pos := hir.At(list.Pos())
	return wrapIIFE(pos, hir.NewFunctionBody(pos, stmts)), nil
}

// lowerSetBang implements spec §4.2 `set!`: exactly 2 args, `=` assignment.
func (l *Lowerer) lowerSetBang(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 3 {
		return nil, l.validationErr(list, "set!", "expected exactly 2 arguments, got %d", len(list.Elements)-1)
	}
	target, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	value, err := l.lowerNode(list.Elements[2])
	if err != nil {
		return nil, err
	}
	return &hir.AssignmentExpression{Base: hir.At(list.Pos()), Operator: "=", Left: target, Right: value}, nil
}

// lowerReturn implements spec §4.2 `return`: exactly 1 arg.
func (l *Lowerer) lowerReturn(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) != 2 {
		return nil, l.validationErr(list, "return", "expected exactly 1 argument, got %d", len(list.Elements)-1)
	}
	arg, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	return &hir.ReturnStatement{Base: pos, Argument: arg}, nil
}
