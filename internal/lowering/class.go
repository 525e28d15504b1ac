package lowering

import (
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// lowerClass implements spec §4.7: `(class Name member...)`. Each member is
// itself a list headed by `var`/`let` (field), `constructor`, `fn`
// (untyped method), or `fx` (typed method); any other head is rejected.
func (l *Lowerer) lowerClass(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "class", "expected (class Name member...)")
	}
	nameSym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(list, "class", "class name must be a symbol")
	}
	pos := hir.At(list.Pos())
	members := make([]hir.ClassMember, 0, len(list.Elements)-2)
	for _, m := range list.Elements[2:] {
		member, err := l.lowerClassMember(m)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return &hir.ClassDeclaration{
		Base:    pos,
		Id:      &hir.Identifier{Base: pos, Name: sanitizeIdent(nameSym.Name)},
		Members: members,
	}, nil
}

func (l *Lowerer) lowerClassMember(n reader.Node) (hir.ClassMember, error) {
	list, ok := n.(*reader.List)
	if !ok || len(list.Elements) == 0 {
		return nil, l.validationErr(n, "class", "malformed class member declarator")
	}
	head, ok := list.Elements[0].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(n, "class", "malformed class member declarator")
	}
	switch head.Name {
	case "var", "let":
		return l.lowerFieldMember(list, head.Name == "var")
	case "constructor":
		return l.lowerConstructorMember(list)
	case "fn":
		return l.lowerMethodMember(list, false)
	case "fx":
		return l.lowerMethodMember(list, true)
	default:
		return nil, l.validationErr(list, "class", "unrecognized class member head %q", head.Name)
	}
}

// lowerFieldMember implements the `var name [init]` / `let name [init]`
// member shape.
func (l *Lowerer) lowerFieldMember(list *reader.List, mutable bool) (*hir.FieldMember, error) {
	if len(list.Elements) < 2 || len(list.Elements) > 3 {
		return nil, l.validationErr(list, "class field", "expected (var|let name [init])")
	}
	sym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(list, "class field", "field name must be a symbol")
	}
	var init hir.Expr
	if len(list.Elements) == 3 {
		v, err := l.lowerNode(list.Elements[2])
		if err != nil {
			return nil, err
		}
		init = v
	}
	return &hir.FieldMember{
		Base:    hir.At(list.Pos()),
		Name:    sanitizeIdent(sym.Name),
		Mutable: mutable,
		Init:    init,
	}, nil
}

// lowerConstructorMember implements `(constructor (params...) body)`: body
// is one expression or a `(do ...)` whose children become statements; an
// implicit `return this` is appended if none is present; `self` is
// rewritten to `this` throughout.
func (l *Lowerer) lowerConstructorMember(list *reader.List) (*hir.ConstructorMember, error) {
	if len(list.Elements) < 3 {
		return nil, l.validationErr(list, "constructor", "expected (constructor (params...) body)")
	}
	paramList, ok := list.Elements[1].(*reader.List)
	if !ok {
		return nil, l.validationErr(list, "constructor", "expected a parameter list")
	}
	params, err := l.parseUntypedParams(paramList)
	if err != nil {
		return nil, err
	}
	bodyNodes := constructorBodyNodes(list.Elements[2:])
	stmts, err := l.lowerBodyStatements(bodyNodes)
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	if !endsInReturn(stmts) {
		stmts = append(stmts, &hir.ReturnStatement{Base: pos, Argument: &hir.Identifier{Base: pos, Name: "this"}})
	}
	body := hir.NewBlock(pos, stmts)
	rewriteSelfToThis(body)
	return &hir.ConstructorMember{Base: pos, Params: params, Body: body}, nil
}

// constructorBodyNodes normalizes the constructor body shape: a single
// `(do ...)` form's children become the statement sequence directly,
// otherwise every remaining element is its own statement.
func constructorBodyNodes(elems []reader.Node) []reader.Node {
	if len(elems) == 1 {
		if list, ok := elems[0].(*reader.List); ok && len(list.Elements) > 0 {
			if sym, ok := list.Elements[0].(*reader.Symbol); ok && sym.Name == "do" {
				return list.Elements[1:]
			}
		}
	}
	return elems
}

func endsInReturn(stmts []hir.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	_, ok := stmts[len(stmts)-1].(*hir.ReturnStatement)
	return ok
}

// lowerMethodMember implements `(fn name (params) body...)` and
// `(fx name (params) (-> Type) body...)`.
func (l *Lowerer) lowerMethodMember(list *reader.List, typed bool) (*hir.MethodMember, error) {
	minLen := 3
	if typed {
		minLen = 4
	}
	if len(list.Elements) < minLen {
		return nil, l.validationErr(list, "method", "malformed method declarator")
	}
	nameSym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(list, "method", "method name must be a symbol")
	}
	paramList, ok := list.Elements[2].(*reader.List)
	if !ok {
		return nil, l.validationErr(list, "method", "expected a parameter list")
	}
	pos := hir.At(list.Pos())
	name := sanitizeIdent(nameSym.Name)

	if !typed {
		params, err := l.parseUntypedParams(paramList)
		if err != nil {
			return nil, err
		}
		body, err := l.lowerFunctionBody(pos, list.Elements[3:])
		if err != nil {
			return nil, err
		}
		rewriteSelfToThis(body)
		return &hir.MethodMember{Base: pos, Name: name, Params: params, Body: body}, nil
	}

	fxParams, err := l.parseTypedParams(paramList)
	if err != nil {
		return nil, err
	}
	returnType, err := l.parseReturnArrow(list.Elements[3])
	if err != nil {
		return nil, err
	}
	body, err := l.lowerFunctionBody(pos, list.Elements[4:])
	if err != nil {
		return nil, err
	}
	rewriteSelfToThis(body)
	return &hir.MethodMember{
		Base:       pos,
		Name:       name,
		Typed:      true,
		FxParams:   fxParams,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

// rewriteSelfToThis tree-walks a constructor/method body replacing every
// Identifier named "self" with "this" (spec §4.7).
func rewriteSelfToThis(body *hir.BlockStatement) {
	for _, s := range body.Body {
		rewriteSelfStmt(s)
	}
}

func rewriteSelfExpr(e hir.Expr) hir.Expr {
	switch v := e.(type) {
	case nil:
		return nil
	case *hir.Identifier:
		if v.Name == "self" {
			return &hir.Identifier{Base: v.Base, Name: "this"}
		}
		return v
	case *hir.MemberExpression:
		v.Object = rewriteSelfExpr(v.Object)
		if v.Computed {
			v.Property = rewriteSelfExpr(v.Property)
		}
		return v
	case *hir.CallExpression:
		v.Callee = rewriteSelfExpr(v.Callee)
		for i := range v.Args {
			v.Args[i] = rewriteSelfExpr(v.Args[i])
		}
		return v
	case *hir.AssignmentExpression:
		v.Left = rewriteSelfExpr(v.Left)
		v.Right = rewriteSelfExpr(v.Right)
		return v
	case *hir.BinaryExpression:
		v.Left = rewriteSelfExpr(v.Left)
		v.Right = rewriteSelfExpr(v.Right)
		return v
	case *hir.UnaryExpression:
		v.Argument = rewriteSelfExpr(v.Argument)
		return v
	case *hir.ConditionalExpression:
		v.Test = rewriteSelfExpr(v.Test)
		v.Consequent = rewriteSelfExpr(v.Consequent)
		v.Alternate = rewriteSelfExpr(v.Alternate)
		return v
	case *hir.ArrayExpression:
		for i := range v.Elements {
			v.Elements[i] = rewriteSelfExpr(v.Elements[i])
		}
		return v
	case *hir.ObjectExpression:
		for i := range v.Properties {
			v.Properties[i].Value = rewriteSelfExpr(v.Properties[i].Value)
		}
		return v
	case *hir.NewExpression:
		v.Callee = rewriteSelfExpr(v.Callee)
		for i := range v.Args {
			v.Args[i] = rewriteSelfExpr(v.Args[i])
		}
		return v
	case *hir.GetAndCall:
		v.Object = rewriteSelfExpr(v.Object)
		for i := range v.Args {
			v.Args[i] = rewriteSelfExpr(v.Args[i])
		}
		return v
	case *hir.CallMemberExpression:
		v.Object = rewriteSelfExpr(v.Object)
		for i := range v.Args {
			v.Args[i] = rewriteSelfExpr(v.Args[i])
		}
		return v
	case *hir.JsMethodAccess:
		v.Object = rewriteSelfExpr(v.Object)
		return v
	case *hir.InteropIIFE:
		v.Object = rewriteSelfExpr(v.Object)
		v.Property = rewriteSelfExpr(v.Property)
		return v
	default:
		return e
	}
}

func rewriteSelfStmt(s hir.Stmt) {
	switch v := s.(type) {
	case *hir.ExpressionStatement:
		v.Expression = rewriteSelfExpr(v.Expression)
	case *hir.ReturnStatement:
		v.Argument = rewriteSelfExpr(v.Argument)
	case *hir.VariableDeclaration:
		for i := range v.Declarators {
			v.Declarators[i].Init = rewriteSelfExpr(v.Declarators[i].Init)
		}
	case *hir.IfStatement:
		v.Test = rewriteSelfExpr(v.Test)
		rewriteSelfStmt(v.Consequent)
		if v.Alternate != nil {
			rewriteSelfStmt(v.Alternate)
		}
	case *hir.BlockStatement:
		for _, inner := range v.Body {
			rewriteSelfStmt(inner)
		}
	}
}
