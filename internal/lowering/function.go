package lowering

import (
	"strings"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// lowerFn implements spec §4.2 `fn`: an untyped function, registered in the
// fn registry (spec §3.3), with positional/`&`-rest/`=`-defaulted params.
func (l *Lowerer) lowerFn(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) < 3 {
		return nil, l.validationErr(list, "fn", "expected (fn name (params) body...)")
	}
	nameSym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(list, "fn", "function name must be a symbol")
	}
	paramList, ok := list.Elements[2].(*reader.List)
	if !ok {
		return nil, l.validationErr(list, "fn", "expected a parameter list")
	}
	params, err := l.parseUntypedParams(paramList)
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	body, err := l.lowerFunctionBody(pos, list.Elements[3:])
	if err != nil {
		return nil, err
	}
	name := sanitizeIdent(nameSym.Name)
	l.ctx.Registries.Fn[name] = &hir.FnDecl{Name: name, Params: params}
	return &hir.FunctionDeclaration{
		Base:   pos,
		Id:     &hir.Identifier{Base: pos, Name: name},
		Params: params,
		Body:   body,
	}, nil
}

// lowerLambda implements spec §4.2 `lambda`: same parameter grammar as
// `fn`, but unnamed and never registered.
func (l *Lowerer) lowerLambda(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "lambda", "expected (lambda (params) body...)")
	}
	paramList, ok := list.Elements[1].(*reader.List)
	if !ok {
		return nil, l.validationErr(list, "lambda", "expected a parameter list")
	}
	params, err := l.parseUntypedParams(paramList)
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	body, err := l.lowerFunctionBody(pos, list.Elements[2:])
	if err != nil {
		return nil, err
	}
	return &hir.FunctionExpression{Base: pos, Params: params, Body: body}, nil
}

// lowerFx implements spec §4.2 `fx`: a typed pure function. Parameters use
// `name: Type` syntax with an optional `= default`; `(-> Type)` is
// mandatory. The body is rewritten with a per-parameter deep-copy prelude
// (spec Design Notes, SPEC_FULL §11.8).
func (l *Lowerer) lowerFx(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) < 4 {
		return nil, l.validationErr(list, "fx", "expected (fx name (params) (-> Type) body...)")
	}
	nameSym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(list, "fx", "function name must be a symbol")
	}
	paramList, ok := list.Elements[2].(*reader.List)
	if !ok {
		return nil, l.validationErr(list, "fx", "expected a parameter list")
	}
	params, err := l.parseTypedParams(paramList)
	if err != nil {
		return nil, err
	}
	returnType, err := l.parseReturnArrow(list.Elements[3])
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	bodyStmts, err := l.lowerBodyStatements(list.Elements[4:])
	if err != nil {
		return nil, err
	}
	bodyStmts = append(deepCopyPrelude(pos, params), bodyStmts...)
	body := hir.NewFunctionBody(pos, bodyStmts)

	name := sanitizeIdent(nameSym.Name)
	l.ctx.Registries.Fx[name] = &hir.FxDecl{Name: name, Params: params, ReturnType: returnType}
	return &hir.FxFunctionDeclaration{
		Base:       pos,
		Id:         &hir.Identifier{Base: pos, Name: name},
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

// parseReturnArrow parses the mandatory `(-> Type)` trailing fx form.
func (l *Lowerer) parseReturnArrow(n reader.Node) (string, error) {
	arrow, ok := n.(*reader.List)
	if !ok || len(arrow.Elements) != 2 {
		return "", l.validationErr(n, "fx", "expected a (-> Type) return type")
	}
	head, ok := arrow.Elements[0].(*reader.Symbol)
	if !ok || head.Name != "->" {
		return "", l.validationErr(n, "fx", "expected a (-> Type) return type")
	}
	typeSym, ok := arrow.Elements[1].(*reader.Symbol)
	if !ok {
		return "", l.validationErr(n, "fx", "return type must be a symbol")
	}
	return typeSym.Name, nil
}

// parseUntypedParams parses the `fn`/`lambda` parameter grammar: positional
// names, a trailing `&rest`-style variadic marked by a leading `&`, and
// `name = default` defaulted positions.
func (l *Lowerer) parseUntypedParams(list *reader.List) ([]hir.Param, error) {
	var params []hir.Param
	elems := list.Elements
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(*reader.Symbol)
		if !ok {
			return nil, l.validationErr(elems[i], "params", "parameter name must be a symbol")
		}
		name := sym.Name
		variadic := false
		if strings.HasPrefix(name, "&") {
			variadic = true
			name = strings.TrimPrefix(name, "&")
		}
		var def hir.Expr
		if i+2 < len(elems) {
			if eq, ok := elems[i+1].(*reader.Symbol); ok && eq.Name == "=" {
				d, err := l.lowerNode(elems[i+2])
				if err != nil {
					return nil, err
				}
				def = d
				i += 2
			}
		}
		params = append(params, hir.Param{Name: sanitizeIdent(name), Default: def, Variadic: variadic})
	}
	return params, nil
}

// parseTypedParams parses the `fx` parameter grammar: `name: Type` with an
// optional `= default`.
func (l *Lowerer) parseTypedParams(list *reader.List) ([]hir.FxParam, error) {
	var params []hir.FxParam
	elems := list.Elements
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(*reader.Symbol)
		if !ok || !sym.IsNamedArg() {
			return nil, l.validationErr(elems[i], "fx params", "expected a `name:` typed parameter")
		}
		name := sanitizeIdent(strings.TrimSuffix(sym.Name, ":"))
		if i+1 >= len(elems) {
			return nil, l.validationErr(elems[i], "fx params", "parameter %q is missing its type", name)
		}
		typeSym, ok := elems[i+1].(*reader.Symbol)
		if !ok {
			return nil, l.validationErr(elems[i+1], "fx params", "parameter %q's type must be a symbol", name)
		}
		i++
		var def hir.Expr
		if i+2 < len(elems) {
			if eq, ok := elems[i+1].(*reader.Symbol); ok && eq.Name == "=" {
				d, err := l.lowerNode(elems[i+2])
				if err != nil {
					return nil, err
				}
				def = d
				i += 2
			}
		}
		params = append(params, hir.FxParam{Name: name, TypeName: typeSym.Name, Default: def})
	}
	return params, nil
}

// lowerFunctionBody implements spec §4.5: lower e1..en-1 as statements,
// then wrap en in a ReturnStatement unless it already is one.
func (l *Lowerer) lowerFunctionBody(pos hir.Base, body []reader.Node) (*hir.BlockStatement, error) {
	stmts, err := l.lowerBodyStatements(body)
	if err != nil {
		return nil, err
	}
	return hir.NewFunctionBody(pos, stmts), nil
}
