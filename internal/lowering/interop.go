package lowering

import (
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// lowerJsNew implements spec §4.2's `js-new`: verbatim `new Ctor(args...)`.
func (l *Lowerer) lowerJsNew(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "js-new", "expected (js-new Ctor args...)")
	}
	callee, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	args, err := l.lowerArgs(list.Elements[2:])
	if err != nil {
		return nil, err
	}
	return &hir.NewExpression{Base: hir.At(list.Pos()), Callee: callee, Args: args}, nil
}

// lowerJsGet implements spec §4.2's `js-get`: `(js-get obj prop)`.
func (l *Lowerer) lowerJsGet(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 3 {
		return nil, l.validationErr(list, "js-get", "expected exactly 2 arguments, got %d", len(list.Elements)-1)
	}
	return l.memberFromProp(list.Elements[1], list.Elements[2])
}

// lowerJsSet implements spec §4.2's `js-set`: `(js-set obj prop value)`.
func (l *Lowerer) lowerJsSet(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 4 {
		return nil, l.validationErr(list, "js-set", "expected exactly 3 arguments, got %d", len(list.Elements)-1)
	}
	member, err := l.memberFromProp(list.Elements[1], list.Elements[2])
	if err != nil {
		return nil, err
	}
	value, err := l.lowerNode(list.Elements[3])
	if err != nil {
		return nil, err
	}
	return &hir.AssignmentExpression{Base: hir.At(list.Pos()), Operator: "=", Left: member, Right: value}, nil
}

// lowerJsCall implements spec §4.2's `js-call`: `(js-call fn args...)`.
func (l *Lowerer) lowerJsCall(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "js-call", "expected (js-call fn args...)")
	}
	callee, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	args, err := l.lowerArgs(list.Elements[2:])
	if err != nil {
		return nil, err
	}
	return &hir.CallExpression{Base: hir.At(list.Pos()), Callee: callee, Args: args}, nil
}

// lowerJsGetInvoke implements the general (3+ args) shape of spec §4.2's
// `js-get-invoke`: `(js-get-invoke obj prop args...)` -> `obj[prop](args)`.
// The exactly-2-argument shortcut is handled by lowerJsGetInvokeShortcut,
// dispatched ahead of the reserved-head table per spec §4.1 step 2.
func (l *Lowerer) lowerJsGetInvoke(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) < 3 {
		return nil, l.validationErr(list, "js-get-invoke", "expected (js-get-invoke obj prop args...)")
	}
	member, err := l.memberFromProp(list.Elements[1], list.Elements[2])
	if err != nil {
		return nil, err
	}
	args, err := l.lowerArgs(list.Elements[3:])
	if err != nil {
		return nil, err
	}
	return &hir.CallExpression{Base: hir.At(list.Pos()), Callee: member, Args: args}, nil
}

// lowerJsGetInvokeShortcut implements spec §4.1 step 2: the exact 2-arg
// shape `(js-get-invoke obj prop)` emits a bare MemberExpression.
func (l *Lowerer) lowerJsGetInvokeShortcut(list *reader.List) (hir.Expr, error) {
	return l.memberFromProp(list.Elements[1], list.Elements[2])
}

// memberFromProp is the shared `obj[prop]`/`obj.prop` builder: computed
// unless prop is a bare identifier literal (spec §4.1 step 2 wording,
// reused by the js-get/js-set/js-get-invoke family).
func (l *Lowerer) memberFromProp(objNode, propNode reader.Node) (hir.Expr, error) {
	obj, err := l.lowerNode(objNode)
	if err != nil {
		return nil, err
	}
	pos := hir.At(objNode.Pos())
	if sym, ok := propNode.(*reader.Symbol); ok {
		return &hir.MemberExpression{
			Base:     pos,
			Object:   obj,
			Property: &hir.Identifier{Base: pos, Name: sanitizeIdent(sym.Name)},
			Computed: false,
		}, nil
	}
	prop, err := l.lowerNode(propNode)
	if err != nil {
		return nil, err
	}
	return &hir.MemberExpression{Base: pos, Object: obj, Property: prop, Computed: true}, nil
}

// lowerJsMethodAccess implements the `js-method-access` form (SPEC_FULL
// §13): a bound-method-or-value read with no call.
func (l *Lowerer) lowerJsMethodAccess(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 3 {
		return nil, l.validationErr(list, "js-method-access", "expected exactly 2 arguments, got %d", len(list.Elements)-1)
	}
	obj, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	name, err := l.methodNameOf(list.Elements[2])
	if err != nil {
		return nil, err
	}
	return &hir.JsMethodAccess{Base: hir.At(list.Pos()), Object: obj, MethodName: name}, nil
}

// lowerJsInteropGet implements the `js-interop-get` form (SPEC_FULL §13): a
// dynamic property read that might resolve to a bound method.
func (l *Lowerer) lowerJsInteropGet(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 3 {
		return nil, l.validationErr(list, "js-interop-get", "expected exactly 2 arguments, got %d", len(list.Elements)-1)
	}
	obj, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	prop, err := l.lowerNode(list.Elements[2])
	if err != nil {
		return nil, err
	}
	return &hir.InteropIIFE{Base: hir.At(list.Pos()), Object: obj, Property: prop}, nil
}

// lowerMethodCall implements spec §4.2's `method-call`: emits GetAndCall.
func (l *Lowerer) lowerMethodCall(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) < 3 {
		return nil, l.validationErr(list, "method-call", "expected (method-call obj methodName args...)")
	}
	obj, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	name, err := l.methodNameOf(list.Elements[2])
	if err != nil {
		return nil, err
	}
	args, err := l.lowerArgs(list.Elements[3:])
	if err != nil {
		return nil, err
	}
	return &hir.GetAndCall{Base: hir.At(list.Pos()), Object: obj, MethodName: name, Args: args}, nil
}

func (l *Lowerer) methodNameOf(n reader.Node) (string, error) {
	switch v := n.(type) {
	case *reader.Symbol:
		return sanitizeIdent(v.Name), nil
	case *reader.Literal:
		if s, ok := v.Value.(string); ok {
			return s, nil
		}
	}
	return "", l.validationErr(n, "method name", "expected a symbol or string method name")
}
