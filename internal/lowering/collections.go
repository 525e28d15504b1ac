package lowering

import (
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// lowerVector implements spec §4.2's `vector` row: structural lowering to
// an ArrayExpression of the lowered elements.
func (l *Lowerer) lowerVector(list *reader.List) (hir.Expr, error) {
	elems, err := l.lowerArgs(list.Elements[1:])
	if err != nil {
		return nil, err
	}
	return &hir.ArrayExpression{Base: hir.At(list.Pos()), Elements: elems}, nil
}

func (l *Lowerer) lowerEmptyArray(list *reader.List) (hir.Expr, error) {
	return &hir.ArrayExpression{Base: hir.At(list.Pos())}, nil
}

func (l *Lowerer) lowerEmptyMap(list *reader.List) (hir.Expr, error) {
	return &hir.ObjectExpression{Base: hir.At(list.Pos())}, nil
}

func (l *Lowerer) lowerEmptySet(list *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	return &hir.NewExpression{Base: pos, Callee: &hir.Identifier{Base: pos, Name: "Set"}}, nil
}

// lowerHashMap implements spec §4.2's `hash-map` row: pairs of key/value
// become ObjectExpression properties. Symbol or literal keys become string
// keys; any other key shape is lowered as a computed expression key.
func (l *Lowerer) lowerHashMap(list *reader.List) (hir.Expr, error) {
	args := list.Elements[1:]
	if len(args)%2 != 0 {
		return nil, l.validationErr(list, "hash-map", "expected an even number of key/value forms, got %d", len(args))
	}
	props := make([]hir.Property, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		prop, err := l.lowerHashMapKey(args[i])
		if err != nil {
			return nil, err
		}
		value, err := l.lowerNode(args[i+1])
		if err != nil {
			return nil, err
		}
		prop.Value = value
		props = append(props, prop)
	}
	return &hir.ObjectExpression{Base: hir.At(list.Pos()), Properties: props}, nil
}

func (l *Lowerer) lowerHashMapKey(n reader.Node) (hir.Property, error) {
	switch v := n.(type) {
	case *reader.Symbol:
		return hir.Property{Key: v.Name}, nil
	case *reader.Literal:
		if s, ok := v.Value.(string); ok {
			return hir.Property{Key: s}, nil
		}
		e := l.lowerLiteral(v)
		return hir.Property{Computed: true, KeyExpr: e}, nil
	default:
		e, err := l.lowerNode(n)
		if err != nil {
			return hir.Property{}, err
		}
		return hir.Property{Computed: true, KeyExpr: e}, nil
	}
}

// lowerHashSet implements spec §4.2's `hash-set` row: `new Set([elems])`.
func (l *Lowerer) lowerHashSet(list *reader.List) (hir.Expr, error) {
	elems, err := l.lowerArgs(list.Elements[1:])
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	return &hir.NewExpression{
		Base:   pos,
		Callee: &hir.Identifier{Base: pos, Name: "Set"},
		Args:   []hir.Expr{&hir.ArrayExpression{Base: pos, Elements: elems}},
	}, nil
}

// lowerGet implements spec §4.2's `get` row: `(get obj key)` -> a
// MemberExpression, computed unless key is a bare identifier literal.
func (l *Lowerer) lowerGet(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 3 {
		return nil, l.validationErr(list, "get", "expected exactly 2 arguments, got %d", len(list.Elements)-1)
	}
	obj, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	pos := hir.At(list.Pos())
	if sym, ok := list.Elements[2].(*reader.Symbol); ok {
		return &hir.MemberExpression{
			Base:     pos,
			Object:   obj,
			Property: &hir.Identifier{Base: pos, Name: sanitizeIdent(sym.Name)},
			Computed: false,
		}, nil
	}
	key, err := l.lowerNode(list.Elements[2])
	if err != nil {
		return nil, err
	}
	return &hir.MemberExpression{Base: pos, Object: obj, Property: key, Computed: true}, nil
}

// lowerNew implements spec §4.2's `new` row: `(new Ctor args...)`.
func (l *Lowerer) lowerNew(list *reader.List) (hir.Expr, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "new", "expected (new Ctor args...)")
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
