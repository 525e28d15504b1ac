package lowering

import (
	"strings"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// namedArg pairs a named-argument key token with its value node.
type namedArg struct {
	key   *reader.Symbol
	value reader.Node
}

// hasNamedArg reports whether args contains a named-argument key symbol
// (spec §4.3 step 1): a symbol ending in ':' immediately followed by a
// value.
func hasNamedArg(args []reader.Node) bool {
	for i, a := range args {
		if sym, ok := a.(*reader.Symbol); ok && sym.IsNamedArg() && i+1 < len(args) {
			return true
		}
	}
	return false
}

func collectNamedArgs(args []reader.Node) []namedArg {
	out := make([]namedArg, 0, len(args)/2)
	for i := 0; i < len(args); i++ {
		if sym, ok := args[i].(*reader.Symbol); ok && sym.IsNamedArg() && i+1 < len(args) {
			out = append(out, namedArg{key: sym, value: args[i+1]})
			i++
		}
	}
	return out
}

func namedArgKey(sym *reader.Symbol) string {
	return strings.TrimSuffix(sym.Name, ":")
}

// lowerStandardCall implements spec §4.3's call-site binding procedure for a
// symbol-headed call `(f arg...)` that matched no special form.
func (l *Lowerer) lowerStandardCall(list *reader.List, sym *reader.Symbol) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	args := list.Elements[1:]
	callee := &hir.Identifier{Base: pos, Name: sanitizeIdent(sym.Name)}

	if hasNamedArg(args) {
		if err := l.rejectMixedArgs(args); err != nil {
			return nil, err
		}
		return l.lowerNamedCall(pos, callee, sym.Name, collectNamedArgs(args))
	}
	return l.lowerPositionalCall(pos, callee, sym.Name, args)
}

// rejectMixedArgs implements spec §4.3's "mixed positional-and-named
// arguments are rejected" rule.
func (l *Lowerer) rejectMixedArgs(args []reader.Node) error {
	for i := 0; i < len(args); i++ {
		sym, ok := args[i].(*reader.Symbol)
		if ok && sym.IsNamedArg() && i+1 < len(args) {
			i++
			continue
		}
		return l.validationErr(args[i], "call", "mixed positional and named arguments are not allowed")
	}
	return nil
}

// lowerNamedCall implements spec §4.3's Named calls rules.
func (l *Lowerer) lowerNamedCall(pos hir.Base, callee *hir.Identifier, name string, named []namedArg) (hir.Expr, error) {
	if fx, ok := l.ctx.Registries.Fx[sanitizeIdent(name)]; ok {
		args, err := l.bindNamedToFx(pos, fx, named)
		if err != nil {
			return nil, err
		}
		return &hir.CallExpression{Base: pos, Callee: callee, Args: args}, nil
	}
	if fn, ok := l.ctx.Registries.Fn[sanitizeIdent(name)]; ok {
		args, err := l.bindNamedToFn(pos, fn, named)
		if err != nil {
			return nil, err
		}
		return &hir.CallExpression{Base: pos, Callee: callee, Args: args}, nil
	}

	props := make([]hir.Property, len(named))
	for i, na := range named {
		value, err := l.namedArgValue(na)
		if err != nil {
			return nil, err
		}
		props[i] = hir.Property{Key: namedArgKey(na.key), Value: value}
	}
	return &hir.CallExpression{
		Base:   pos,
		Callee: callee,
		Args:   []hir.Expr{&hir.ObjectExpression{Base: pos, Properties: props}},
	}, nil
}

func (l *Lowerer) namedArgValue(na namedArg) (hir.Expr, error) {
	if sym, ok := na.value.(*reader.Symbol); ok && sym.Name == "_" {
		return nil, l.validationErr(na.value, "call", "placeholder `_` is only valid for a registered function's defaulted parameter")
	}
	return l.lowerNode(na.value)
}

func (l *Lowerer) bindNamedToFx(pos hir.Base, fx *hir.FxDecl, named []namedArg) ([]hir.Expr, error) {
	byName := map[string]namedArg{}
	for _, na := range named {
		key := namedArgKey(na.key)
		if _, dup := byName[key]; dup {
			return nil, l.validationErr(na.key, "call", "duplicate named argument %q", key)
		}
		byName[key] = na
	}
	for k := range byName {
		found := false
		for _, p := range fx.Params {
			if p.Name == k {
				found = true
				break
			}
		}
		if !found {
			return nil, l.validationErr(byName[k].key, "call", "unknown parameter %q for %q", k, fx.Name)
		}
	}
	args := make([]hir.Expr, len(fx.Params))
	for i, p := range fx.Params {
		na, ok := byName[p.Name]
		if !ok {
			if p.Default == nil {
				return nil, l.validationErr(nil, "call", "missing required argument %q for %q", p.Name, fx.Name)
			}
			args[i] = p.Default
			continue
		}
		if sym, ok := na.value.(*reader.Symbol); ok && sym.Name == "_" {
			if p.Default == nil {
				return nil, l.validationErr(na.value, "call", "parameter %q has no default to select with `_`", p.Name)
			}
			args[i] = p.Default
			continue
		}
		v, err := l.lowerNode(na.value)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (l *Lowerer) bindNamedToFn(pos hir.Base, fn *hir.FnDecl, named []namedArg) ([]hir.Expr, error) {
	byName := map[string]namedArg{}
	for _, na := range named {
		key := namedArgKey(na.key)
		if _, dup := byName[key]; dup {
			return nil, l.validationErr(na.key, "call", "duplicate named argument %q", key)
		}
		byName[key] = na
	}
	for k := range byName {
		found := false
		for _, p := range fn.Params {
			if p.Name == k {
				found = true
				break
			}
		}
		if !found {
			return nil, l.validationErr(byName[k].key, "call", "unknown parameter %q for %q", k, fn.Name)
		}
	}
	args := make([]hir.Expr, len(fn.Params))
	for i, p := range fn.Params {
		na, ok := byName[p.Name]
		if !ok {
			if p.Default == nil {
				return nil, l.validationErr(nil, "call", "missing required argument %q for %q", p.Name, fn.Name)
			}
			args[i] = p.Default
			continue
		}
		if sym, ok := na.value.(*reader.Symbol); ok && sym.Name == "_" {
			if p.Default == nil {
				return nil, l.validationErr(na.value, "call", "parameter %q has no default to select with `_`", p.Name)
			}
			args[i] = p.Default
			continue
		}
		v, err := l.lowerNode(na.value)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// lowerPositionalCall implements spec §4.3's positional-call rules for both
// registered and unregistered callees.
func (l *Lowerer) lowerPositionalCall(pos hir.Base, callee *hir.Identifier, name string, args []reader.Node) (hir.Expr, error) {
	key := sanitizeIdent(name)
	if fx, ok := l.ctx.Registries.Fx[key]; ok {
		bound, err := l.bindPositionalTyped(pos, fx.Name, fxParamsToParams(fx.Params), args)
		if err != nil {
			return nil, err
		}
		return &hir.CallExpression{Base: pos, Callee: callee, Args: bound}, nil
	}
	if fn, ok := l.ctx.Registries.Fn[key]; ok {
		bound, err := l.bindPositionalTyped(pos, fn.Name, fn.Params, args)
		if err != nil {
			return nil, err
		}
		return &hir.CallExpression{Base: pos, Callee: callee, Args: bound}, nil
	}

	lowered, err := l.lowerArgsWithPlaceholderCheck(args)
	if err != nil {
		return nil, err
	}
	return &hir.CallExpression{Base: pos, Callee: callee, Args: lowered}, nil
}

func fxParamsToParams(fx []hir.FxParam) []hir.Param {
	out := make([]hir.Param, len(fx))
	for i, p := range fx {
		out[i] = hir.Param{Name: p.Name, Default: p.Default}
	}
	return out
}

// bindPositionalTyped implements spec §4.3's "Positional calls to registered
// typed/untyped functions" rules.
func (l *Lowerer) bindPositionalTyped(pos hir.Base, fname string, params []hir.Param, args []reader.Node) ([]hir.Expr, error) {
	variadic := len(params) > 0 && params[len(params)-1].Variadic

	if !variadic && len(args) > len(params) {
		loc := args[len(params)]
		return nil, l.validationErr(loc, "call", "too many arguments to %q: expected %d, got %d", fname, len(params), len(args))
	}

	out := make([]hir.Expr, 0, len(params))
	for i, p := range params {
		if p.Variadic {
			for _, extra := range args[i:] {
				v, err := l.lowerNode(extra)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		}
		if i >= len(args) {
			if p.Default == nil {
				loc := reader.Node(nil)
				if len(args) > 0 {
					loc = args[0]
				}
				return nil, l.validationErr(loc, "call", "missing required argument %q for %q", p.Name, fname)
			}
			out = append(out, p.Default)
			continue
		}
		if sym, ok := args[i].(*reader.Symbol); ok && sym.Name == "_" {
			if p.Default == nil {
				return nil, l.validationErr(args[i], "call", "parameter %q has no default to select with `_`", p.Name)
			}
			out = append(out, p.Default)
			continue
		}
		v, err := l.lowerNode(args[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// lowerArgsWithPlaceholderCheck lowers positional arguments to an unknown
// callee; `_` has no registered default to resolve against there.
func (l *Lowerer) lowerArgsWithPlaceholderCheck(args []reader.Node) ([]hir.Expr, error) {
	out := make([]hir.Expr, 0, len(args))
	for _, a := range args {
		if sym, ok := a.(*reader.Symbol); ok && sym.Name == "_" {
			return nil, l.validationErr(a, "call", "placeholder `_` is only valid in a call to a registered function")
		}
		v, err := l.lowerNode(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// lowerStandardCallGeneric implements spec §4.1 step 6: a non-symbol,
// non-list head (e.g. a literal) in callee position.
func (l *Lowerer) lowerStandardCallGeneric(list *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	callee, err := l.lowerNode(list.Elements[0])
	if err != nil {
		return nil, err
	}
	args, err := l.lowerArgs(list.Elements[1:])
	if err != nil {
		return nil, err
	}
	return &hir.CallExpression{Base: pos, Callee: callee, Args: args}, nil
}

// lowerNestedListHead implements spec §4.6: the callee position is itself a
// list.
func (l *Lowerer) lowerNestedListHead(list *reader.List, headList *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	inner, err := l.lowerNode(headList)
	if err != nil {
		return nil, err
	}
	rest := list.Elements[1:]

	if len(rest) == 0 {
		return inner, nil
	}

	if sym, ok := rest[0].(*reader.Symbol); ok && len(sym.Name) > 1 && sym.Name[0] == '.' {
		args, err := l.lowerArgs(rest[1:])
		if err != nil {
			return nil, err
		}
		methodName := sanitizeIdent(sym.Name[1:])
		return &hir.CallExpression{
			Base: pos,
			Callee: &hir.MemberExpression{
				Base:     pos,
				Object:   inner,
				Property: &hir.Identifier{Base: pos, Name: methodName},
				Computed: false,
			},
			Args: args,
		}, nil
	}

	if sym, ok := rest[0].(*reader.Symbol); ok && len(rest) == 1 {
		return &hir.MemberExpression{
			Base:     pos,
			Object:   inner,
			Property: &hir.Identifier{Base: pos, Name: sanitizeIdent(sym.Name)},
			Computed: false,
		}, nil
	}

	args, err := l.lowerArgs(rest)
	if err != nil {
		return nil, err
	}
	return &hir.CallExpression{Base: pos, Callee: inner, Args: args}, nil
}
