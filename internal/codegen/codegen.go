// Package codegen converts internal/hir into internal/jsast (spec §4.9):
// the HIR→Target AST conversion layer. Most nodes carry straight across
// structurally; a handful of HIR-only variants (CallMemberExpression,
// EnumDeclaration, GetAndCall/JsMethodAccess/InteropIIFE, FxFunctionDeclaration)
// expand into the plain JS shapes described by the spec's conversion table.
package codegen

import (
	"fmt"
	"strings"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/jsast"
)

// Generate converts a whole lowered program into a printable jsast.Program.
func Generate(program []hir.Stmt) *jsast.Program {
	out := make([]jsast.Stmt, 0, len(program))
	for _, s := range program {
		out = append(out, convertStmt(s))
	}
	return &jsast.Program{Body: out}
}

// --- Statements ---

func convertStmt(s hir.Stmt) jsast.Stmt {
	switch v := s.(type) {
	case nil:
		return nil
	case *hir.VariableDeclaration:
		decls := make([]jsast.VariableDeclarator, len(v.Declarators))
		for i, d := range v.Declarators {
			decls[i] = jsast.VariableDeclarator{
				Id:   convertIdentifier(d.Id),
				Init: convertExpr(d.Init),
			}
		}
		return &jsast.VariableDeclaration{Base: jsast.At(v.Pos()), Kind: declKind(v.Kind), Declarators: decls}

	case *hir.ExpressionStatement:
		if isNoopGetPlaceholder(v.Expression) {
			return &jsast.ExpressionStatement{Base: jsast.At(v.Pos()), Expression: &jsast.NullLiteral{Base: jsast.At(v.Pos())}}
		}
		return &jsast.ExpressionStatement{Base: jsast.At(v.Pos()), Expression: convertExpr(v.Expression)}

	case *hir.BlockStatement:
		return convertBlock(v)

	case *hir.IfStatement:
		out := &jsast.IfStatement{Base: jsast.At(v.Pos()), Test: convertExpr(v.Test), Consequent: convertStmt(v.Consequent)}
		if v.Alternate != nil {
			out.Alternate = convertStmt(v.Alternate)
		}
		return out

	case *hir.ReturnStatement:
		return &jsast.ReturnStatement{Base: jsast.At(v.Pos()), Argument: convertExpr(v.Argument)}

	case *hir.FunctionDeclaration:
		return &jsast.FunctionDeclaration{
			Base:   jsast.At(v.Pos()),
			Id:     convertIdentifier(v.Id),
			Params: convertParams(v.Params),
			Body:   convertBlock(v.Body),
		}

	case *hir.FxFunctionDeclaration:
		return convertFxFunction(v)

	case *hir.ClassDeclaration:
		members := make([]jsast.ClassMember, 0, len(v.Members))
		for _, m := range v.Members {
			members = append(members, convertClassMember(m))
		}
		return &jsast.ClassDeclaration{Base: jsast.At(v.Pos()), Id: convertIdentifier(v.Id), Members: members}

	case *hir.EnumDeclaration:
		return convertEnum(v)

	case *hir.ImportDeclaration:
		specs := make([]jsast.ImportSpecifier, len(v.Specifiers))
		for i, s := range v.Specifiers {
			specs[i] = jsast.ImportSpecifier{Imported: s.Imported, Local: s.Local}
		}
		return &jsast.ImportDeclaration{Base: jsast.At(v.Pos()), Specifiers: specs, Source: v.Source}

	case *hir.JsImportReference:
		return &jsast.DefaultImportDeclaration{Base: jsast.At(v.Pos()), Local: v.Name, Source: v.Source}

	case *hir.ExportNamedDeclaration:
		specs := make([]jsast.ExportSpecifier, len(v.Specifiers))
		for i, s := range v.Specifiers {
			specs[i] = jsast.ExportSpecifier{Local: s.Local, Exported: s.Exported}
		}
		out := &jsast.ExportNamedDeclaration{Base: jsast.At(v.Pos()), Specifiers: specs}
		if v.Declaration != nil {
			out.Declaration = convertStmt(v.Declaration)
		}
		return out

	case *hir.ExportVariableDeclaration:
		return &jsast.ExportVariableDeclaration{
			Base:        jsast.At(v.Pos()),
			Declaration: convertStmt(v.Declaration).(*jsast.VariableDeclaration),
		}

	case *hir.CommentBlock:
		return &jsast.CommentBlock{Base: jsast.At(v.Pos()), Text: v.Text}

	case *hir.Raw:
		return &jsast.Raw{Base: jsast.At(v.Pos()), Text: v.Text}

	default:
		return &jsast.CommentBlock{Base: jsast.At(s.Pos()), Text: fmt.Sprintf("unhandled hir.Stmt %T", s)}
	}
}

func declKind(k hir.DeclKind) string {
	switch k {
	case hir.DeclConst:
		return "const"
	case hir.DeclVar:
		return "var"
	default:
		return "let"
	}
}

// convertBlock filters out no-op `(get _ ...)` expression statements (spec
// §4.9 block-statement filtering rule) while converting the rest in order.
func convertBlock(b *hir.BlockStatement) *jsast.BlockStatement {
	if b == nil {
		return nil
	}
	out := make([]jsast.Stmt, 0, len(b.Body))
	for _, s := range b.Body {
		if es, ok := s.(*hir.ExpressionStatement); ok && isNoopGetPlaceholder(es.Expression) {
			continue
		}
		out = append(out, convertStmt(s))
	}
	return &jsast.BlockStatement{Base: jsast.At(b.Pos()), Body: out}
}

// isNoopGetPlaceholder recognizes `(get _ key)`'s lowered shape — a
// MemberExpression whose Object is the placeholder string literal "_" — used
// as a statement purely for side effects that were already evaluated during
// lowering. It has no runtime effect and the printer never needs to see it.
func isNoopGetPlaceholder(e hir.Expr) bool {
	m, ok := e.(*hir.MemberExpression)
	if !ok {
		return false
	}
	s, ok := m.Object.(*hir.StringLiteral)
	return ok && s.Value == "_"
}

func convertParams(params []hir.Param) []jsast.Param {
	out := make([]jsast.Param, len(params))
	for i, p := range params {
		out[i] = jsast.Param{Name: p.Name, Default: convertExpr(p.Default), Rest: p.Variadic}
	}
	return out
}

func convertIdentifier(id *hir.Identifier) *jsast.Identifier {
	if id == nil {
		return nil
	}
	return &jsast.Identifier{Base: jsast.At(id.Pos()), Name: id.Name}
}

func convertClassMember(m hir.ClassMember) jsast.ClassMember {
	switch v := m.(type) {
	case *hir.FieldMember:
		return &jsast.FieldMember{Name: v.Name, Readonly: !v.Mutable, Init: convertExpr(v.Init)}
	case *hir.ConstructorMember:
		return &jsast.ConstructorMember{Params: convertParams(v.Params), Body: convertBlock(v.Body)}
	case *hir.MethodMember:
		if v.Typed {
			return &jsast.MethodMember{Name: v.Name, Params: convertParams(fxParamsToParams(v.FxParams)), Body: convertBlock(v.Body)}
		}
		return &jsast.MethodMember{Name: v.Name, Params: convertParams(v.Params), Body: convertBlock(v.Body)}
	default:
		return nil
	}
}

func fxParamsToParams(fx []hir.FxParam) []hir.Param {
	out := make([]hir.Param, len(fx))
	for i, p := range fx {
		out[i] = hir.Param{Name: p.Name, Default: p.Default}
	}
	return out
}

// --- Expressions ---

func convertExpr(e hir.Expr) jsast.Expr {
	switch v := e.(type) {
	case nil:
		return nil

	case *hir.NullLiteral:
		return &jsast.NullLiteral{Base: jsast.At(v.Pos())}
	case *hir.BooleanLiteral:
		return &jsast.BooleanLiteral{Base: jsast.At(v.Pos()), Value: v.Value}
	case *hir.NumericLiteral:
		return convertNumericLiteral(v)
	case *hir.StringLiteral:
		return &jsast.StringLiteral{Base: jsast.At(v.Pos()), Value: v.Value}
	case *hir.Identifier:
		return convertIdentifier(v)

	case *hir.ArrayExpression:
		elems := make([]jsast.Expr, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = convertExpr(el)
		}
		return &jsast.ArrayExpression{Base: jsast.At(v.Pos()), Elements: elems}

	case *hir.ObjectExpression:
		props := make([]jsast.Property, len(v.Properties))
		for i, p := range v.Properties {
			props[i] = jsast.Property{Key: p.Key, KeyExpr: convertExpr(p.KeyExpr), Computed: p.Computed, Value: convertExpr(p.Value)}
		}
		return &jsast.ObjectExpression{Base: jsast.At(v.Pos()), Properties: props}

	case *hir.NewExpression:
		return &jsast.NewExpression{Base: jsast.At(v.Pos()), Callee: convertExpr(v.Callee), Args: convertArgs(v.Args)}

	case *hir.MemberExpression:
		return &jsast.MemberExpression{Base: jsast.At(v.Pos()), Object: convertExpr(v.Object), Property: convertExpr(v.Property), Computed: v.Computed}

	case *hir.CallExpression:
		return &jsast.CallExpression{Base: jsast.At(v.Pos()), Callee: convertExpr(v.Callee), Args: convertArgs(v.Args)}

	case *hir.CallMemberExpression:
		pos := jsast.At(v.Pos())
		return &jsast.CallExpression{
			Base: pos,
			Callee: &jsast.MemberExpression{
				Base:     pos,
				Object:   convertExpr(v.Object),
				Property: &jsast.Identifier{Base: pos, Name: v.MethodName},
				Computed: false,
			},
			Args: convertArgs(v.Args),
		}

	case *hir.GetAndCall:
		return convertInteropIIFE(v.Base, v.Object, v.MethodName, v.Args, false)
	case *hir.JsMethodAccess:
		return convertInteropIIFE(v.Base, v.Object, v.MethodName, nil, false)
	case *hir.InteropIIFE:
		return convertInteropIIFEExpr(v)

	case *hir.BinaryExpression:
		return &jsast.BinaryExpression{Base: jsast.At(v.Pos()), Operator: v.Operator, Left: convertExpr(v.Left), Right: convertExpr(v.Right)}
	case *hir.UnaryExpression:
		return &jsast.UnaryExpression{Base: jsast.At(v.Pos()), Operator: v.Operator, Argument: convertExpr(v.Argument), Prefix: v.Prefix}
	case *hir.AssignmentExpression:
		return &jsast.AssignmentExpression{Base: jsast.At(v.Pos()), Operator: v.Operator, Left: convertExpr(v.Left), Right: convertExpr(v.Right)}
	case *hir.ConditionalExpression:
		return &jsast.ConditionalExpression{Base: jsast.At(v.Pos()), Test: convertExpr(v.Test), Consequent: convertExpr(v.Consequent), Alternate: convertExpr(v.Alternate)}
	case *hir.FunctionExpression:
		return &jsast.FunctionExpression{Base: jsast.At(v.Pos()), Id: convertIdentifier(v.Id), Params: convertParams(v.Params), Body: convertBlock(v.Body)}

	default:
		return &jsast.Raw{Base: jsast.At(e.Pos()), Text: fmt.Sprintf("/* unhandled hir.Expr %T */ null", e)}
	}
}

func convertArgs(args []hir.Expr) []jsast.Expr {
	out := make([]jsast.Expr, len(args))
	for i, a := range args {
		out[i] = convertExpr(a)
	}
	return out
}

// convertNumericLiteral implements spec §4.9's negative-literal rule:
// NumericLiteral never carries a sign itself; a negative value prints as a
// unary minus applied to the absolute value, which is codegen's job, not the
// HIR constructor's.
func convertNumericLiteral(v *hir.NumericLiteral) jsast.Expr {
	pos := jsast.At(v.Pos())
	if v.Value < 0 {
		return &jsast.UnaryExpression{
			Base:     pos,
			Operator: "-",
			Prefix:   true,
			Argument: &jsast.NumericLiteral{Base: pos, Value: -v.Value},
		}
	}
	return &jsast.NumericLiteral{Base: pos, Value: v.Value}
}

// convertInteropIIFE expands GetAndCall/JsMethodAccess into the IIFE shape
// spec §4.9 describes: bind the receiver to a local once, look the property
// up once, then either call it (if it's a function) or yield it bare.
//
//	((_obj) => { const _prop = _obj.name; return typeof _prop === "function"
//	  ? _prop.call(_obj, ...args) : _prop; })(object)
//
// jsast has no arrow-function node, so this is built from the existing
// FunctionExpression + immediately-invoked CallExpression instead — same
// runtime shape, ordinary `function` keyword.
func convertInteropIIFE(base hir.Base, object hir.Expr, methodName string, args []hir.Expr, alwaysCall bool) jsast.Expr {
	pos := jsast.At(base.Pos())
	objParam := &jsast.Identifier{Base: pos, Name: "_obj"}
	propIdent := &jsast.Identifier{Base: pos, Name: "_prop"}

	propAccess := &jsast.MemberExpression{Base: pos, Object: objParam, Property: &jsast.Identifier{Base: pos, Name: methodName}, Computed: false}

	callArgs := append([]jsast.Expr{objParam}, convertArgs(args)...)
	callBranch := jsast.Expr(&jsast.CallExpression{
		Base:   pos,
		Callee: &jsast.MemberExpression{Base: pos, Object: propIdent, Property: &jsast.Identifier{Base: pos, Name: "call"}, Computed: false},
		Args:   callArgs,
	})

	var resultExpr jsast.Expr
	if alwaysCall {
		resultExpr = callBranch
	} else {
		typeofTest := &jsast.BinaryExpression{
			Base:     pos,
			Operator: "===",
			Left:     &jsast.UnaryExpression{Base: pos, Operator: "typeof", Prefix: true, Argument: propIdent},
			Right:    &jsast.StringLiteral{Base: pos, Value: "function"},
		}
		resultExpr = &jsast.ConditionalExpression{Base: pos, Test: typeofTest, Consequent: callBranch, Alternate: propIdent}
	}

	body := &jsast.BlockStatement{Base: pos, Body: []jsast.Stmt{
		&jsast.VariableDeclaration{Base: pos, Kind: "const", Declarators: []jsast.VariableDeclarator{{Id: propIdent, Init: propAccess}}},
		&jsast.ReturnStatement{Base: pos, Argument: resultExpr},
	}}

	fn := &jsast.FunctionExpression{Base: pos, Params: []jsast.Param{{Name: "_obj"}}, Body: body}
	return &jsast.CallExpression{Base: pos, Callee: fn, Args: []jsast.Expr{convertExpr(object)}}
}

func convertInteropIIFEExpr(v *hir.InteropIIFE) jsast.Expr {
	pos := jsast.At(v.Pos())
	objParam := &jsast.Identifier{Base: pos, Name: "_obj"}
	propIdent := &jsast.Identifier{Base: pos, Name: "_prop"}
	propAccess := &jsast.MemberExpression{Base: pos, Object: objParam, Property: convertExpr(v.Property), Computed: true}

	typeofTest := &jsast.BinaryExpression{
		Base:     pos,
		Operator: "===",
		Left:     &jsast.UnaryExpression{Base: pos, Operator: "typeof", Prefix: true, Argument: propIdent},
		Right:    &jsast.StringLiteral{Base: pos, Value: "function"},
	}
	callBranch := &jsast.CallExpression{
		Base:   pos,
		Callee: &jsast.MemberExpression{Base: pos, Object: propIdent, Property: &jsast.Identifier{Base: pos, Name: "call"}, Computed: false},
		Args:   []jsast.Expr{objParam},
	}
	resultExpr := jsast.Expr(&jsast.ConditionalExpression{Base: pos, Test: typeofTest, Consequent: callBranch, Alternate: propIdent})

	body := &jsast.BlockStatement{Base: pos, Body: []jsast.Stmt{
		&jsast.VariableDeclaration{Base: pos, Kind: "const", Declarators: []jsast.VariableDeclarator{{Id: propIdent, Init: propAccess}}},
		&jsast.ReturnStatement{Base: pos, Argument: resultExpr},
	}}
	fn := &jsast.FunctionExpression{Base: pos, Params: []jsast.Param{{Name: "_obj"}}, Body: body}
	return &jsast.CallExpression{Base: pos, Callee: fn, Args: []jsast.Expr{convertExpr(v.Object)}}
}

// typeDefault returns the JS default value expression for a parameter's
// declared type when no explicit default was given (spec §4.9 Fx section):
// 0 for Int/Double, "" for String, false for Bool, `undefined` otherwise.
func typeDefault(pos jsast.Base, typeName string) jsast.Expr {
	switch typeName {
	case "Int", "Double", "Number":
		return &jsast.NumericLiteral{Base: pos, Value: 0}
	case "String":
		return &jsast.StringLiteral{Base: pos, Value: ""}
	case "Bool", "Boolean":
		return &jsast.BooleanLiteral{Base: pos, Value: false}
	default:
		return &jsast.Identifier{Base: pos, Name: "undefined"}
	}
}

// convertFxFunction implements spec §4.9's Fx calling-convention codegen: the
// emitted JS function takes a single rest parameter and, at runtime, decides
// whether it was invoked with one named-argument object or a positional
// argument list.
//
//	function name(...args) {
//	  let p1 = <default1>;
//	  let p2 = <default2>;
//	  if (args.length === 1 && typeof args[0] === "object" && args[0] !== null && !Array.isArray(args[0])) {
//	    const _named = args[0];
//	    if ("p1" in _named) p1 = _named.p1;
//	    if ("p2" in _named) p2 = _named.p2;
//	    if (p1 === <default1> && args.length > 0) p1 = args[0];
//	  } else {
//	    if (args.length > 0) p1 = args[0];
//	    if (args.length > 1) p2 = args[1];
//	  }
//	  ...original body...
//	}
func convertFxFunction(v *hir.FxFunctionDeclaration) *jsast.FunctionDeclaration {
	pos := jsast.At(v.Pos())
	argsIdent := &jsast.Identifier{Base: pos, Name: "args"}

	var prelude []jsast.Stmt
	defaults := make([]jsast.Expr, len(v.Params))
	for i, p := range v.Params {
		def := convertExpr(p.Default)
		if def == nil {
			def = typeDefault(pos, p.TypeName)
		}
		defaults[i] = def
		prelude = append(prelude, &jsast.VariableDeclaration{
			Base: pos, Kind: "let",
			Declarators: []jsast.VariableDeclarator{{Id: &jsast.Identifier{Base: pos, Name: p.Name}, Init: def}},
		})
	}

	namedTest := &jsast.LogicalExpression{
		Base: pos, Operator: "&&",
		Left: &jsast.BinaryExpression{Base: pos, Operator: "===", Left: &jsast.MemberExpression{Base: pos, Object: argsIdent, Property: &jsast.Identifier{Base: pos, Name: "length"}}, Right: &jsast.NumericLiteral{Base: pos, Value: 1}},
		Right: &jsast.LogicalExpression{Base: pos, Operator: "&&",
			Left: &jsast.BinaryExpression{Base: pos, Operator: "===",
				Left:  &jsast.UnaryExpression{Base: pos, Operator: "typeof", Prefix: true, Argument: argIndex(pos, argsIdent, 0)},
				Right: &jsast.StringLiteral{Base: pos, Value: "object"}},
			Right: &jsast.LogicalExpression{Base: pos, Operator: "&&",
				Left:  &jsast.BinaryExpression{Base: pos, Operator: "!==", Left: argIndex(pos, argsIdent, 0), Right: &jsast.NullLiteral{Base: pos}},
				Right: &jsast.UnaryExpression{Base: pos, Operator: "!", Prefix: true, Argument: &jsast.CallExpression{Base: pos, Callee: &jsast.MemberExpression{Base: pos, Object: &jsast.Identifier{Base: pos, Name: "Array"}, Property: &jsast.Identifier{Base: pos, Name: "isArray"}}, Args: []jsast.Expr{argIndex(pos, argsIdent, 0)}}},
			},
		},
	}

	namedIdent := &jsast.Identifier{Base: pos, Name: "_named"}
	var namedBody []jsast.Stmt
	namedBody = append(namedBody, &jsast.VariableDeclaration{Base: pos, Kind: "const", Declarators: []jsast.VariableDeclarator{{Id: namedIdent, Init: argIndex(pos, argsIdent, 0)}}})
	for i, p := range v.Params {
		paramIdent := &jsast.Identifier{Base: pos, Name: p.Name}
		has := &jsast.BinaryExpression{Base: pos, Operator: "in", Left: &jsast.StringLiteral{Base: pos, Value: p.Name}, Right: namedIdent}
		assign := &jsast.ExpressionStatement{Base: pos, Expression: &jsast.AssignmentExpression{Base: pos, Operator: "=", Left: paramIdent, Right: &jsast.MemberExpression{Base: pos, Object: namedIdent, Property: &jsast.Identifier{Base: pos, Name: p.Name}}}}
		namedBody = append(namedBody, &jsast.IfStatement{Base: pos, Test: has, Consequent: assign})
		if i == 0 {
			stillDefault := &jsast.LogicalExpression{Base: pos, Operator: "&&",
				Left:  &jsast.BinaryExpression{Base: pos, Operator: "===", Left: paramIdent, Right: defaults[0]},
				Right: &jsast.BinaryExpression{Base: pos, Operator: ">", Left: &jsast.MemberExpression{Base: pos, Object: argsIdent, Property: &jsast.Identifier{Base: pos, Name: "length"}}, Right: &jsast.NumericLiteral{Base: pos, Value: 0}},
			}
			fallback := &jsast.ExpressionStatement{Base: pos, Expression: &jsast.AssignmentExpression{Base: pos, Operator: "=", Left: paramIdent, Right: argIndex(pos, argsIdent, 0)}}
			namedBody = append(namedBody, &jsast.IfStatement{Base: pos, Test: stillDefault, Consequent: fallback})
		}
	}

	var positionalBody []jsast.Stmt
	for i, p := range v.Params {
		paramIdent := &jsast.Identifier{Base: pos, Name: p.Name}
		test := &jsast.BinaryExpression{Base: pos, Operator: ">", Left: &jsast.MemberExpression{Base: pos, Object: argsIdent, Property: &jsast.Identifier{Base: pos, Name: "length"}}, Right: &jsast.NumericLiteral{Base: pos, Value: float64(i)}}
		assign := &jsast.ExpressionStatement{Base: pos, Expression: &jsast.AssignmentExpression{Base: pos, Operator: "=", Left: paramIdent, Right: argIndex(pos, argsIdent, i)}}
		positionalBody = append(positionalBody, &jsast.IfStatement{Base: pos, Test: test, Consequent: assign})
	}

	if len(v.Params) > 0 {
		dispatch := &jsast.IfStatement{
			Base: pos, Test: namedTest,
			Consequent: &jsast.BlockStatement{Base: pos, Body: namedBody},
			Alternate:  &jsast.BlockStatement{Base: pos, Body: positionalBody},
		}
		prelude = append(prelude, dispatch)
	}

	body := convertBlock(v.Body)
	body.Body = append(prelude, body.Body...)

	return &jsast.FunctionDeclaration{
		Base:   pos,
		Id:     convertIdentifier(v.Id),
		Params: []jsast.Param{{Name: "args", Rest: true}},
		Body:   body,
	}
}

func argIndex(pos jsast.Base, args *jsast.Identifier, i int) jsast.Expr {
	return &jsast.MemberExpression{Base: pos, Object: args, Property: &jsast.NumericLiteral{Base: pos, Value: float64(i)}, Computed: true}
}

// --- Enum codegen (spec §4.8 two-mode lowering table) ---

// convertEnum picks Object.freeze for a simple enum and a class with static
// factory methods for one with associated values, per spec §4.8.
func convertEnum(v *hir.EnumDeclaration) jsast.Stmt {
	pos := jsast.At(v.Pos())
	if !hir.HasAssociatedValues(v.Cases) {
		props := make([]jsast.Property, len(v.Cases))
		for i, c := range v.Cases {
			val := convertExpr(c.RawValue)
			if val == nil {
				val = &jsast.StringLiteral{Base: pos, Value: c.Id}
			}
			props[i] = jsast.Property{Key: c.Id, Value: val}
		}
		freezeArg := &jsast.ObjectExpression{Base: pos, Properties: props}
		call := &jsast.CallExpression{
			Base:   pos,
			Callee: &jsast.MemberExpression{Base: pos, Object: &jsast.Identifier{Base: pos, Name: "Object"}, Property: &jsast.Identifier{Base: pos, Name: "freeze"}},
			Args:   []jsast.Expr{freezeArg},
		}
		return &jsast.VariableDeclaration{
			Base: pos, Kind: "const",
			Declarators: []jsast.VariableDeclarator{{Id: convertIdentifier(v.Id), Init: call}},
		}
	}

	members := make([]jsast.ClassMember, 0, len(v.Cases)+3)
	members = append(members, &jsast.ConstructorMember{
		Params: []jsast.Param{{Name: "type"}, {Name: "values", Default: &jsast.ObjectExpression{Base: pos}}},
		Body: &jsast.BlockStatement{Base: pos, Body: []jsast.Stmt{
			&jsast.ExpressionStatement{Base: pos, Expression: &jsast.AssignmentExpression{Base: pos, Operator: "=",
				Left:  &jsast.MemberExpression{Base: pos, Object: &jsast.Identifier{Base: pos, Name: "this"}, Property: &jsast.Identifier{Base: pos, Name: "type"}},
				Right: &jsast.Identifier{Base: pos, Name: "type"}}},
			&jsast.ExpressionStatement{Base: pos, Expression: &jsast.AssignmentExpression{Base: pos, Operator: "=",
				Left:  &jsast.MemberExpression{Base: pos, Object: &jsast.Identifier{Base: pos, Name: "this"}, Property: &jsast.Identifier{Base: pos, Name: "values"}},
				Right: &jsast.Identifier{Base: pos, Name: "values"}}},
		}},
	})
	members = append(members, &jsast.MethodMember{
		Name: "is", Params: []jsast.Param{{Name: "t"}},
		Body: &jsast.BlockStatement{Base: pos, Body: []jsast.Stmt{&jsast.ReturnStatement{Base: pos, Argument: &jsast.BinaryExpression{
			Base: pos, Operator: "===",
			Left:  &jsast.MemberExpression{Base: pos, Object: &jsast.Identifier{Base: pos, Name: "this"}, Property: &jsast.Identifier{Base: pos, Name: "type"}},
			Right: &jsast.Identifier{Base: pos, Name: "t"},
		}}}},
	})
	members = append(members, &jsast.MethodMember{
		Name: "getValue", Params: []jsast.Param{{Name: "k"}},
		Body: &jsast.BlockStatement{Base: pos, Body: []jsast.Stmt{&jsast.ReturnStatement{Base: pos, Argument: &jsast.MemberExpression{
			Base: pos, Computed: true,
			Object:   &jsast.MemberExpression{Base: pos, Object: &jsast.Identifier{Base: pos, Name: "this"}, Property: &jsast.Identifier{Base: pos, Name: "values"}},
			Property: &jsast.Identifier{Base: pos, Name: "k"},
		}}}},
	})
	for _, c := range v.Cases {
		if len(c.AssociatedValues) == 0 {
			newExpr := &jsast.NewExpression{
				Base:   pos,
				Callee: convertIdentifier(v.Id),
				Args:   []jsast.Expr{&jsast.StringLiteral{Base: pos, Value: c.Id}, &jsast.ObjectExpression{Base: pos}},
			}
			members = append(members, &jsast.FieldMember{Name: c.Id, Static: true, Readonly: true, Init: newExpr})
			continue
		}
		props := make([]jsast.Property, len(c.AssociatedValues))
		optionsIdent := &jsast.Identifier{Base: pos, Name: "options"}
		for i, av := range c.AssociatedValues {
			props[i] = jsast.Property{Key: av.Name, Value: &jsast.MemberExpression{Base: pos, Object: optionsIdent, Property: &jsast.Identifier{Base: pos, Name: av.Name}}}
		}
		newExpr := &jsast.NewExpression{
			Base:   pos,
			Callee: convertIdentifier(v.Id),
			Args:   []jsast.Expr{&jsast.StringLiteral{Base: pos, Value: c.Id}, &jsast.ObjectExpression{Base: pos, Properties: props}},
		}
		members = append(members, &jsast.MethodMember{
			Name: c.Id, Static: true,
			Params: []jsast.Param{{Name: "options", Default: &jsast.ObjectExpression{Base: pos}}},
			Body:   &jsast.BlockStatement{Base: pos, Body: []jsast.Stmt{&jsast.ReturnStatement{Base: pos, Argument: newExpr}}},
		})
	}
	return &jsast.ClassDeclaration{Base: pos, Id: convertIdentifier(v.Id), Members: members}
}

// ModuleImportName implements spec §4.9's deterministic import-binding-name
// algorithm: strip npm:/jsr: prefixes, strip all but the last path segment,
// strip the extension, camelCase non-alphanumeric runs, ensure a valid first
// character, and append "Module".
func ModuleImportName(source string) string {
	s := source
	s = strings.TrimPrefix(s, "npm:")
	s = strings.TrimPrefix(s, "jsr:")
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndexByte(s, '.'); i > 0 {
		s = s[:i]
	}

	var b strings.Builder
	upperNext := false
	for _, r := range s {
		if isAlnum(r) {
			if upperNext {
				b.WriteString(strings.ToUpper(string(r)))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		} else {
			upperNext = true
		}
	}
	name := b.String()
	if name == "" || !isIdentStart(rune(name[0])) {
		name = "_" + name
	}
	return name + "Module"
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}
