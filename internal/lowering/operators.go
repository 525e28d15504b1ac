package lowering

import (
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// arithmeticOps fold left-associatively over two or more arguments:
// (+ a b c) -> (a + b) + c. Unary "-" is special-cased in lowerArithmeticOp
// to produce a sign-flip UnaryExpression instead.
var arithmeticOps = map[string]string{
	"+": "+", "-": "-", "*": "*", "/": "/", "%": "%",
}

// comparisonOps take exactly two arguments and produce a single
// BinaryExpression; HQL does not support Lisp's chained n-ary comparison
// form (spec §4.2's reserved-head table is silent on operators entirely,
// so this and the arithmetic/logical tables are this compiler's own
// resolution of that gap, grounded on the node kinds §3.2 already commits
// to: BinaryExpression, UnaryExpression).
var comparisonOps = map[string]string{
	"=": "===", "==": "===", "!=": "!==", "<>": "!==",
	"<": "<", "<=": "<=", ">": ">", ">=": ">=",
}

// logicalOps fold left-associatively, preserving left-to-right short-circuit
// evaluation order.
var logicalOps = map[string]string{
	"and": "&&", "or": "||",
}

// registerOperatorForms adds the arithmetic/comparison/logical heads to the
// dispatch table built in buildDispatch.
func registerOperatorForms(dispatch map[string]specialForm) {
	for sym := range arithmeticOps {
		dispatch[sym] = lowerArithmeticOp
	}
	for sym := range comparisonOps {
		dispatch[sym] = lowerComparisonOp
	}
	for sym := range logicalOps {
		dispatch[sym] = lowerLogicalOp
	}
	dispatch["not"] = lowerNotOp
}

func headSymbolName(list *reader.List) string {
	return list.Elements[0].(*reader.Symbol).Name
}

func lowerArithmeticOp(l *Lowerer, list *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	name := headSymbolName(list)
	args := list.Elements[1:]

	if name == "-" && len(args) == 1 {
		v, err := l.lowerNode(args[0])
		if err != nil {
			return nil, err
		}
		return &hir.UnaryExpression{Base: pos, Operator: "-", Argument: v, Prefix: true}, nil
	}
	if len(args) < 2 {
		return nil, l.validationErr(list, name, "%q expects at least 2 arguments, got %d", name, len(args))
	}
	return foldBinary(l, pos, arithmeticOps[name], args)
}

func lowerComparisonOp(l *Lowerer, list *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	name := headSymbolName(list)
	args := list.Elements[1:]
	if len(args) != 2 {
		return nil, l.validationErr(list, name, "%q expects exactly 2 arguments, got %d", name, len(args))
	}
	left, err := l.lowerNode(args[0])
	if err != nil {
		return nil, err
	}
	right, err := l.lowerNode(args[1])
	if err != nil {
		return nil, err
	}
	return &hir.BinaryExpression{Base: pos, Operator: comparisonOps[name], Left: left, Right: right}, nil
}

func lowerLogicalOp(l *Lowerer, list *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	name := headSymbolName(list)
	args := list.Elements[1:]
	if len(args) < 2 {
		return nil, l.validationErr(list, name, "%q expects at least 2 arguments, got %d", name, len(args))
	}
	return foldBinary(l, pos, logicalOps[name], args)
}

func lowerNotOp(l *Lowerer, list *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	args := list.Elements[1:]
	if len(args) != 1 {
		return nil, l.validationErr(list, "not", "\"not\" expects exactly 1 argument, got %d", len(args))
	}
	v, err := l.lowerNode(args[0])
	if err != nil {
		return nil, err
	}
	return &hir.UnaryExpression{Base: pos, Operator: "!", Argument: v, Prefix: true}, nil
}

func foldBinary(l *Lowerer, pos hir.Base, op string, args []reader.Node) (hir.Expr, error) {
	acc, err := l.lowerNode(args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		v, err := l.lowerNode(a)
		if err != nil {
			return nil, err
		}
		acc = &hir.BinaryExpression{Base: pos, Operator: op, Left: acc, Right: v}
	}
	return acc, nil
}
