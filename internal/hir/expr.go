package hir

// --- Literals ---

type NullLiteral struct{ Base }

func (*NullLiteral) hirNode()  {}
func (*NullLiteral) exprNode() {}

type BooleanLiteral struct {
	Base
	Value bool
}

func (*BooleanLiteral) hirNode()  {}
func (*BooleanLiteral) exprNode() {}

// NumericLiteral preserves the original sign in Value; codegen (spec §4.9)
// is responsible for splitting a negative value into a prefix-minus unary
// over the absolute value when printing, not this constructor.
type NumericLiteral struct {
	Base
	Value float64
}

func (*NumericLiteral) hirNode()  {}
func (*NumericLiteral) exprNode() {}

type StringLiteral struct {
	Base
	Value string
}

func (*StringLiteral) hirNode()  {}
func (*StringLiteral) exprNode() {}

// --- Identifier ---

// Identifier is sanitized per spec §3.2: non-JS identifiers have every
// non-alphanumeric/underscore rune replaced; for JS-namespaced names (the
// `js/` prefix was stripped by lowering) a literal '-' becomes '_'.
type Identifier struct {
	Base
	Name           string
	IsJSNamespaced bool
}

func (*Identifier) hirNode()  {}
func (*Identifier) exprNode() {}

// --- Collections ---

type ArrayExpression struct {
	Base
	Elements []Expr
}

func (*ArrayExpression) hirNode()  {}
func (*ArrayExpression) exprNode() {}

// Property is one key/value pair of an ObjectExpression. Key is empty when
// Computed is true and KeyExpr should be used instead.
type Property struct {
	Key      string
	KeyExpr  Expr
	Computed bool
	Value    Expr
}

type ObjectExpression struct {
	Base
	Properties []Property
}

func (*ObjectExpression) hirNode()  {}
func (*ObjectExpression) exprNode() {}

type NewExpression struct {
	Base
	Callee Expr
	Args   []Expr
}

func (*NewExpression) hirNode()  {}
func (*NewExpression) exprNode() {}

// --- Access / Call ---

type MemberExpression struct {
	Base
	Object   Expr
	Property Expr
	Computed bool
}

func (*MemberExpression) hirNode()  {}
func (*MemberExpression) exprNode() {}

type CallExpression struct {
	Base
	Callee Expr
	Args   []Expr
}

func (*CallExpression) hirNode()  {}
func (*CallExpression) exprNode() {}

// CallMemberExpression is sugar for `obj.method(args)` produced when a
// dot-containing symbol (not a `.`-prefixed dot-call, not `js/`-namespaced)
// is used as a call head (spec §4.2 "property-access sugar ... used as a
// call head with arguments, becomes a member call").
type CallMemberExpression struct {
	Base
	Object     Expr
	MethodName string
	Args       []Expr
}

func (*CallMemberExpression) hirNode()  {}
func (*CallMemberExpression) exprNode() {}

// GetAndCall backs the `method-call` special form (spec §4.2 table): looks
// up a property and, if callable, invokes it with Args.
type GetAndCall struct {
	Base
	Object     Expr
	MethodName string
	Args       []Expr
}

func (*GetAndCall) hirNode()  {}
func (*GetAndCall) exprNode() {}

// JsMethodAccess backs the `js-method-access` interop form (SPEC_FULL §13):
// a bound-method-or-value read with no call, left for the runtime to
// resolve via the typeof-dispatch IIFE (spec §4.9).
type JsMethodAccess struct {
	Base
	Object     Expr
	MethodName string
}

func (*JsMethodAccess) hirNode()  {}
func (*JsMethodAccess) exprNode() {}

// InteropIIFE backs the `js-interop-get` form (SPEC_FULL §13): a dynamic
// (non-literal) property read that might resolve to a bound method.
type InteropIIFE struct {
	Base
	Object   Expr
	Property Expr
}

func (*InteropIIFE) hirNode()  {}
func (*InteropIIFE) exprNode() {}

// --- Operators ---

type BinaryExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

func (*BinaryExpression) hirNode()  {}
func (*BinaryExpression) exprNode() {}

type UnaryExpression struct {
	Base
	Operator string
	Argument Expr
	Prefix   bool
}

func (*UnaryExpression) hirNode()  {}
func (*UnaryExpression) exprNode() {}

type AssignmentExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

func (*AssignmentExpression) hirNode()  {}
func (*AssignmentExpression) exprNode() {}

type ConditionalExpression struct {
	Base
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (*ConditionalExpression) hirNode()  {}
func (*ConditionalExpression) exprNode() {}

// FunctionExpression is an anonymous (or named-but-value-position) function,
// used for `lambda` and for the IIFEs synthesized by loop/recur, do, and
// nested-let (spec §4.4/§4.2).
type FunctionExpression struct {
	Base
	Id     *Identifier
	Params []Param
	Body   *BlockStatement
}

func (*FunctionExpression) hirNode()  {}
func (*FunctionExpression) exprNode() {}
