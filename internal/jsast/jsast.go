// Package jsast defines the target-language AST: the JavaScript-shaped node
// set that internal/codegen converts internal/hir into and internal/printer
// renders to text (spec §4.9/§4.10). It mirrors hir's closed-sum-type shape —
// narrow Node/Expr/Stmt interfaces with unexported marker methods — but one
// level closer to the printed surface: no HQL-specific variants (no
// CallMemberExpression, no EnumDeclaration, no InteropIIFE) survive here,
// only ordinary JS constructs.
package jsast

import "github.com/hqlcompiler/hqlc/internal/token"

// Node is satisfied by every jsast node.
type Node interface {
	Pos() token.Position
	node()
}

// Expr is a Node that can appear in expression position.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node that can appear in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Base carries source position through to the printer for //-comment
// anchoring and diagnostics; it is not itself meaningful JS.
type Base struct {
	Position token.Position
}

func At(pos token.Position) Base { return Base{Position: pos} }

func (b Base) Pos() token.Position { return b.Position }
func (Base) node()                 {}

// Program is the single compilation unit the printer renders.
type Program struct {
	Base
	Body []Stmt
}

func (*Program) stmtNode() {}

// --- Literals ---

type NullLiteral struct{ Base }

func (*NullLiteral) exprNode() {}

type BooleanLiteral struct {
	Base
	Value bool
}

func (*BooleanLiteral) exprNode() {}

type NumericLiteral struct {
	Base
	Value float64
}

func (*NumericLiteral) exprNode() {}

type StringLiteral struct {
	Base
	Value string
}

func (*StringLiteral) exprNode() {}

// Identifier is a bare name reference.
type Identifier struct {
	Base
	Name string
}

func (*Identifier) exprNode() {}

// SpreadElement represents `...expr` inside a call/array/param list.
type SpreadElement struct {
	Base
	Argument Expr
}

func (*SpreadElement) exprNode() {}

type ArrayExpression struct {
	Base
	Elements []Expr
}

func (*ArrayExpression) exprNode() {}

// Property is one `key: value` (or computed `[key]: value`) entry of an
// ObjectExpression.
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

func (*ObjectExpression) exprNode() {}

type NewExpression struct {
	Base
	Callee Expr
	Args   []Expr
}

func (*NewExpression) exprNode() {}

type MemberExpression struct {
	Base
	Object   Expr
	Property Expr
	Computed bool
}

func (*MemberExpression) exprNode() {}

type CallExpression struct {
	Base
	Callee Expr
	Args   []Expr
}

func (*CallExpression) exprNode() {}

type BinaryExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

func (*BinaryExpression) exprNode() {}

type LogicalExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

func (*LogicalExpression) exprNode() {}

type UnaryExpression struct {
	Base
	Operator string
	Argument Expr
	Prefix   bool
}

func (*UnaryExpression) exprNode() {}

type AssignmentExpression struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

func (*AssignmentExpression) exprNode() {}

type ConditionalExpression struct {
	Base
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (*ConditionalExpression) exprNode() {}

// Param is one function/method parameter.
type Param struct {
	Name    string
	Default Expr
	Rest    bool
}

type FunctionExpression struct {
	Base
	Id     *Identifier
	Params []Param
	Body   *BlockStatement
}

func (*FunctionExpression) exprNode() {}

// --- Statements ---

type VariableDeclarator struct {
	Id   *Identifier
	Init Expr
}

type VariableDeclaration struct {
	Base
	Kind        string // "const" | "let" | "var"
	Declarators []VariableDeclarator
}

func (*VariableDeclaration) stmtNode() {}

type ExpressionStatement struct {
	Base
	Expression Expr
}

func (*ExpressionStatement) stmtNode() {}

type BlockStatement struct {
	Base
	Body []Stmt
}

func (*BlockStatement) stmtNode() {}

func NewBlock(pos token.Position, body []Stmt) *BlockStatement {
	return &BlockStatement{Base: At(pos), Body: body}
}

type IfStatement struct {
	Base
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

func (*IfStatement) stmtNode() {}

type ReturnStatement struct {
	Base
	Argument Expr
}

func (*ReturnStatement) stmtNode() {}

type FunctionDeclaration struct {
	Base
	Id     *Identifier
	Params []Param
	Body   *BlockStatement
}

func (*FunctionDeclaration) stmtNode() {}

// ClassMember is satisfied by every class-body member shape.
type ClassMember interface {
	classMember()
}

type FieldMember struct {
	Name     string
	Static   bool
	Readonly bool
	Init     Expr
}

func (*FieldMember) classMember() {}

type ConstructorMember struct {
	Params []Param
	Body   *BlockStatement
}

func (*ConstructorMember) classMember() {}

type MethodMember struct {
	Name   string
	Static bool
	Params []Param
	Body   *BlockStatement
}

func (*MethodMember) classMember() {}

type ClassDeclaration struct {
	Base
	Id      *Identifier
	Members []ClassMember
}

func (*ClassDeclaration) stmtNode() {}

// --- Modules ---

type ImportSpecifier struct {
	Imported string
	Local    string
}

type ImportDeclaration struct {
	Base
	Specifiers []ImportSpecifier
	Source     string
}

func (*ImportDeclaration) stmtNode() {}

// DefaultImportDeclaration renders `import Local from "source"`, the shape
// produced for HQL's `js-import` namespace form.
type DefaultImportDeclaration struct {
	Base
	Local  string
	Source string
}

func (*DefaultImportDeclaration) stmtNode() {}

type ExportSpecifier struct {
	Local    string
	Exported string
}

type ExportNamedDeclaration struct {
	Base
	Declaration Stmt
	Specifiers  []ExportSpecifier
}

func (*ExportNamedDeclaration) stmtNode() {}

type ExportVariableDeclaration struct {
	Base
	Declaration *VariableDeclaration
}

func (*ExportVariableDeclaration) stmtNode() {}

// --- Misc passthrough ---

// CommentBlock is a standalone comment emitted verbatim by the printer.
type CommentBlock struct {
	Base
	Text string
}

func (*CommentBlock) stmtNode() {}

// Raw is an escape hatch for text the codegen layer decided not to model
// structurally (e.g. its placeholder for an unhandled HIR expression).
type Raw struct {
	Base
	Text string
}

func (*Raw) stmtNode() {}
func (*Raw) exprNode() {}
