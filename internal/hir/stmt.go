package hir

// Param is a function parameter shared by FunctionExpression and
// FunctionDeclaration: positional, `&`-rest, or `=`-defaulted (spec §4.2
// `fn`/`lambda` contract).
type Param struct {
	Name     string
	Default  Expr // nil if none
	Variadic bool // true only for the trailing rest parameter
}

// FxParam is an fx-only typed parameter (spec: "FxFunctionDeclaration is
// the only variant allowed to declare param_types and return_type").
type FxParam struct {
	Name     string
	TypeName string
	Default  Expr // nil if none
}

type VariableDeclarator struct {
	Id   *Identifier
	Init Expr // nil if none
}

// DeclKind is the JS binding form a VariableDeclaration uses.
type DeclKind string

const (
	DeclConst DeclKind = "const"
	DeclLet   DeclKind = "let"
	DeclVar   DeclKind = "var"
)

type VariableDeclaration struct {
	Base
	Kind        DeclKind
	Declarators []VariableDeclarator
}

func (*VariableDeclaration) hirNode()  {}
func (*VariableDeclaration) stmtNode() {}

type ExpressionStatement struct {
	Base
	Expression Expr
}

func (*ExpressionStatement) hirNode()  {}
func (*ExpressionStatement) stmtNode() {}

// BlockStatement is a sequence of statements. NewFunctionBody enforces the
// spec §3.2 invariant that the final entry of a function body block is a
// ReturnStatement; raw block construction (e.g. an if-branch) does not.
type BlockStatement struct {
	Base
	Body []Stmt
}

func (*BlockStatement) hirNode()  {}
func (*BlockStatement) stmtNode() {}

// NewBlock builds a plain block with no function-body invariant applied.
func NewBlock(pos Base, body []Stmt) *BlockStatement {
	return &BlockStatement{Base: pos, Body: body}
}

// NewFunctionBody builds a block suitable as a function body: if the last
// statement is an ExpressionStatement, it is rewritten into a
// ReturnStatement of the same expression (spec §3.2, §4.5). Any other
// trailing statement (already a ReturnStatement, an IfStatement whose
// branches return, etc.) is left as-is — the lowering layer is responsible
// for producing a terminal ReturnStatement/recur in those cases (§4.4).
func NewFunctionBody(pos Base, body []Stmt) *BlockStatement {
	if n := len(body); n > 0 {
		if es, ok := body[n-1].(*ExpressionStatement); ok {
			body[n-1] = &ReturnStatement{Base: es.Base, Argument: es.Expression}
		}
	}
	return &BlockStatement{Base: pos, Body: body}
}

type IfStatement struct {
	Base
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil if none
}

func (*IfStatement) hirNode()  {}
func (*IfStatement) stmtNode() {}

type ReturnStatement struct {
	Base
	Argument Expr // nil for a bare `return`
}

func (*ReturnStatement) hirNode()  {}
func (*ReturnStatement) stmtNode() {}

// FunctionDeclaration is a named, untyped function produced by top-level
// `fn` (registered in the fn registry) when it appears in declaration
// position.
type FunctionDeclaration struct {
	Base
	Id     *Identifier
	Params []Param
	Body   *BlockStatement
}

func (*FunctionDeclaration) hirNode()  {}
func (*FunctionDeclaration) stmtNode() {}

// FxFunctionDeclaration is a typed, pure function (spec §4.2 `fx`). Body
// already contains the per-parameter deep-copy prelude (spec Design Notes).
type FxFunctionDeclaration struct {
	Base
	Id         *Identifier
	Params     []FxParam
	ReturnType string
	Body       *BlockStatement
}

func (*FxFunctionDeclaration) hirNode()  {}
func (*FxFunctionDeclaration) stmtNode() {}

// --- Classes ---

type ClassMember interface {
	Node
	classMemberNode()
}

type FieldMember struct {
	Base
	Name    string
	Mutable bool // true for `var`, false for `let`
	Init    Expr // nil if none
}

func (*FieldMember) hirNode()         {}
func (*FieldMember) classMemberNode() {}

type ConstructorMember struct {
	Base
	Params []Param
	Body   *BlockStatement
}

func (*ConstructorMember) hirNode()         {}
func (*ConstructorMember) classMemberNode() {}

type MethodMember struct {
	Base
	Name       string
	Typed      bool // true for fx methods
	Params     []Param
	FxParams   []FxParam // populated when Typed
	ReturnType string    // populated when Typed
	Body       *BlockStatement
}

func (*MethodMember) hirNode()         {}
func (*MethodMember) classMemberNode() {}

type ClassDeclaration struct {
	Base
	Id      *Identifier
	Members []ClassMember
}

func (*ClassDeclaration) hirNode()  {}
func (*ClassDeclaration) stmtNode() {}

// --- Enums ---

type EnumAssociatedValue struct {
	Name     string
	TypeName string
}

type EnumCase struct {
	Id               string
	RawValue         Expr // nil if none
	AssociatedValues []EnumAssociatedValue
}

// HasAssociatedValues reports whether any case carries associated values,
// which selects the "associated-value enum" lowering mode (spec §4.8).
func HasAssociatedValues(cases []EnumCase) bool {
	for _, c := range cases {
		if len(c.AssociatedValues) > 0 {
			return true
		}
	}
	return false
}

type EnumDeclaration struct {
	Base
	Id      *Identifier
	RawType string // declared raw type, e.g. "Int"; "" if none
	Cases   []EnumCase
}

func (*EnumDeclaration) hirNode()  {}
func (*EnumDeclaration) stmtNode() {}

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

func (*ImportDeclaration) hirNode()  {}
func (*ImportDeclaration) stmtNode() {}

// JsImportReference is the namespace-import shape: `import name from "path"`.
type JsImportReference struct {
	Base
	Name   string
	Source string
}

func (*JsImportReference) hirNode()  {}
func (*JsImportReference) stmtNode() {}

type ExportSpecifier struct {
	Local    string
	Exported string
}

type ExportNamedDeclaration struct {
	Base
	Declaration Stmt // nil when exporting only specifiers
	Specifiers  []ExportSpecifier
}

func (*ExportNamedDeclaration) hirNode()  {}
func (*ExportNamedDeclaration) stmtNode() {}

type ExportVariableDeclaration struct {
	Base
	Declaration *VariableDeclaration
}

func (*ExportVariableDeclaration) hirNode()  {}
func (*ExportVariableDeclaration) stmtNode() {}

// --- Misc ---

type CommentBlock struct {
	Base
	Text string
}

func (*CommentBlock) hirNode()  {}
func (*CommentBlock) stmtNode() {}

// Raw is an escape hatch for verbatim text carried through to the printer
// unchanged. No rule in internal/lowering produces one; codegen passes its
// Text through as-is.
type Raw struct {
	Base
	Text string
}

func (*Raw) hirNode()  {}
func (*Raw) stmtNode() {}
