package lowering

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/logging"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// specialForm lowers one reserved-head form (the list, including its head
// element) into an expression. The statement-only heads (stmtHeads) never go
// through this table; lowerStmtForm lowers them directly to a Stmt.
type specialForm func(l *Lowerer, list *reader.List) (hir.Expr, error)

// buildDispatch builds the head-symbol dispatch table once per Lowerer
// (spec §4.2: "built lazily on first use and reused across nodes in the
// same compilation" — here simply built once at construction, since one
// Lowerer value already scopes exactly one compilation).
func (l *Lowerer) buildDispatch() {
	if l.dispatched {
		return
	}
	l.dispatched = true
	l.dispatch = map[string]specialForm{
		"quote":            (*Lowerer).lowerQuote,
		"quasiquote":       passthroughUnary,
		"unquote":          passthroughUnary,
		"unquote-splicing": passthroughUnary,
		"if":               (*Lowerer).lowerIf,
		"cond":             (*Lowerer).lowerCond,
		"do":               (*Lowerer).lowerDo,
		"set!":             (*Lowerer).lowerSetBang,
		"lambda":           (*Lowerer).lowerLambda,
		"loop":             (*Lowerer).lowerLoop,
		"vector":           (*Lowerer).lowerVector,
		"hash-map":         (*Lowerer).lowerHashMap,
		"hash-set":         (*Lowerer).lowerHashSet,
		"empty-array":      (*Lowerer).lowerEmptyArray,
		"empty-map":        (*Lowerer).lowerEmptyMap,
		"empty-set":        (*Lowerer).lowerEmptySet,
		"get":              (*Lowerer).lowerGet,
		"new":              (*Lowerer).lowerNew,
		"js-new":           (*Lowerer).lowerJsNew,
		"js-get":           (*Lowerer).lowerJsGet,
		"js-set":           (*Lowerer).lowerJsSet,
		"js-call":          (*Lowerer).lowerJsCall,
		"js-get-invoke":    (*Lowerer).lowerJsGetInvoke,
		"js-method-access": (*Lowerer).lowerJsMethodAccess,
		"js-interop-get":   (*Lowerer).lowerJsInteropGet,
		"method-call":      (*Lowerer).lowerMethodCall,
	}
	registerOperatorForms(l.dispatch)
}

// stmtHeads names every reserved head whose natural shape is a Stmt rather
// than an Expr (spec §3.2: declarations, bindings, control forms that only
// make sense in statement position). lowerNodeAsStmt and the top-level
// lowerer dispatch these directly, bypassing the Expr-producing l.dispatch
// table above.
var stmtHeads = map[string]bool{
	"let": true, "var": true, "return": true, "recur": true,
	"fn": true, "fx": true, "class": true, "enum": true,
	"js-import": true, "js-export": true, "import": true, "export": true,
}

// lowerStmtForm lowers one of stmtHeads directly to a Stmt. ok is false if
// sym.Name is not one of stmtHeads, in which case callers fall back to
// Expr-wrapping.
func (l *Lowerer) lowerStmtForm(list *reader.List, sym *reader.Symbol) (s hir.Stmt, ok bool, err error) {
	if !stmtHeads[sym.Name] {
		return nil, false, nil
	}
	switch sym.Name {
	case "let", "var":
		s, err = l.lowerLetVarStmt(list)
	case "return":
		s, err = l.lowerReturn(list)
	case "recur":
		s, err = l.lowerRecur(list)
	case "fn":
		s, err = l.lowerFn(list)
	case "fx":
		s, err = l.lowerFx(list)
	case "class":
		s, err = l.lowerClass(list)
	case "enum":
		s, err = l.lowerEnum(list)
	case "js-import":
		s, err = l.lowerJsImport(list)
	case "js-export":
		s, err = l.lowerJsExport(list)
	case "import":
		s, err = l.lowerImport(list)
	case "export":
		s, err = l.lowerExport(list)
	}
	return s, true, err
}

// macroHeads are defensively skipped per spec §3.1/§7: the core must never
// see a user macro-definition form, but skips one if it slips through.
var macroHeads = map[string]bool{"macro": true, "defmacro": true}

// lowerNode is the single-node dispatch entry point (spec §4.1).
func (l *Lowerer) lowerNode(n reader.Node) (hir.Expr, error) {
	switch v := n.(type) {
	case *reader.Literal:
		return l.lowerLiteral(v), nil
	case *reader.Symbol:
		return l.loweredSymbol(v), nil
	case *reader.List:
		return l.lowerList(v)
	default:
		return nil, l.validationErr(n, "lowerNode", "unrecognized surface node type %T", n)
	}
}

func (l *Lowerer) lowerLiteral(lit *reader.Literal) hir.Expr {
	pos := hir.At(lit.Pos())
	switch v := lit.Value.(type) {
	case nil:
		return &hir.NullLiteral{Base: pos}
	case bool:
		return &hir.BooleanLiteral{Base: pos, Value: v}
	case float64:
		return &hir.NumericLiteral{Base: pos, Value: v}
	case string:
		// Normalize to NFC so two source files spelling the same string
		// with different Unicode decompositions emit byte-identical JS
		// string literals (spec §3.2 sanitization rule, extended here to
		// string content).
		return &hir.StringLiteral{Base: pos, Value: norm.NFC.String(v)}
	default:
		return &hir.NullLiteral{Base: pos}
	}
}

// lowerList implements the dispatch order of spec §4.1.
func (l *Lowerer) lowerList(list *reader.List) (hir.Expr, error) {
	pos := hir.At(list.Pos())

	// 1. Empty list -> empty ArrayExpression.
	if len(list.Elements) == 0 {
		return &hir.ArrayExpression{Base: pos}, nil
	}

	head := list.Elements[0]

	// 2. Interop shortcut: (js-get-invoke obj prop) with exactly 2 args.
	if sym, ok := head.(*reader.Symbol); ok && sym.Name == "js-get-invoke" && len(list.Elements) == 3 {
		return l.lowerJsGetInvokeShortcut(list)
	}

	// 3. Dot-prefix method call: head is a symbol beginning with '.'.
	if sym, ok := head.(*reader.Symbol); ok && len(sym.Name) > 1 && sym.Name[0] == '.' {
		return l.lowerDotCall(list, sym)
	}

	// 4. Head is a symbol.
	if sym, ok := head.(*reader.Symbol); ok {
		if macroHeads[sym.Name] {
			logging.Debug().Str("head", sym.Name).Msg("skipping macro-definition form")
			return &hir.NullLiteral{Base: pos}, nil
		}
		if stmtHeads[sym.Name] {
			return nil, l.validationErr(list, sym.Name, "%q is only valid in statement position", sym.Name)
		}
		if isDotPropertySugar(sym.Name) {
			return l.lowerPropertyAccessCall(list, sym)
		}
		if fn, found := l.dispatch[sym.Name]; found {
			return fn(l, list)
		}
		return l.lowerStandardCall(list, sym)
	}

	// 5. Head is a list.
	if headList, ok := head.(*reader.List); ok {
		return l.lowerNestedListHead(list, headList)
	}

	// 6. Default: standard call with a non-symbol, non-list head (e.g. a
	// literal in callee position — lowered and called directly).
	return l.lowerStandardCallGeneric(list)
}

func passthroughUnary(l *Lowerer, list *reader.List) (hir.Expr, error) {
	if len(list.Elements) != 2 {
		return nil, l.validationErr(list, "quasiquote", "expected exactly 1 argument, got %d", len(list.Elements)-1)
	}
	return l.lowerNode(list.Elements[1])
}

func (l *Lowerer) lowerDotCall(list *reader.List, sym *reader.Symbol) (hir.Expr, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "dot-call", "dot-prefix call %q needs a receiver", sym.Name)
	}
	pos := hir.At(list.Pos())
	receiver, err := l.lowerNode(list.Elements[1])
	if err != nil {
		return nil, err
	}
	args, err := l.lowerArgs(list.Elements[2:])
	if err != nil {
		return nil, err
	}
	methodName := sanitizeIdent(sym.Name[1:])
	return &hir.CallExpression{
		Base: pos,
		Callee: &hir.MemberExpression{
			Base:     pos,
			Object:   receiver,
			Property: &hir.Identifier{Base: pos, Name: methodName},
			Computed: false,
		},
		Args: args,
	}, nil
}

// lowerPropertyAccessCall implements spec §4.1's identifier post-processing
// rule: a dot-containing symbol used as a call head becomes a member call
// (CallMemberExpression), e.g. `(obj.a.b x)` -> `obj.a.b(x)`.
func (l *Lowerer) lowerPropertyAccessCall(list *reader.List, sym *reader.Symbol) (hir.Expr, error) {
	pos := hir.At(list.Pos())
	idx := strings.LastIndexByte(sym.Name, '.')
	prefix, method := sym.Name[:idx], sym.Name[idx+1:]
	obj := l.lowerDotPropertySugar(pos, prefix)
	args, err := l.lowerArgs(list.Elements[1:])
	if err != nil {
		return nil, err
	}
	return &hir.CallMemberExpression{Base: pos, Object: obj, MethodName: sanitizeIdent(method), Args: args}, nil
}

func (l *Lowerer) lowerArgs(nodes []reader.Node) ([]hir.Expr, error) {
	out := make([]hir.Expr, 0, len(nodes))
	for _, n := range nodes {
		e, err := l.lowerNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
