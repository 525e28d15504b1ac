// Package irdump serializes a lowered HIR program to JSON for `hqlc ir
// --json` (SPEC_FULL.md §10.4). Built with tidwall/sjson/gjson rather than
// encoding/json: each node is assembled by setting paths into a growing JSON
// document (sjson.SetRaw), and the final pretty-printing goes through
// gjson's "@pretty" modifier (backed by tidwall/pretty) instead of
// json.MarshalIndent.
package irdump

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hqlcompiler/hqlc/internal/hir"
)

// Dump renders program as a pretty-printed JSON array of node descriptions.
func Dump(program []hir.Stmt) (string, error) {
	doc := "[]"
	for i, s := range program {
		raw := nodeJSON(s)
		var err error
		doc, err = sjson.SetRaw(doc, strconv.Itoa(i), raw)
		if err != nil {
			return "", err
		}
	}
	return gjson.Get(doc, "@pretty").String(), nil
}

// obj builds a JSON object for one node. Field insertion order follows
// natural.Less rather than Go's randomized map order, so two runs over the
// same program byte-for-byte agree (the deterministic-dump guarantee
// SPEC_FULL.md §12 promises for `hqlc ir --json`).
func obj(kind string, fields map[string]string) string {
	doc := "{}"
	doc, _ = sjson.Set(doc, "kind", kind)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natural.Less(keys[i], keys[j]) })
	for _, k := range keys {
		doc, _ = sjson.SetRaw(doc, k, fields[k])
	}
	return doc
}

func str(s string) string { return strconv.Quote(s) }
func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
func boolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func arr(items []string) string {
	doc := "[]"
	for i, it := range items {
		doc, _ = sjson.SetRaw(doc, strconv.Itoa(i), it)
	}
	return doc
}

// nodeJSON handles the node kinds most useful to inspect while debugging
// lowering; anything else falls back to a generic {"kind":..., "repr":...}
// record rather than exhaustively mapping every HIR variant.
func nodeJSON(n hir.Node) string {
	switch v := n.(type) {
	case nil:
		return "null"

	case *hir.NullLiteral:
		return obj("NullLiteral", nil)
	case *hir.BooleanLiteral:
		return obj("BooleanLiteral", map[string]string{"value": boolean(v.Value)})
	case *hir.NumericLiteral:
		return obj("NumericLiteral", map[string]string{"value": num(v.Value)})
	case *hir.StringLiteral:
		return obj("StringLiteral", map[string]string{"value": str(v.Value)})
	case *hir.Identifier:
		return obj("Identifier", map[string]string{"name": str(v.Name)})

	case *hir.VariableDeclaration:
		decls := make([]string, len(v.Declarators))
		for i, d := range v.Declarators {
			decls[i] = obj("Declarator", map[string]string{"id": nodeJSON(d.Id), "init": nodeJSON(d.Init)})
		}
		return obj("VariableDeclaration", map[string]string{"declarators": arr(decls)})

	case *hir.ExpressionStatement:
		return obj("ExpressionStatement", map[string]string{"expression": nodeJSON(v.Expression)})

	case *hir.BlockStatement:
		stmts := make([]string, len(v.Body))
		for i, s := range v.Body {
			stmts[i] = nodeJSON(s)
		}
		return obj("BlockStatement", map[string]string{"body": arr(stmts)})

	case *hir.IfStatement:
		fields := map[string]string{"test": nodeJSON(v.Test), "consequent": nodeJSON(v.Consequent)}
		if v.Alternate != nil {
			fields["alternate"] = nodeJSON(v.Alternate)
		}
		return obj("IfStatement", fields)

	case *hir.ReturnStatement:
		return obj("ReturnStatement", map[string]string{"argument": nodeJSON(v.Argument)})

	case *hir.CallExpression:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = nodeJSON(a)
		}
		return obj("CallExpression", map[string]string{"callee": nodeJSON(v.Callee), "args": arr(args)})

	case *hir.CallMemberExpression:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = nodeJSON(a)
		}
		return obj("CallMemberExpression", map[string]string{"object": nodeJSON(v.Object), "method": str(v.MethodName), "args": arr(args)})

	case *hir.MemberExpression:
		return obj("MemberExpression", map[string]string{"object": nodeJSON(v.Object), "property": nodeJSON(v.Property), "computed": boolean(v.Computed)})

	case *hir.BinaryExpression:
		return obj("BinaryExpression", map[string]string{"operator": str(v.Operator), "left": nodeJSON(v.Left), "right": nodeJSON(v.Right)})

	case *hir.FxFunctionDeclaration:
		return obj("FxFunctionDeclaration", map[string]string{"id": nodeJSON(v.Id), "body": nodeJSON(v.Body)})

	case *hir.FunctionDeclaration:
		return obj("FunctionDeclaration", map[string]string{"id": nodeJSON(v.Id), "body": nodeJSON(v.Body)})

	case *hir.ClassDeclaration:
		return obj("ClassDeclaration", map[string]string{"id": nodeJSON(v.Id)})

	case *hir.EnumDeclaration:
		return obj("EnumDeclaration", map[string]string{"id": nodeJSON(v.Id), "rawType": str(v.RawType)})

	default:
		return obj("Unknown", map[string]string{"repr": str(fmt.Sprintf("%T", n))})
	}
}
