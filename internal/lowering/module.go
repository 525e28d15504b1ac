package lowering

import (
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/logging"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// skipStmt is the Stmt-position counterpart of "emit Null and signal Skip"
// (spec §4.1 item 4a, §7 "an import/export head lacking a known sub-shape
// -> skip with debug log").
func skipStmt(pos hir.Base) hir.Stmt {
	logging.Debug().Msg("skipping import/export form with no recognized shape")
	return &hir.ExpressionStatement{Base: pos, Expression: &hir.NullLiteral{Base: pos}}
}

// importSpecifiers parses the bracketed `[a b as c]` vector shared by the
// import and export vector-forms (spec §4.2 `import`/`export` row).
func (l *Lowerer) importSpecifiers(vec *reader.List) ([]hir.ImportSpecifier, error) {
	var specs []hir.ImportSpecifier
	elems := vec.Elements
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(*reader.Symbol)
		if !ok {
			return nil, l.validationErr(elems[i], "import", "specifier must be a symbol")
		}
		local := sanitizeIdent(sym.Name)
		if i+2 < len(elems) {
			if asSym, ok := elems[i+1].(*reader.Symbol); ok && asSym.Name == "as" {
				if aliasSym, ok := elems[i+2].(*reader.Symbol); ok {
					local = sanitizeIdent(aliasSym.Name)
					specs = append(specs, hir.ImportSpecifier{Imported: sym.Name, Local: local})
					i += 2
					continue
				}
			}
		}
		specs = append(specs, hir.ImportSpecifier{Imported: sym.Name, Local: local})
	}
	return specs, nil
}

func exportSpecifiers(specs []hir.ImportSpecifier) []hir.ExportSpecifier {
	out := make([]hir.ExportSpecifier, len(specs))
	for i, s := range specs {
		out[i] = hir.ExportSpecifier{Local: sanitizeIdent(s.Imported), Exported: s.Local}
	}
	return out
}

func stringArg(n reader.Node) (string, bool) {
	lit, ok := n.(*reader.Literal)
	if !ok {
		return "", false
	}
	s, ok := lit.Value.(string)
	return s, ok
}

// lowerImport implements spec §4.2's `import` row: the vector-form
// (`(import [a b as c] from "path")`) and the namespace form
// (`(import name from "path")`); anything else is defensively skipped.
func (l *Lowerer) lowerImport(list *reader.List) (hir.Stmt, error) {
	pos := hir.At(list.Pos())
	args := list.Elements[1:]

	if len(args) >= 1 {
		if vec, ok := args[0].(*reader.List); ok {
			specs, err := l.importSpecifiers(vec)
			if err != nil {
				return nil, err
			}
			source := l.importSource(args[1:])
			return &hir.ImportDeclaration{Base: pos, Specifiers: specs, Source: source}, nil
		}
		if sym, ok := args[0].(*reader.Symbol); ok {
			source := l.importSource(args[1:])
			return &hir.JsImportReference{Base: pos, Name: sanitizeIdent(sym.Name), Source: source}, nil
		}
	}
	return skipStmt(pos), nil
}

// importSource finds the string literal following an optional `from`
// keyword in the remainder of an import/export form.
func (l *Lowerer) importSource(rest []reader.Node) string {
	for i, n := range rest {
		if sym, ok := n.(*reader.Symbol); ok && sym.Name == "from" && i+1 < len(rest) {
			if s, ok := stringArg(rest[i+1]); ok {
				return s
			}
		}
		if s, ok := stringArg(n); ok {
			return s
		}
	}
	return ""
}

// lowerExport implements spec §4.2's `export` row. Three sub-shapes:
// a bracketed vector of local names (named re-export of already-declared
// bindings), a nested `let`/`var` declaration (ExportVariableDeclaration),
// or a nested declaration of another kind (fn/fx/class/enum, wrapped as
// ExportNamedDeclaration). Anything else is the "plain export ... consumed
// elsewhere" case and is skipped (spec §4.2/§7).
func (l *Lowerer) lowerExport(list *reader.List) (hir.Stmt, error) {
	pos := hir.At(list.Pos())
	args := list.Elements[1:]
	if len(args) == 0 {
		return skipStmt(pos), nil
	}

	if vec, ok := args[0].(*reader.List); ok {
		if head, ok := firstSymbol(vec); !ok || !stmtHeads[head] {
			specs, err := l.importSpecifiers(vec)
			if err != nil {
				return nil, err
			}
			return &hir.ExportNamedDeclaration{Base: pos, Specifiers: exportSpecifiers(specs)}, nil
		}

		sym := vec.Elements[0].(*reader.Symbol)
		switch sym.Name {
		case "let", "var":
			declStmt, err := l.lowerLetVarStmt(vec)
			if err != nil {
				return nil, err
			}
			varDecl, ok := declStmt.(*hir.VariableDeclaration)
			if !ok {
				return nil, l.validationErr(vec, "export", "export of let/var requires the single-binding form")
			}
			return &hir.ExportVariableDeclaration{Base: pos, Declaration: varDecl}, nil
		default:
			inner, handled, err := l.lowerStmtForm(vec, sym)
			if err != nil {
				return nil, err
			}
			if !handled {
				return skipStmt(pos), nil
			}
			return &hir.ExportNamedDeclaration{Base: pos, Declaration: inner}, nil
		}
	}

	return skipStmt(pos), nil
}

func firstSymbol(list *reader.List) (string, bool) {
	if len(list.Elements) == 0 {
		return "", false
	}
	sym, ok := list.Elements[0].(*reader.Symbol)
	if !ok {
		return "", false
	}
	return sym.Name, true
}

// lowerJsImport implements spec §4.2's `js-import` verbatim interop form:
// `(js-import name "path")` -> JsImportReference.
func (l *Lowerer) lowerJsImport(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) != 3 {
		return nil, l.validationErr(list, "js-import", "expected (js-import name \"path\")")
	}
	sym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(list, "js-import", "import name must be a symbol")
	}
	source, ok := stringArg(list.Elements[2])
	if !ok {
		return nil, l.validationErr(list, "js-import", "import source must be a string literal")
	}
	return &hir.JsImportReference{Base: hir.At(list.Pos()), Name: sanitizeIdent(sym.Name), Source: source}, nil
}

// lowerJsExport implements spec §4.2's `js-export` verbatim interop form:
// `(js-export [a b as c])`, reusing the vector-form specifier grammar.
func (l *Lowerer) lowerJsExport(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) != 2 {
		return nil, l.validationErr(list, "js-export", "expected (js-export [specifiers...])")
	}
	vec, ok := list.Elements[1].(*reader.List)
	if !ok {
		return nil, l.validationErr(list, "js-export", "expected a bracketed specifier list")
	}
	specs, err := l.importSpecifiers(vec)
	if err != nil {
		return nil, err
	}
	return &hir.ExportNamedDeclaration{Base: hir.At(list.Pos()), Specifiers: exportSpecifiers(specs)}, nil
}
