package lowering

import (
	"strings"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// lowerEnum implements spec §4.8's structural half: `(enum Name[:Type]
// [Type] case...)` lowers to an EnumDeclaration node. Deciding between the
// Object.freeze and class-with-factories renderings is codegen's job (spec
// §4.8 lowering table) — the HIR only needs to carry the declared shape.
func (l *Lowerer) lowerEnum(list *reader.List) (hir.Stmt, error) {
	if len(list.Elements) < 2 {
		return nil, l.validationErr(list, "enum", "expected (enum Name case...)")
	}
	nameSym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return nil, l.validationErr(list, "enum", "enum name must be a symbol")
	}
	name, rawType := splitEnumName(nameSym.Name)

	rest := list.Elements[2:]
	if len(rest) > 0 {
		if sym, ok := rest[0].(*reader.Symbol); ok {
			rawType = sym.Name
			rest = rest[1:]
		}
	}

	cases := make([]hir.EnumCase, 0, len(rest))
	for _, c := range rest {
		ec, err := l.lowerEnumCase(c)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ec)
	}

	pos := hir.At(list.Pos())
	return &hir.EnumDeclaration{
		Base:    pos,
		Id:      &hir.Identifier{Base: pos, Name: sanitizeIdent(name)},
		RawType: rawType,
		Cases:   cases,
	}, nil
}

// splitEnumName handles the "Name:Type" encoding of the raw type.
func splitEnumName(name string) (string, string) {
	if i := strings.IndexByte(name, ':'); i > 0 && i < len(name)-1 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

// lowerEnumCase implements spec §4.8's per-case grammar: `(case id)`,
// `(case id rawValue)`, or `(case id key: Type key2: Type2 ...)` for
// associated values.
func (l *Lowerer) lowerEnumCase(n reader.Node) (hir.EnumCase, error) {
	list, ok := n.(*reader.List)
	if !ok || len(list.Elements) < 2 {
		return hir.EnumCase{}, l.validationErr(n, "enum case", "expected (case id ...)")
	}
	head, ok := list.Elements[0].(*reader.Symbol)
	if !ok || head.Name != "case" {
		return hir.EnumCase{}, l.validationErr(n, "enum case", "expected a `case` declarator")
	}
	idSym, ok := list.Elements[1].(*reader.Symbol)
	if !ok {
		return hir.EnumCase{}, l.validationErr(n, "enum case", "case id must be a symbol")
	}

	rest := list.Elements[2:]
	if len(rest) > 0 {
		if sym, ok := rest[0].(*reader.Symbol); ok && sym.IsNamedArg() {
			values, err := l.lowerEnumAssociatedValues(rest)
			if err != nil {
				return hir.EnumCase{}, err
			}
			return hir.EnumCase{Id: idSym.Name, AssociatedValues: values}, nil
		}
	}

	var rawValue hir.Expr
	if len(rest) == 1 {
		v, err := l.lowerNode(rest[0])
		if err != nil {
			return hir.EnumCase{}, err
		}
		rawValue = v
	}
	return hir.EnumCase{Id: idSym.Name, RawValue: rawValue}, nil
}

func (l *Lowerer) lowerEnumAssociatedValues(elems []reader.Node) ([]hir.EnumAssociatedValue, error) {
	var values []hir.EnumAssociatedValue
	for i := 0; i < len(elems); i += 2 {
		sym, ok := elems[i].(*reader.Symbol)
		if !ok || !sym.IsNamedArg() {
			return nil, l.validationErr(elems[i], "enum case", "expected a `name:` associated value")
		}
		if i+1 >= len(elems) {
			return nil, l.validationErr(elems[i], "enum case", "associated value %q is missing its type", sym.Name)
		}
		typeSym, ok := elems[i+1].(*reader.Symbol)
		if !ok {
			return nil, l.validationErr(elems[i+1], "enum case", "associated value type must be a symbol")
		}
		values = append(values, hir.EnumAssociatedValue{
			Name:     sanitizeIdent(strings.TrimSuffix(sym.Name, ":")),
			TypeName: typeSym.Name,
		})
	}
	return values, nil
}
