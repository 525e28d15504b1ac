package lowering

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// invalidIdentChar matches any rune that cannot appear in a JS identifier;
// leadingDigit below is the regexp2 lookahead guard on a result that would
// otherwise start with a digit (spec §3.2's "sanitization rule"; RE2 cannot
// express the lookahead, which is why the pack's regexp2 dependency — seen
// in AleutianFOSS and the paserati manifest — is used here rather than the
// stdlib regexp, per SPEC_FULL.md §11.4).
var invalidIdentChar = regexp2.MustCompile(`[^A-Za-z0-9_]`, regexp2.None)

var leadingDigit = regexp2.MustCompile(`^(?=[0-9])`, regexp2.None)

func sanitizeIdent(name string) string {
	out, err := invalidIdentChar.Replace(name, "_", -1, -1)
	if err != nil {
		out = name
	}
	if ok, _ := leadingDigit.MatchString(out); ok {
		out = "_" + out
	}
	return out
}

// loweredSymbol is the identifier post-processing pipeline of spec §4.2.
func (l *Lowerer) loweredSymbol(sym *reader.Symbol) hir.Expr {
	pos := hir.At(sym.Pos())

	if sym.Name == "_" {
		return &hir.StringLiteral{Base: pos, Value: "_"}
	}

	if strings.HasPrefix(sym.Name, "js/") {
		rest := strings.TrimPrefix(sym.Name, "js/")
		rest = strings.ReplaceAll(rest, "-", "_")
		return &hir.Identifier{Base: pos, Name: rest, IsJSNamespaced: true}
	}

	if isDotPropertySugar(sym.Name) {
		return l.lowerDotPropertySugar(pos, sym.Name)
	}

	return &hir.Identifier{Base: pos, Name: sanitizeIdent(sym.Name)}
}

// isDotPropertySugar reports whether name is "obj.a.b" style sugar: it
// contains a '.', is not `.`-prefixed (that's the dot-call head rule,
// spec §4.1 item 3), and does not start with "js-" (the js-* interop
// family is matched by exact head symbol in the dispatch table, not here).
func isDotPropertySugar(name string) bool {
	if name == "" || name[0] == '.' {
		return false
	}
	if strings.HasPrefix(name, "js-") {
		return false
	}
	return strings.Contains(name, ".")
}

// lowerDotPropertySugar turns "obj.a.b" into Member(Member(obj,a),b).
func (l *Lowerer) lowerDotPropertySugar(pos hir.Base, name string) hir.Expr {
	parts := strings.Split(name, ".")
	var expr hir.Expr = &hir.Identifier{Base: pos, Name: sanitizeIdent(parts[0])}
	for _, part := range parts[1:] {
		expr = &hir.MemberExpression{
			Base:     pos,
			Object:   expr,
			Property: &hir.Identifier{Base: pos, Name: sanitizeIdent(part)},
			Computed: false,
		}
	}
	return expr
}
