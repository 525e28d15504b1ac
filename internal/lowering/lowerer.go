// Package lowering implements the AST→HIR transformer: spec §2's "Lowering"
// layer, grounded on the teacher's internal/semantic traversal shape (a
// struct carrying mutable compilation state, walked via a dispatch table)
// but rebuilt around HQL's s-expression dispatch instead of DWScript's
// grammar-driven visitor.
package lowering

import (
	"fmt"

	"github.com/hqlcompiler/hqlc/internal/compilerrors"
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// Lowerer threads the compilation-scoped *hir.Context through a single
// top-level lowering pass (spec §9 Design Notes: no package-level state).
type Lowerer struct {
	ctx        *hir.Context
	source     string
	filePath   string
	dispatch   map[string]specialForm
	dispatched bool
}

// New returns a Lowerer ready to lower one compilation's worth of top-level
// forms. source/filePath are carried only for error rendering (spec §7).
func New(ctx *hir.Context, source, filePath string) *Lowerer {
	l := &Lowerer{ctx: ctx, source: source, filePath: filePath}
	l.buildDispatch()
	return l
}

// errLoc builds a Location from a reader node's position.
func (l *Lowerer) errLoc(n reader.Node) *compilerrors.Location {
	if n == nil {
		return nil
	}
	return &compilerrors.Location{FilePath: l.filePath, Pos: n.Pos()}
}

func (l *Lowerer) validationErr(n reader.Node, context, format string, args ...any) error {
	return compilerrors.NewValidationError(fmt.Sprintf(format, args...), context, l.errLoc(n))
}

// inLoop reports whether lowering is currently inside a `loop` body, which
// changes `if`'s lowering from ConditionalExpression to IfStatement (spec
// §4.2 `if` row).
func (l *Lowerer) inLoop() bool {
	_, ok := l.ctx.CurrentLoop()
	return ok
}
