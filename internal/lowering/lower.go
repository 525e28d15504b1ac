package lowering

import (
	"fmt"

	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

// Result is the outcome of lowering a top-level program: the statements that
// lowered successfully plus a warning summary for any form that didn't
// (spec §7 "Top-level resilience").
type Result struct {
	Program  []hir.Stmt
	Warnings []string
}

// Lower implements spec §7's top-level resilience rule: a failure on one
// top-level form is collected rather than aborting the whole compilation;
// the compilation succeeds if at least one form lowered. If every form
// failed, Lower returns the first error. Bare top-level expressions are
// wrapped in ExpressionStatement per spec invariant 1 (every HIR top-level
// node is a Stmt).
func Lower(ctx *hir.Context, nodes []reader.Node, source, filePath string) (*Result, error) {
	l := New(ctx, source, filePath)
	res := &Result{}
	var firstErr error

	for i, n := range nodes {
		stmt, err := l.lowerNodeAsStmt(n)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			res.Warnings = append(res.Warnings, fmt.Sprintf("form %d: %s", i, err.Error()))
			continue
		}
		res.Program = append(res.Program, stmt)
	}

	if len(res.Program) == 0 && len(nodes) > 0 {
		return nil, firstErr
	}
	return res, nil
}
