package cssmodules

import (
	"github.com/symbaloo/elm-css-modules-plugin/internal/ast"
)

// isTargetCall reports whether id is a CSS-module declaration: a call whose
// callee is the identifier A2 and whose first argument is an identifier
// equal to taggerName. Comparison is exact and case-sensitive.
//
// Total over every node shape: non-calls, calls without arguments, and
// calls whose first argument is not an identifier all yield false. The
// second and third arguments are not inspected here; their shape is checked
// by the session when the match fires.
func isTargetCall(b *ast.Builder, id ast.ExprID, taggerName string) bool {
	call, ok := b.Exprs.Call(id)
	if !ok {
		return false
	}
	callee, ok := b.Exprs.Ident(call.Target)
	if !ok {
		return false
	}
	if b.Strings.MustLookup(callee.Name) != targetCalleeName {
		return false
	}
	if len(call.Args) == 0 {
		return false
	}
	first, ok := b.Exprs.Ident(call.Args[0])
	if !ok {
		return false
	}
	return b.Strings.MustLookup(first.Name) == taggerName
}
