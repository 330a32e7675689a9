// Package testkit holds invariant checks shared by tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/symbaloo/elm-css-modules-plugin/internal/ast"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a built tree:
// 1) program.Span is non-empty and within file content bounds
// 2) every statement span is fully contained in program.Span
func CheckSpanInvariants(b *ast.Builder, programID ast.ProgramID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	p := b.Programs.Get(programID)
	if p == nil {
		return fmt.Errorf("program node not found")
	}

	if p.Span.End <= p.Span.Start {
		return fmt.Errorf("program span is empty: %v", p.Span)
	}
	if p.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", p.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if p.Span.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", p.Span.End, lenContent)
	}

	for _, st := range p.Stmts {
		stmt := b.Stmts.Get(st)
		if stmt == nil {
			return fmt.Errorf("nil stmt for id=%d", st)
		}
		sp := stmt.Span
		if sp.File != p.Span.File {
			return fmt.Errorf("stmt span in different file: %v", sp)
		}
		if sp.Start < p.Span.Start || sp.End > p.Span.End {
			return fmt.Errorf("stmt span outside program span: %v not in %v", sp, p.Span)
		}
	}
	return nil
}

// CheckRewrittenObject verifies that every property of an object literal was
// rewritten into the loader-lookup shape: value is a computed member access
// whose target calls loaderName with exactly one string-literal argument.
func CheckRewrittenObject(b *ast.Builder, objID ast.ExprID, loaderName string) error {
	obj, ok := b.Exprs.Object(objID)
	if !ok {
		return fmt.Errorf("node %d is not an object literal", objID)
	}
	for _, prop := range obj.Props {
		key := b.Strings.MustLookup(prop.Key)
		idx, ok := b.Exprs.Index(prop.Value)
		if !ok {
			return fmt.Errorf("property %q: value is not a computed member access", key)
		}
		call, ok := b.Exprs.Call(idx.Target)
		if !ok {
			return fmt.Errorf("property %q: lookup target is not a call", key)
		}
		callee, ok := b.Exprs.Ident(call.Target)
		if !ok || b.Strings.MustLookup(callee.Name) != loaderName {
			return fmt.Errorf("property %q: callee is not %q", key, loaderName)
		}
		if len(call.Args) != 1 {
			return fmt.Errorf("property %q: loader call has %d args, want 1", key, len(call.Args))
		}
		if lit, ok := b.Exprs.Literal(call.Args[0]); !ok || lit.Kind != ast.ExprLitString {
			return fmt.Errorf("property %q: loader argument is not a string literal", key)
		}
		if lit, ok := b.Exprs.Literal(idx.Index); !ok || lit.Kind != ast.ExprLitString {
			return fmt.Errorf("property %q: lookup key is not a string literal", key)
		}
	}
	return nil
}
