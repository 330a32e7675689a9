package cssmodules

import (
	"fmt"

	"github.com/symbaloo/elm-css-modules-plugin/internal/ast"
	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// rewriteEntry maps one class-map property onto its replacement:
// the same key, with the value rewritten from a string literal 'class'
// into <loader>('<filePath>')['class']. The original value's span is
// reused for every node of the replacement subtree.
//
// The replacement is produced unconditionally, empty class names
// included, so the tree stays well-formed; an empty class name
// additionally yields a diagnostic that the caller accumulates.
//
// A property whose value is not a string literal is returned unchanged
// with no diagnostic. That is what makes the transform a no-op on its
// own output, where the values are already index expressions.
func rewriteEntry(b *ast.Builder, fs *source.FileSet, loaderName, filePath string, prop ast.ObjectProp) (ast.ObjectProp, *diag.Diagnostic) {
	lit, ok := b.Exprs.Literal(prop.Value)
	if !ok || lit.Kind != ast.ExprLitString {
		return prop, nil
	}

	className := b.Strings.MustLookup(lit.Value)
	valueSpan := b.Exprs.Get(prop.Value).Span

	loader := b.Exprs.NewIdent(valueSpan, b.Intern(loaderName))
	pathArg := b.Exprs.NewLiteral(valueSpan, ast.ExprLitString, b.Intern(filePath))
	load := b.Exprs.NewCall(valueSpan, loader, []ast.ExprID{pathArg})
	// Ключ индексации — исходное значение, пустая строка как есть.
	key := b.Exprs.NewLiteral(valueSpan, ast.ExprLitString, lit.Value)
	lookup := b.Exprs.NewIndex(valueSpan, load, key)

	out := ast.ObjectProp{Key: prop.Key, KeySpan: prop.KeySpan, Value: lookup}

	if className != "" {
		return out, nil
	}

	start, _ := fs.Resolve(valueSpan)
	d := diag.NewError(diag.CSSEmptyClassName, valueSpan, fmt.Sprintf(
		"classname for module '%s' with key '%s' contained an empty string (%d,%d)",
		filePath, b.Strings.MustLookup(prop.Key), start.Line, start.Col,
	)).WithNote(prop.KeySpan, "key declared here")
	return out, &d
}
