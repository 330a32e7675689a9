package cssmodules

import (
	"strings"
	"testing"

	"github.com/symbaloo/elm-css-modules-plugin/internal/ast"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// fixture bundles one synthetic compiled-output file and the handles tests
// need to poke at the tree after a transform.
type fixture struct {
	fs      *source.FileSet
	fileID  source.FileID
	b       *ast.Builder
	program ast.ProgramID
	call    ast.ExprID
	object  ast.ExprID
}

// spanOf locates needle in content and returns its span. Fails the test if
// the needle is missing or ambiguous enough to matter (first hit wins).
func spanOf(t *testing.T, fileID source.FileID, content, needle string) source.Span {
	t.Helper()
	idx := strings.Index(content, needle)
	if idx < 0 {
		t.Fatalf("needle %q not found in fixture content", needle)
	}
	return source.Span{File: fileID, Start: uint32(idx), End: uint32(idx + len(needle))}
}

// mainFixtureSrc mirrors what the Elm compiler emits for a CssModules.css
// declaration with one valid and one empty class name.
const mainFixtureSrc = `var css = A2(tag, './Main.css', {
    xx: 'someClass',
    yy: ''
});
`

// buildMainFixture assembles the tree an external front-end would hand us
// for mainFixtureSrc, with taggerName as the first argument's identifier.
func buildMainFixture(t *testing.T, taggerName string) *fixture {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("Main.js", []byte(mainFixtureSrc))
	b := ast.NewBuilder(ast.Hints{})

	tagIdent := b.Exprs.NewIdent(spanOf(t, fileID, mainFixtureSrc, "tag"), b.Intern(taggerName))
	pathLit := b.Exprs.NewLiteral(spanOf(t, fileID, mainFixtureSrc, "'./Main.css'"), ast.ExprLitString, b.Intern("./Main.css"))

	props := []ast.ObjectProp{
		{
			Key:     b.Intern("xx"),
			KeySpan: spanOf(t, fileID, mainFixtureSrc, "xx"),
			Value:   b.Exprs.NewLiteral(spanOf(t, fileID, mainFixtureSrc, "'someClass'"), ast.ExprLitString, b.Intern("someClass")),
		},
		{
			Key:     b.Intern("yy"),
			KeySpan: spanOf(t, fileID, mainFixtureSrc, "yy"),
			Value:   b.Exprs.NewLiteral(spanOf(t, fileID, mainFixtureSrc, "''"), ast.ExprLitString, b.Intern("")),
		},
	}

	objStart := strings.Index(mainFixtureSrc, "{")
	objEnd := strings.Index(mainFixtureSrc, "}")
	object := b.Exprs.NewObject(source.Span{File: fileID, Start: uint32(objStart), End: uint32(objEnd + 1)}, props)

	callee := b.Exprs.NewIdent(spanOf(t, fileID, mainFixtureSrc, "A2"), b.Intern("A2"))
	callSpan := source.Span{
		File:  fileID,
		Start: uint32(strings.Index(mainFixtureSrc, "A2")),
		End:   uint32(objEnd + 2),
	}
	call := b.Exprs.NewCall(callSpan, callee, []ast.ExprID{tagIdent, pathLit, object})

	stmtSpan := source.Span{File: fileID, Start: 0, End: uint32(len(mainFixtureSrc) - 1)}
	stmt := b.Stmts.NewVar(stmtSpan, b.Intern("css"), call)

	program := b.NewProgram(source.Span{File: fileID, Start: 0, End: uint32(len(mainFixtureSrc))})
	b.PushStmt(program, stmt)

	return &fixture{
		fs:      fs,
		fileID:  fileID,
		b:       b,
		program: program,
		call:    call,
		object:  object,
	}
}

// propValueString unwraps a rewritten property: returns the loader path and
// lookup key of value, or fails the test on an unexpected shape.
func propValueLookup(t *testing.T, b *ast.Builder, value ast.ExprID) (path, key string) {
	t.Helper()
	idx, ok := b.Exprs.Index(value)
	if !ok {
		t.Fatalf("property value is not a computed member access")
	}
	call, ok := b.Exprs.Call(idx.Target)
	if !ok {
		t.Fatalf("lookup target is not a call")
	}
	if len(call.Args) != 1 {
		t.Fatalf("loader call has %d args, want 1", len(call.Args))
	}
	pathLit, ok := b.Exprs.Literal(call.Args[0])
	if !ok {
		t.Fatalf("loader argument is not a literal")
	}
	keyLit, ok := b.Exprs.Literal(idx.Index)
	if !ok {
		t.Fatalf("lookup key is not a literal")
	}
	return b.Strings.MustLookup(pathLit.Value), b.Strings.MustLookup(keyLit.Value)
}
