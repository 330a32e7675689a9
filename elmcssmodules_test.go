package elmcssmodules_test

import (
	"context"
	"strings"
	"testing"

	plugin "github.com/symbaloo/elm-css-modules-plugin"
)

// buildProgram assembles the tree for one compiled declaration through the
// public surface only.
func buildProgram(fs *plugin.FileSet, src, tagger, cssPath string, classes map[uint32]string) (*plugin.Builder, plugin.ProgramID, plugin.ExprID, plugin.FileID) {
	fileID := fs.AddVirtual("Main.js", []byte(src))
	b := plugin.NewBuilder(plugin.Hints{})

	var props []plugin.ObjectProp
	for off, name := range classes {
		props = append(props, plugin.ObjectProp{
			Key:     b.Intern("cls"),
			KeySpan: plugin.Span{File: fileID, Start: off, End: off + 3},
			Value:   b.Exprs.NewLiteral(plugin.Span{File: fileID, Start: off + 5, End: off + 7 + uint32(len(name))}, plugin.ExprLitString, b.Intern(name)),
		})
	}

	tagIdent := b.Exprs.NewIdent(plugin.Span{File: fileID, Start: 13, End: 16}, b.Intern(tagger))
	pathLit := b.Exprs.NewLiteral(plugin.Span{File: fileID, Start: 18, End: 18 + uint32(len(cssPath)) + 2}, plugin.ExprLitString, b.Intern(cssPath))
	object := b.Exprs.NewObject(plugin.Span{File: fileID, Start: 30, End: uint32(len(src)) - 3}, props)
	callee := b.Exprs.NewIdent(plugin.Span{File: fileID, Start: 10, End: 12}, b.Intern("A2"))
	call := b.Exprs.NewCall(plugin.Span{File: fileID, Start: 10, End: uint32(len(src)) - 2}, callee, []plugin.ExprID{tagIdent, pathLit, object})
	stmt := b.Stmts.NewVar(plugin.Span{File: fileID, Start: 0, End: uint32(len(src))}, b.Intern("css"), call)
	program := b.NewProgram(plugin.Span{File: fileID, Start: 0, End: uint32(len(src))})
	b.PushStmt(program, stmt)
	return b, program, object, fileID
}

func TestEndToEndRewrite(t *testing.T) {
	src := "var css = A2(tag, './Main.css', { cls: 'row' });\n"
	fs := plugin.NewFileSet()
	b, program, object, _ := buildProgram(fs, src, "tag", "./Main.css", map[uint32]string{34: "row"})

	session := plugin.New(fs, plugin.Options{TaggerName: "tag"})
	if err := session.Run(b, program); err != nil {
		t.Fatalf("Run: %v", err)
	}

	obj, _ := b.Exprs.Object(object)
	idx, ok := b.Exprs.Index(obj.Props[0].Value)
	if !ok {
		t.Fatalf("property value not rewritten to a lookup")
	}
	call, _ := b.Exprs.Call(idx.Target)
	callee, _ := b.Exprs.Ident(call.Target)
	if got := b.Strings.MustLookup(callee.Name); got != plugin.DefaultLoaderName {
		t.Errorf("loader = %q, want %q", got, plugin.DefaultLoaderName)
	}
}

func TestEndToEndAggregatedFailure(t *testing.T) {
	src := "var css = A2(tag, './Main.css', { cls: '' });\n"
	fs := plugin.NewFileSet()
	b, program, _, _ := buildProgram(fs, src, "tag", "./Main.css", map[uint32]string{34: ""})

	session := plugin.New(fs, plugin.Options{TaggerName: "tag"})
	err := session.Run(b, program)
	if err == nil {
		t.Fatalf("empty class name passed")
	}
	if !strings.HasPrefix(err.Error(), "css module transform failed:") {
		t.Errorf("err = %q", err.Error())
	}

	var sb strings.Builder
	plugin.Pretty(&sb, session.Bag(), fs, plugin.PrettyOpts{})
	if !strings.Contains(sb.String(), "Main.js:1:") || !strings.Contains(sb.String(), "CSS1001") {
		t.Errorf("rendered = %q", sb.String())
	}
}

func TestEndToEndDriver(t *testing.T) {
	src := "var css = A2(tag, './Main.css', { cls: 'ok' });\n"
	fs := plugin.NewFileSet()
	b, program, _, fileID := buildProgram(fs, src, "tag", "./Main.css", map[uint32]string{34: "ok"})

	units := []plugin.Unit{{Path: "Main.js", FileID: fileID, Builder: b, Program: program}}
	results, err := plugin.TransformAll(context.Background(), fs, units, plugin.Options{TaggerName: "tag"}, 1)
	if err != nil {
		t.Fatalf("TransformAll: %v", err)
	}
	if plugin.Failed(results) {
		t.Fatalf("clean unit failed: %v", results[0].Err)
	}
}
