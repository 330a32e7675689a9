package diagfmt

import (
	"strings"
	"testing"

	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	src := "var a = 1;\nvar bad = '';\n"
	fileID := fs.AddVirtual("src/Main.js", []byte(src))

	bag := diag.NewBag(16)
	bag.Add(diag.NewError(
		diag.CSSEmptyClassName,
		source.Span{File: fileID, Start: 21, End: 23}, // '' на второй строке
		"classname for module './Main.css' with key 'bad' contained an empty string (2,11)",
	))
	return bag, fs
}

func TestPrettyHeader(t *testing.T) {
	bag, fs := testBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	want := "src/Main.js:2:11: ERROR CSS1001: classname for module './Main.css' with key 'bad' contained an empty string (2,11)\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestPrettyPreviewUnderline(t *testing.T) {
	bag, fs := testBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowPreview: true})

	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output = %q", sb.String())
	}
	if lines[1] != "    var bad = '';" {
		t.Errorf("preview line = %q", lines[1])
	}
	if lines[2] != "              ^~" {
		t.Errorf("underline = %q", lines[2])
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("Note.js", []byte("xx\n"))

	bag := diag.NewBag(16)
	d := diag.NewError(diag.CSSMalformedTarget,
		source.Span{File: fileID, Start: 0, End: 2},
		"second argument must be a string literal")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 2}, "expected a css module path here")
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})

	out := sb.String()
	if !strings.Contains(out, "ERROR CSS1002: second argument must be a string literal") {
		t.Errorf("missing primary header: %q", out)
	}
	if !strings.Contains(out, "INFO note: expected a css module path here") {
		t.Errorf("missing note line: %q", out)
	}
}

func TestPrettyOrderFollowsBag(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("Order.js", []byte("a\nb\n"))

	bag := diag.NewBag(16)
	bag.Add(diag.NewError(diag.CSSEmptyClassName, source.Span{File: fileID, Start: 2, End: 3}, "second"))
	bag.Add(diag.NewError(diag.CSSEmptyClassName, source.Span{File: fileID, Start: 0, End: 1}, "first"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	out := sb.String()
	if strings.Index(out, "second") > strings.Index(out, "first") {
		t.Errorf("diagnostics reordered: %q", out)
	}
}

func TestFormatPath(t *testing.T) {
	if got := formatPath("a/b/Main.js", PathModeBasename); got != "Main.js" {
		t.Errorf("basename = %q", got)
	}
	if got := formatPath("a/b/Main.js", PathModeAuto); got != "a/b/Main.js" {
		t.Errorf("auto = %q", got)
	}
}
