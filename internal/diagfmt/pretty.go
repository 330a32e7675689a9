package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan)
)

// AutoColor reports whether colored output makes sense for w: true only
// when w is a terminal. Callers use it to fill PrettyOpts.Color.
func AutoColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() в их записанном порядке.
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем (опционально) строку-контекст с подчёркиванием ^~~~ по Span,
// затем Notes в том же формате.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Severity, d.Code.String(), d.Message, d.Primary, opts)
		if opts.ShowPreview {
			writePreview(w, fs, d.Primary)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeHeader(w, fs, diag.SevInfo, "note", n.Msg, n.Span, opts)
				if opts.ShowPreview {
					writePreview(w, fs, n.Span)
				}
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, code, msg string, sp source.Span, opts PrettyOpts) {
	start, _ := fs.Resolve(sp)
	path := formatPath(fs.Get(sp.File).Path, opts.PathMode)
	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, code, msg)
}

// writePreview prints the offending source line with a ^~~~ underline.
// Display widths go through runewidth so the caret lines up for wide runes.
func writePreview(w io.Writer, fs *source.FileSet, sp source.Span) {
	start, end := fs.Resolve(sp)
	line := fs.Get(sp.File).GetLine(start.Line)
	if line == "" {
		return
	}

	runes := []rune(line)
	startCol := int(start.Col) - 1
	if startCol > len(runes) {
		startCol = len(runes)
	}

	// Подчёркиваем до конца span-а, но не дальше конца строки.
	endCol := len(runes)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	pad := runewidth.StringWidth(string(runes[:startCol]))
	width := runewidth.StringWidth(string(runes[startCol:min(endCol, len(runes))]))
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return sevErrorColor
	case diag.SevWarning:
		return sevWarningColor
	default:
		return sevInfoColor
	}
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				return filepath.ToSlash(rel)
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
