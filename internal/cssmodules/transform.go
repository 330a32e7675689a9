package cssmodules

import (
	"strings"

	"github.com/symbaloo/elm-css-modules-plugin/internal/ast"
	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// Transform is one transform session: one instance = one tree walk = one
// diagnostic accumulator. Sessions are not reusable and not safe for
// concurrent use; run concurrent walks with one session each.
type Transform struct {
	fs   *source.FileSet
	opts Options
	bag  *diag.Bag
	rep  diag.Reporter
}

// New creates a session over fs. The FileSet must contain every file the
// walked tree's spans reference; it is only read, never modified.
// Diagnostics flow through a Reporter into the session bag.
func New(fs *source.FileSet, opts Options) *Transform {
	opts = opts.WithDefaults()
	bag := diag.NewBag(opts.MaxDiagnostics)
	return &Transform{
		fs:   fs,
		opts: opts,
		bag:  bag,
		rep:  diag.BagReporter{Bag: bag},
	}
}

// Options returns the session configuration.
func (t *Transform) Options() Options {
	return t.opts
}

// Bag exposes the session accumulator, mainly for drivers that render
// diagnostics themselves instead of relying on the aggregated error.
func (t *Transform) Bag() *diag.Bag {
	return t.bag
}

// Run walks program once, rewriting every matched CSS-module declaration
// in place. It returns nil on a clean pass, or a single *Error aggregating
// every diagnostic recorded anywhere in the tree, in walk order. Mutations
// applied before a failing finish are not rolled back: the tree is fully
// rewritten either way, and callers must not serialize it when Run fails.
func (t *Transform) Run(b *ast.Builder, program ast.ProgramID) error {
	ast.Walk(b, program, func(id ast.ExprID) bool {
		t.visitExpr(b, id)
		return true
	})
	return t.finish()
}

func (t *Transform) visitExpr(b *ast.Builder, id ast.ExprID) {
	if !isTargetCall(b, id, t.opts.TaggerName) {
		return
	}
	call, _ := b.Exprs.Call(id)
	callSpan := b.Exprs.Get(id).Span

	// Форму аргументов 2 и 3 гарантирует компилятор; если контракт нарушен,
	// сообщаем явно и узел не трогаем.
	if len(call.Args) < 3 {
		// Матчер гарантирует args[0]; накрываем всё, что есть.
		argsSpan := b.Exprs.Get(call.Args[0]).Span
		for _, arg := range call.Args[1:] {
			argsSpan = argsSpan.Cover(b.Exprs.Get(arg).Span)
		}
		diag.ReportError(t.rep, diag.CSSMalformedTarget, callSpan,
			"malformed css module declaration: expected 3 arguments",
			diag.Note{Span: argsSpan, Msg: "expected tagger, css path and class map"})
		return
	}
	pathLit, ok := b.Exprs.Literal(call.Args[1])
	if !ok || pathLit.Kind != ast.ExprLitString {
		diag.ReportError(t.rep, diag.CSSMalformedTarget, callSpan,
			"malformed css module declaration: css path is not a string literal",
			diag.Note{Span: b.Exprs.Get(call.Args[1]).Span, Msg: "expected a string literal css path here"})
		return
	}
	obj, ok := b.Exprs.Object(call.Args[2])
	if !ok {
		diag.ReportError(t.rep, diag.CSSMalformedTarget, callSpan,
			"malformed css module declaration: class map is not an object literal",
			diag.Note{Span: b.Exprs.Get(call.Args[2]).Span, Msg: "expected an object literal of class names here"})
		return
	}

	// Путь берём как есть: без резолва и нормализации.
	filePath := b.Strings.MustLookup(pathLit.Value)

	newProps := make([]ast.ObjectProp, 0, len(obj.Props))
	for _, prop := range obj.Props {
		newProp, d := rewriteEntry(b, t.fs, t.opts.LoaderName, filePath, prop)
		if d != nil {
			t.rep.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
		}
		newProps = append(newProps, newProp)
	}
	// Атомарная замена всего списка свойств.
	obj.Props = newProps
}

// finish drains the accumulator into the aggregated failure, if any.
func (t *Transform) finish() error {
	if !t.bag.HasErrors() {
		return nil
	}
	return &Error{Diagnostics: append([]diag.Diagnostic(nil), t.bag.Items()...)}
}

// Error is the aggregated end-of-walk failure: every diagnostic recorded
// during one session, in the order the walk recorded them.
type Error struct {
	Diagnostics []diag.Diagnostic
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("css module transform failed:")
	for _, d := range e.Diagnostics {
		sb.WriteString("\n    ")
		sb.WriteString(d.Message)
	}
	return sb.String()
}
