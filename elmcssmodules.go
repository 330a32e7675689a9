// Package elmcssmodules rewrites the CSS-module declarations the Elm
// compiler emits in its JavaScript output into native loader lookups:
// A2(<tagger>, './path.css', {alias: 'class'}) becomes
// {alias: require('./path.css')['class']}. Empty class names are collected
// across the whole walk and reported once, as a single aggregated error.
//
// The implementation lives under internal/; this package re-exports the
// surface a host build pipeline needs: registering sources, building the
// tree, running transform sessions and rendering their diagnostics.
package elmcssmodules

import (
	"context"
	"io"

	"github.com/symbaloo/elm-css-modules-plugin/internal/ast"
	"github.com/symbaloo/elm-css-modules-plugin/internal/cssmodules"
	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/diagfmt"
	"github.com/symbaloo/elm-css-modules-plugin/internal/driver"
	"github.com/symbaloo/elm-css-modules-plugin/internal/project"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// Source registration and spans. The front-end that parses the compiled
// JavaScript registers each file here and attaches byte spans to every
// node it builds.
type (
	FileSet = source.FileSet
	FileID  = source.FileID
	Span    = source.Span
	LineCol = source.LineCol
)

// NewFileSet returns an empty file set.
func NewFileSet() *FileSet { return source.NewFileSet() }

// Tree building.
type (
	Builder    = ast.Builder
	Hints      = ast.Hints
	ProgramID  = ast.ProgramID
	StmtID     = ast.StmtID
	ExprID     = ast.ExprID
	ObjectProp = ast.ObjectProp
	Visitor    = ast.Visitor
)

// Literal kinds for Builder.Exprs.NewLiteral.
type ExprLitKind = ast.ExprLitKind

const (
	ExprLitString = ast.ExprLitString
	ExprLitNumber = ast.ExprLitNumber
	ExprLitBool   = ast.ExprLitBool
	ExprLitNull   = ast.ExprLitNull
)

// NewBuilder returns a Builder with arenas pre-sized per hints.
func NewBuilder(hints Hints) *Builder { return ast.NewBuilder(hints) }

// Walk traverses program pre-order, visiting every expression node.
func Walk(b *Builder, program ProgramID, visit Visitor) { ast.Walk(b, program, visit) }

// Transform configuration and session.
type (
	Options   = cssmodules.Options
	Transform = cssmodules.Transform
	// Error is the aggregated failure a session returns when any walk
	// recorded an error-severity diagnostic.
	Error = cssmodules.Error
)

const (
	DefaultTaggerName     = cssmodules.DefaultTaggerName
	DefaultLoaderName     = cssmodules.DefaultLoaderName
	DefaultMaxDiagnostics = cssmodules.DefaultMaxDiagnostics
)

// New creates a transform session. One session = one walk = one
// diagnostics accumulator; sessions are not reusable across trees.
func New(fs *FileSet, opts Options) *Transform { return cssmodules.New(fs, opts) }

// Diagnostics.
type (
	Bag        = diag.Bag
	Diagnostic = diag.Diagnostic
	PrettyOpts = diagfmt.PrettyOpts
)

// Pretty renders a bag human-readably, one header line per diagnostic.
func Pretty(w io.Writer, bag *Bag, fs *FileSet, opts PrettyOpts) {
	diagfmt.Pretty(w, bag, fs, opts)
}

// AutoColor reports whether w is a terminal, for PrettyOpts.Color.
func AutoColor(w io.Writer) bool { return diagfmt.AutoColor(w) }

// Multi-file orchestration.
type (
	Unit      = driver.Unit
	Result    = driver.Result
	DiskCache = driver.DiskCache
)

// TransformAll rewrites every unit in parallel, one session per unit.
func TransformAll(ctx context.Context, fs *FileSet, units []Unit, opts Options, jobs int) ([]Result, error) {
	return driver.TransformAll(ctx, fs, units, opts, jobs)
}

// CheckAll runs validate-only sessions, replaying cached verdicts for
// unchanged files when cache is non-nil.
func CheckAll(ctx context.Context, fs *FileSet, units []Unit, opts Options, cache *DiskCache, jobs int) ([]Result, error) {
	return driver.CheckAll(ctx, fs, units, opts, cache, jobs)
}

// Failed reports whether any result carries a failed pass.
func Failed(results []Result) bool { return driver.Failed(results) }

// LoadSources registers paths in fs, turning read failures into
// diagnostics in bag instead of aborting the batch.
func LoadSources(fs *FileSet, paths []string, bag *Bag) []FileID {
	return driver.LoadSources(fs, paths, bag)
}

// OpenDiskCache initializes the check-verdict cache at the standard
// user cache location under app.
func OpenDiskCache(app string) (*DiskCache, error) { return driver.OpenDiskCache(app) }

// ManifestName is the conventional manifest file name.
const ManifestName = project.ManifestName

// LoadManifest parses an elmcssmodules.toml manifest into Options.
func LoadManifest(path string) (Options, error) { return project.LoadManifest(path) }
