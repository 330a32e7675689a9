// Package driver orchestrates transform sessions over many files: parallel
// rewriting for the bundler pipeline and a validate-only check mode for CI,
// backed by an optional disk cache of clean verdicts.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/symbaloo/elm-css-modules-plugin/internal/ast"
	"github.com/symbaloo/elm-css-modules-plugin/internal/cssmodules"
	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/observ"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// Unit is one parsed JavaScript file ready for transformation. The
// front-end owns the Builder; the driver only walks and mutates it.
type Unit struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	Program ast.ProgramID
}

// Result holds the outcome of transforming one unit.
type Result struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Err    error // *cssmodules.Error when the unit's pass failed
	Timing *observ.Timer
}

// Failed reports whether any result carries a failed pass.
func Failed(results []Result) bool {
	for i := range results {
		if results[i].Err != nil {
			return true
		}
	}
	return false
}

// TransformAll rewrites every unit in parallel. Each unit gets its own
// session and its own accumulator, so walks never share mutable state;
// results land at the unit's index and need no locking. jobs <= 0 means
// GOMAXPROCS. The first context cancellation aborts remaining units.
func TransformAll(ctx context.Context, fs *source.FileSet, units []Unit, opts cssmodules.Options, jobs int) ([]Result, error) {
	if len(units) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))

	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			timer := observ.NewTimer()
			session := cssmodules.New(fs, opts)

			phase := timer.Begin("walk")
			err := session.Run(unit.Builder, unit.Program)
			timer.End(phase, unit.Path)

			// Индекс i уникален, мьютекс не нужен.
			results[i] = Result{
				Path:   unit.Path,
				FileID: unit.FileID,
				Bag:    session.Bag(),
				Err:    err,
				Timing: timer,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
