package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/symbaloo/elm-css-modules-plugin/internal/cssmodules"
	"github.com/symbaloo/elm-css-modules-plugin/internal/diag"
	"github.com/symbaloo/elm-css-modules-plugin/internal/observ"
	"github.com/symbaloo/elm-css-modules-plugin/internal/project"
	"github.com/symbaloo/elm-css-modules-plugin/internal/source"
)

// CheckAll runs transform sessions in validate-only mode: callers get the
// diagnostics but are free to discard the mutated trees. With a non-nil
// cache, files whose content and options digest matches a prior verdict
// skip the walk entirely and replay the cached diagnostics.
func CheckAll(ctx context.Context, fs *source.FileSet, units []Unit, opts cssmodules.Options, cache *DiskCache, jobs int) ([]Result, error) {
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
			resolved := resolvedOptions(opts)
			key := cacheKey(fs, unit.FileID, resolved)

			var payload DiskPayload
			phase := timer.Begin("cache-get")
			hit, err := cache.Get(key, &payload)
			timer.End(phase, unit.Path)
			if err == nil && hit {
				bag := payloadToBag(&payload, unit.FileID, resolved.MaxDiagnostics)
				results[i] = Result{
					Path:   unit.Path,
					FileID: unit.FileID,
					Bag:    bag,
					Err:    bagError(bag),
					Timing: timer,
				}
				return nil
			}

			session := cssmodules.New(fs, opts)
			phase = timer.Begin("walk")
			runErr := session.Run(unit.Builder, unit.Program)
			timer.End(phase, unit.Path)

			phase = timer.Begin("cache-put")
			// Промах кеша не фатален: просто идём дальше без него.
			_ = cache.Put(key, bagToPayload(unit.Path, contentHash(fs, unit.FileID), session.Bag()))
			timer.End(phase, unit.Path)

			results[i] = Result{
				Path:   unit.Path,
				FileID: unit.FileID,
				Bag:    session.Bag(),
				Err:    runErr,
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

// resolvedOptions mirrors the session's defaulting so the cache key and
// the replayed bag see the same configuration the walk would.
func resolvedOptions(opts cssmodules.Options) cssmodules.Options {
	return opts.WithDefaults()
}

func contentHash(fs *source.FileSet, id source.FileID) project.Digest {
	return project.Digest(fs.Get(id).Hash)
}

// cacheKey derives the verdict key: file content plus every option that
// changes the outcome of a walk.
func cacheKey(fs *source.FileSet, id source.FileID, opts cssmodules.Options) project.Digest {
	return project.Combine(contentHash(fs, id),
		[]byte(opts.TaggerName),
		[]byte(opts.LoaderName),
	)
}

func bagError(bag *diag.Bag) error {
	if !bag.HasErrors() {
		return nil
	}
	return &cssmodules.Error{Diagnostics: append([]diag.Diagnostic(nil), bag.Items()...)}
}
