// Package project loads the host build pipeline's manifest for the
// transform: which tagger identifier to match and how to cap diagnostics.
package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/symbaloo/elm-css-modules-plugin/internal/cssmodules"
)

// ManifestName is the conventional file name next to the bundler config.
const ManifestName = "elmcssmodules.toml"

type manifest struct {
	Transform struct {
		TaggerName     string `toml:"tagger-name"`
		LoaderName     string `toml:"loader-name"`
		MaxDiagnostics int    `toml:"max-diagnostics"`
	} `toml:"transform"`
}

// LoadManifest parses a transform manifest into cssmodules.Options.
// A missing [transform] table yields the zero Options (the session applies
// defaults). Unknown keys are an error so typos do not silently fall back
// to defaults.
func LoadManifest(path string) (cssmodules.Options, error) {
	var cfg manifest
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cssmodules.Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cssmodules.Options{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("transform") {
		return cssmodules.Options{}, nil
	}
	return cssmodules.Options{
		TaggerName:     cfg.Transform.TaggerName,
		LoaderName:     cfg.Transform.LoaderName,
		MaxDiagnostics: cfg.Transform.MaxDiagnostics,
	}, nil
}
