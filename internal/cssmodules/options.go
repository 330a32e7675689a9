package cssmodules

// targetCalleeName is the callee the Elm compiler emits for two-argument
// applications. CssModules.css takes a path and a class map, so every
// declaration surfaces as an A2 call.
const targetCalleeName = "A2"

const (
	// DefaultTaggerName is the Elm 0.18 fully-qualified mangled name of the
	// CssModules.css tagger. Opaque contract string: the mangling scheme
	// belongs to the compiler, not to this package.
	DefaultTaggerName = "_norpan$elm_css_modules_loader$CssModules$css"

	// DefaultLoaderName is the module-loader function the rewritten
	// entries call.
	DefaultLoaderName = "require"

	// DefaultMaxDiagnostics bounds the diagnostic accumulator of one walk.
	DefaultMaxDiagnostics = 256
)

// Options configures a transform session. The zero value is usable:
// every field falls back to its default. Options are read once at
// construction time and never change for the lifetime of a session.
type Options struct {
	// TaggerName is the exact identifier the first argument of a targeted
	// call must reference.
	TaggerName string
	// LoaderName is the identifier the replacement entries call.
	LoaderName string
	// MaxDiagnostics caps the accumulator; further diagnostics are dropped.
	MaxDiagnostics int
}

// WithDefaults returns a copy with every unset field replaced by its
// default.
func (o Options) WithDefaults() Options {
	if o.TaggerName == "" {
		o.TaggerName = DefaultTaggerName
	}
	if o.LoaderName == "" {
		o.LoaderName = DefaultLoaderName
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = DefaultMaxDiagnostics
	}
	return o
}
