// Package cssmodules rewrites the CSS-module declaration shape the Elm
// compiler leaves in its JavaScript output into native module-loading
// lookups.
//
// The compiled output contains calls of the form
//
//	A2(<tagger>, './Main.css', { someClass: 'someClass' })
//
// where <tagger> is the mangled name of the CssModules.css tagger function.
// For every matched call each property value is replaced with a computed
// lookup on the loaded module:
//
//	A2(<tagger>, './Main.css', { someClass: require('./Main.css')['someClass'] })
//
// Empty class names are collected as diagnostics across the whole walk and
// reported once, at end of walk, as a single aggregated error. The tree is
// always left fully rewritten, including the offending entries, so the
// failure is reported out-of-band of the mutation.
package cssmodules
