// Package diag defines the diagnostic model shared by the transform and the
// driver layer.
//
// Diagnostic is the central record: severity, a stable code, a human message,
// and a primary source.Span pointing at the offending node, plus optional
// notes. Producers emit through a Reporter; the transform session owns a Bag
// per walk and drains it once, at end of walk, into a single aggregated
// failure.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; aggregation into an error value lives in
// internal/cssmodules.
package diag
