// Package naming defines how derived artifacts are named and recognized.
//
// It is the idempotency core of the pipeline: DerivePath maps a
// (source, width, height) tuple to a deterministic, injective output
// path, and the derivative Policy recognizes such paths so that Resolve
// never feeds the pipeline's own output back in as new sources.
package naming
