// Package transform produces resized derivative images.
//
// Transform handles a single (source, CropSpec) pair with the
// resize-to-fill strategy: scale so the shorter dimension matches the
// target, center-crop the rest. Engine schedules the full cross product
// of sources and specs on a bounded worker pool with per-unit failure
// isolation: one undecodable source drops its own units and nothing
// else.
package transform
