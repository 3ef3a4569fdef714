// Package progress provides throttled status reporting for batch phases.
//
// High-volume batches would flood the log if every unit completion were
// reported; the Reporter emits at the start, the end, and at a
// completion interval derived from the batch size.
package progress
