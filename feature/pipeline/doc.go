// Package pipeline sequences the phases of one thumbnail batch.
//
// A run is: prepare working directory → optional remote fetch → resolve
// source set → concurrent transform → optional publish. Phases are
// strictly sequential with respect to each other; only the transform
// phase (and the fetch downloads) have internal concurrency. The run
// configuration is an immutable value built at the command boundary.
package pipeline
