// Package workspace manages the working directory a batch runs in.
//
// It is the directory provider for the pipeline: callers get a
// guaranteed-to-exist directory, optionally wiped of a previous run's
// output, before any phase starts writing into it.
package workspace
