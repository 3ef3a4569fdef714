// Package remote reconciles the local working set with an object store.
//
// Fetch determines, from a remote listing, which keys are genuine
// sources (as opposed to derivatives a previous run published) and
// materializes them locally. Publish uploads a run's output manifest
// back under the configured prefix. Both operate through the
// core/storage client and share the naming package's derivative policy
// with the local resolver.
package remote
