// Package differential is the orchestration facade of the versioning
// engine: ingest a new contract, commit the next version of an existing
// one, and read either the full row history or the reconstructed live
// clause set at a specific version.
//
// Only deltas are persisted per version (differential storage): unchanged
// clauses are referenced, never duplicated, and deletions mark the existing
// row in place. Full history is preserved and any past version can be
// reconstructed exactly.
//
// Writes are all-or-nothing. Concurrency between writers on the same
// contract is optimistic: the store's in-transaction sequential check
// rejects a stale writer with a retryable SEQUENTIAL_VERSION_VIOLATION.
// No retry loop is built in; callers re-read current_version, recompute
// their diff, and resubmit.
package differential
