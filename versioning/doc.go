// Package versioning turns a contract diff into concrete, version-stamped
// clause rows and reconstructs past versions from stored state.
//
// The Coordinator enforces strict sequential versioning: the only version
// that may be assigned is current_version + 1, with no skipping. The store
// re-checks the same condition inside its commit transaction, so a stale
// coordinator check cannot corrupt the sequence under concurrency; the
// stale writer receives a retryable SEQUENTIAL_VERSION_VIOLATION instead.
//
// Assignment per diff category:
//
//   - unchanged: the persisted row is carried forward untouched; its
//     clause_id, clause_version, and created_at are preserved
//   - modified: fresh clause_id at the new version, prior content recorded
//     in row metadata for audit
//   - added: fresh clause_id at the new version
//   - deleted: the existing row's identity is reused; is_deleted/deleted_at
//     are set and clause_version is NOT bumped
//
// Reconstruction ("time travel") is a pure projection of stored rows via
// contract.SelectLive; no external calls are involved.
package versioning
