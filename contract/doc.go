// Package contract defines the domain types shared by the versioning engine.
//
// # Persisted types
//
//   - Contract: one uploaded document family with a monotonic current_version
//   - ClauseRow: one concrete text snapshot of a logical clause slot
//   - VersionMetadata: per-version change record keyed by (contract_id, version)
//
// # Transient types
//
//   - ClauseComparison / ContractDiff: output of the diff engine
//   - ContractMatch: output of the identity resolver
//   - VersionSnapshot: a reconstructed version payload for read surfaces
//
// # Critical invariants
//
// Contract.CurrentVersion always equals the highest version ever committed
// for the contract. Versions are contiguous integers starting at 1.
//
// Clause rows are append-only, with one exception: deletion flips
// IsDeleted/DeletedAt in place on the existing row and does NOT bump
// ClauseVersion. Unchanged clauses are never re-inserted across versions;
// the prior row stays authoritative.
//
// Reconstruction is a pure function of stored rows: for each clause
// identifier, the live row at version V is the one with the maximum
// ClauseVersion <= V that is not deleted as of V's own commit timestamp.
// SelectLive encodes this rule; both the coordinator and the differential
// read path use it.
package contract
