// Package store provides SQLite-backed durable storage for the
// differential contract-versioning engine.
//
// Tables:
//   - contracts: one row per document family (PK contract_id)
//   - clauses: clause snapshots (PK clause_id, FK contract_id)
//   - version_metadata: per-version change records (PK contract_id,version)
//   - schema_info: schema-version marker for migrations
//
// # Critical invariants
//
// contracts.current_version equals the highest committed version;
// CommitVersion re-checks version == current_version + 1 inside its own
// transaction, so a concurrent writer holding a stale read fails with
// SEQUENTIAL_VERSION_VIOLATION and must retry. This in-transaction check is
// the engine's only serialization point per contract.
//
// Clause rows are append-only except deletion marking, which updates
// is_deleted/deleted_at in place without bumping clause_version. Unchanged
// clauses are never re-inserted across versions.
//
// All writes are transactional: any failure rolls back the whole operation,
// leaving current_version and the clause set untouched.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// Constraint violations are translated into the domain error kinds in the
// contract package rather than leaking sqlite3 errors.
package store
