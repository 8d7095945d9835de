package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/redline/contract"
)

// IngestContract stores a brand-new contract: the contract row, its initial
// clause rows, and the version-1 metadata record, in a single transaction.
// Any failure rolls back the entire ingest.
//
// Validation happens before the transaction opens: the contract must carry
// an ID and CurrentVersion == 1, and every clause must belong to it at
// clause_version 1.
func (s *Store) IngestContract(ctx context.Context, c contract.Contract, clauses []contract.ClauseRow) error {
	if err := validateIngest(c, clauses); err != nil {
		return err
	}

	changed := make([]string, 0, len(clauses))
	for _, cl := range clauses {
		changed = append(changed, cl.ClauseID)
	}
	meta := contract.VersionMetadata{
		ContractID:       c.ID,
		Version:          1,
		Timestamp:        c.CreatedAt,
		ChangedClauseIDs: changed,
		Summary:          contract.ChangeSummary{Added: len(clauses)},
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO contracts
			(contract_id, filename, content_hash, current_version, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			c.ID, c.Filename, c.ContentHash, c.CurrentVersion,
			formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
		); err != nil {
			return translateError("insert contract", err)
		}

		for _, cl := range clauses {
			if err := insertClause(ctx, tx, cl); err != nil {
				return err
			}
		}

		return insertVersionMetadata(ctx, tx, meta)
	})
	if err != nil {
		return fmt.Errorf("ingest contract %s: %w", c.ID, err)
	}
	return nil
}

// CommitVersion commits the next version of an existing contract in a
// single transaction:
//
//   - re-validates version == current_version + 1 against the STORED value
//     inside the transaction (defense in depth against concurrent commits;
//     the coordinator's earlier check may be stale)
//   - marks deleted clauses in place (is_deleted/deleted_at, no version bump)
//   - inserts modified/added rows (append-only)
//   - skips carried-forward unchanged rows, which are already persisted
//   - bumps contracts.current_version and updated_at
//   - inserts the version-metadata row
//
// On any failure the transaction rolls back: current_version and the clause
// set are untouched. A SEQUENTIAL_VERSION_VIOLATION is retryable; callers
// re-read current_version, recompute the diff, and resubmit.
func (s *Store) CommitVersion(ctx context.Context, contractID string, version int, clauses []contract.ClauseRow, meta contract.VersionMetadata) error {
	if err := validateCommit(contractID, version, clauses, meta); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var current int
		err := tx.QueryRowContext(ctx,
			`SELECT current_version FROM contracts WHERE contract_id = ?`,
			contractID,
		).Scan(&current)
		if isNoRows(err) {
			return contract.NewNotFound(contractID)
		}
		if err != nil {
			return translateError("read current version", err)
		}

		if version != current+1 {
			return contract.NewVersionConflict(contractID, version, current)
		}

		for _, cl := range clauses {
			switch {
			case cl.IsDeleted:
				if err := markClauseDeleted(ctx, tx, cl); err != nil {
					return err
				}
			case cl.ClauseVersion == version:
				if err := insertClause(ctx, tx, cl); err != nil {
					return err
				}
			default:
				// Carried-forward unchanged row; the prior row stays
				// authoritative and is never re-inserted.
			}
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE contracts SET current_version = ?, updated_at = ?
			WHERE contract_id = ?
		`, version, formatTime(meta.Timestamp), contractID); err != nil {
			return translateError("update contract version", err)
		}

		return insertVersionMetadata(ctx, tx, meta)
	})
	if err != nil {
		return fmt.Errorf("commit version %d of contract %s: %w", version, contractID, err)
	}
	return nil
}

func insertClause(ctx context.Context, tx *sql.Tx, cl contract.ClauseRow) error {
	metadata, err := marshalMetadata(cl.Metadata)
	if err != nil {
		return contract.NewStorage("marshal clause metadata", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO clauses
		(clause_id, contract_id, clause_version, clause_identifier,
		 content, metadata, created_at, is_deleted, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		cl.ClauseID, cl.ContractID, cl.ClauseVersion, cl.ClauseIdentifier,
		cl.Content, metadata, formatTime(cl.CreatedAt),
		boolToInt(cl.IsDeleted), formatNullableTime(cl.DeletedAt),
	); err != nil {
		return translateError("insert clause "+cl.ClauseIdentifier, err)
	}
	return nil
}

// markClauseDeleted flips is_deleted/deleted_at in place on the existing
// row. The clause_version column is deliberately not touched.
func markClauseDeleted(ctx context.Context, tx *sql.Tx, cl contract.ClauseRow) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE clauses SET is_deleted = 1, deleted_at = ?
		WHERE clause_id = ?
	`, formatNullableTime(cl.DeletedAt), cl.ClauseID)
	if err != nil {
		return translateError("mark clause deleted", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return translateError("mark clause deleted", err)
	}
	if affected == 0 {
		return &contract.Error{
			Code:             contract.ErrCodeNotFound,
			Message:          "clause row to delete not found",
			ContractID:       cl.ContractID,
			ClauseIdentifier: cl.ClauseIdentifier,
		}
	}
	return nil
}

func insertVersionMetadata(ctx context.Context, tx *sql.Tx, meta contract.VersionMetadata) error {
	changedIDs, err := marshalClauseIDs(meta.ChangedClauseIDs)
	if err != nil {
		return contract.NewStorage("marshal version metadata", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO version_metadata
		(contract_id, version, timestamp, changed_clause_ids,
		 modified_count, added_count, deleted_count, unchanged_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		meta.ContractID, meta.Version, formatTime(meta.Timestamp), changedIDs,
		meta.Summary.Modified, meta.Summary.Added,
		meta.Summary.Deleted, meta.Summary.Unchanged,
	); err != nil {
		return translateError("insert version metadata", err)
	}
	return nil
}

// validateIngest fails fast, before any transaction opens.
func validateIngest(c contract.Contract, clauses []contract.ClauseRow) error {
	if c.ID == "" {
		return contract.NewValidation("contract id is required")
	}
	if c.CurrentVersion != 1 {
		return contract.NewValidation(
			fmt.Sprintf("new contract must have current_version 1, got %d", c.CurrentVersion))
	}
	for _, cl := range clauses {
		if cl.ClauseID == "" {
			return contract.NewValidation("clause id is required")
		}
		if cl.ClauseIdentifier == "" {
			return contract.NewValidation("clause identifier is required")
		}
		if cl.ContractID != c.ID {
			return contract.NewValidation(
				fmt.Sprintf("clause %s belongs to contract %s, not %s",
					cl.ClauseIdentifier, cl.ContractID, c.ID))
		}
		if cl.ClauseVersion != 1 {
			return contract.NewValidation(
				fmt.Sprintf("initial clause %s must have clause_version 1, got %d",
					cl.ClauseIdentifier, cl.ClauseVersion))
		}
	}
	return nil
}

// validateCommit fails fast, before any transaction opens.
func validateCommit(contractID string, version int, clauses []contract.ClauseRow, meta contract.VersionMetadata) error {
	if contractID == "" {
		return contract.NewValidation("contract id is required")
	}
	if version < 2 {
		return contract.NewValidation(
			fmt.Sprintf("committed version must be >= 2, got %d (use IngestContract for version 1)", version))
	}
	if meta.ContractID != contractID {
		return contract.NewValidation(
			fmt.Sprintf("metadata contract id %s does not match %s", meta.ContractID, contractID))
	}
	if meta.Version != version {
		return contract.NewValidation(
			fmt.Sprintf("metadata version %d does not match %d", meta.Version, version))
	}
	for _, cl := range clauses {
		if cl.ClauseID == "" {
			return contract.NewValidation("clause id is required")
		}
		if cl.ContractID != contractID {
			return contract.NewValidation(
				fmt.Sprintf("clause %s belongs to contract %s, not %s",
					cl.ClauseIdentifier, cl.ContractID, contractID))
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
