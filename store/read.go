package store

import (
	"context"
	"database/sql"

	"github.com/roach88/redline/contract"
)

// GetContract retrieves a contract by ID.
// Returns a NOT_FOUND domain error for unknown contracts.
func (s *Store) GetContract(ctx context.Context, contractID string) (contract.Contract, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT contract_id, filename, content_hash, current_version, created_at, updated_at
		FROM contracts
		WHERE contract_id = ?
	`, contractID)

	c, err := scanContract(row)
	if isNoRows(err) {
		return contract.Contract{}, contract.NewNotFound(contractID)
	}
	if err != nil {
		return contract.Contract{}, translateError("read contract", err)
	}
	return c, nil
}

// ListContracts returns all contracts in deterministic order
// (creation time, then ID as tiebreaker).
func (s *Store) ListContracts(ctx context.Context) ([]contract.Contract, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT contract_id, filename, content_hash, current_version, created_at, updated_at
		FROM contracts
		ORDER BY created_at ASC, contract_id ASC
	`)
	if err != nil {
		return nil, translateError("list contracts", err)
	}
	defer rows.Close()

	return collectContracts(rows)
}

// FindContractsByHash returns all contracts whose content_hash equals the
// given digest, in deterministic order. Empty result is normal.
func (s *Store) FindContractsByHash(ctx context.Context, contentHash string) ([]contract.Contract, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT contract_id, filename, content_hash, current_version, created_at, updated_at
		FROM contracts
		WHERE content_hash = ?
		ORDER BY created_at ASC, contract_id ASC
	`, contentHash)
	if err != nil {
		return nil, translateError("find contracts by hash", err)
	}
	defer rows.Close()

	return collectContracts(rows)
}

// GetClauseHistory returns every clause row ever stored for a contract,
// including deleted ones, in deterministic order. This is the audit view;
// reconstruction projects a live set out of it.
func (s *Store) GetClauseHistory(ctx context.Context, contractID string) ([]contract.ClauseRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT clause_id, contract_id, clause_version, clause_identifier,
		       content, metadata, created_at, is_deleted, deleted_at
		FROM clauses
		WHERE contract_id = ?
		ORDER BY clause_version ASC, clause_identifier ASC, clause_id ASC
	`, contractID)
	if err != nil {
		return nil, translateError("read clause history", err)
	}
	defer rows.Close()

	var clauses []contract.ClauseRow
	for rows.Next() {
		cl, err := scanClause(rows)
		if err != nil {
			return nil, translateError("scan clause", err)
		}
		clauses = append(clauses, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("iterate clauses", err)
	}

	if clauses == nil {
		clauses = []contract.ClauseRow{}
	}
	return clauses, nil
}

// GetVersionMetadata retrieves the metadata record for one version.
// Returns a NOT_FOUND domain error for unknown versions.
func (s *Store) GetVersionMetadata(ctx context.Context, contractID string, version int) (contract.VersionMetadata, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT contract_id, version, timestamp, changed_clause_ids,
		       modified_count, added_count, deleted_count, unchanged_count
		FROM version_metadata
		WHERE contract_id = ? AND version = ?
	`, contractID, version)

	meta, err := scanVersionMetadata(row)
	if isNoRows(err) {
		return contract.VersionMetadata{}, contract.NewVersionNotFound(contractID, version)
	}
	if err != nil {
		return contract.VersionMetadata{}, translateError("read version metadata", err)
	}
	return meta, nil
}

// ListVersionHistory returns all version-metadata records for a contract in
// ascending version order: the audit/timeline view.
func (s *Store) ListVersionHistory(ctx context.Context, contractID string) ([]contract.VersionMetadata, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT contract_id, version, timestamp, changed_clause_ids,
		       modified_count, added_count, deleted_count, unchanged_count
		FROM version_metadata
		WHERE contract_id = ?
		ORDER BY version ASC
	`, contractID)
	if err != nil {
		return nil, translateError("list version history", err)
	}
	defer rows.Close()

	var history []contract.VersionMetadata
	for rows.Next() {
		meta, err := scanVersionMetadata(rows)
		if err != nil {
			return nil, translateError("scan version metadata", err)
		}
		history = append(history, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("iterate version metadata", err)
	}

	if history == nil {
		history = []contract.VersionMetadata{}
	}
	return history, nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanContract(sc scanner) (contract.Contract, error) {
	var c contract.Contract
	var createdAt, updatedAt string

	if err := sc.Scan(&c.ID, &c.Filename, &c.ContentHash, &c.CurrentVersion,
		&createdAt, &updatedAt); err != nil {
		return contract.Contract{}, err
	}

	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return contract.Contract{}, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return contract.Contract{}, err
	}
	return c, nil
}

func collectContracts(rows *sql.Rows) ([]contract.Contract, error) {
	var contracts []contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, translateError("scan contract", err)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("iterate contracts", err)
	}

	if contracts == nil {
		contracts = []contract.Contract{}
	}
	return contracts, nil
}

func scanClause(sc scanner) (contract.ClauseRow, error) {
	var cl contract.ClauseRow
	var metadata, createdAt string
	var isDeleted int
	var deletedAt sql.NullString

	if err := sc.Scan(&cl.ClauseID, &cl.ContractID, &cl.ClauseVersion,
		&cl.ClauseIdentifier, &cl.Content, &metadata, &createdAt,
		&isDeleted, &deletedAt); err != nil {
		return contract.ClauseRow{}, err
	}

	var err error
	if cl.Metadata, err = unmarshalMetadata(metadata); err != nil {
		return contract.ClauseRow{}, err
	}
	if cl.CreatedAt, err = parseTime(createdAt); err != nil {
		return contract.ClauseRow{}, err
	}
	if cl.DeletedAt, err = parseNullableTime(deletedAt); err != nil {
		return contract.ClauseRow{}, err
	}
	cl.IsDeleted = isDeleted != 0
	return cl, nil
}

func scanVersionMetadata(sc scanner) (contract.VersionMetadata, error) {
	var meta contract.VersionMetadata
	var timestamp, changedIDs string

	if err := sc.Scan(&meta.ContractID, &meta.Version, &timestamp, &changedIDs,
		&meta.Summary.Modified, &meta.Summary.Added,
		&meta.Summary.Deleted, &meta.Summary.Unchanged); err != nil {
		return contract.VersionMetadata{}, err
	}

	var err error
	if meta.Timestamp, err = parseTime(timestamp); err != nil {
		return contract.VersionMetadata{}, err
	}
	if meta.ChangedClauseIDs, err = unmarshalClauseIDs(changedIDs); err != nil {
		return contract.VersionMetadata{}, err
	}
	return meta, nil
}
