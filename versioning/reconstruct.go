package versioning

import (
	"context"
	"fmt"

	"github.com/roach88/redline/contract"
)

// ReconstructVersion returns the exact clause set live at the given past
// version: for each identifier, the row with the maximum clause_version <=
// version, excluding rows deleted as of that version's commit timestamp.
//
// Deletion visibility is judged against the TARGET version's own metadata
// timestamp, not the current wall clock, so a deletion committed by a later
// version never leaks into the reconstruction of an earlier one.
//
// Pure function of stored state; no external calls.
func (c *Coordinator) ReconstructVersion(ctx context.Context, contractID string, version int) (contract.VersionSnapshot, error) {
	ct, err := c.store.GetContract(ctx, contractID)
	if err != nil {
		return contract.VersionSnapshot{}, err
	}

	if version < 1 {
		return contract.VersionSnapshot{}, contract.NewValidation(
			fmt.Sprintf("version must be >= 1, got %d", version))
	}
	if version > ct.CurrentVersion {
		return contract.VersionSnapshot{}, contract.NewVersionNotFound(contractID, version)
	}

	meta, err := c.store.GetVersionMetadata(ctx, contractID, version)
	if err != nil {
		return contract.VersionSnapshot{}, err
	}

	history, err := c.store.GetClauseHistory(ctx, contractID)
	if err != nil {
		return contract.VersionSnapshot{}, err
	}

	return contract.VersionSnapshot{
		ContractID: contractID,
		Version:    version,
		Clauses:    contract.SelectLive(history, version, meta.Timestamp),
		Metadata:   meta,
	}, nil
}
