package versioning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/redline/contract"
	"github.com/roach88/redline/store"
)

// Coordinator assigns versions to clause rows and reconstructs past
// versions. Stateless apart from its store handle; safe for concurrent use
// across different contracts.
type Coordinator struct {
	store *store.Store
	now   func() time.Time
}

// NewCoordinator creates a coordinator using the wall clock.
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{store: st, now: time.Now}
}

// NewCoordinatorWithClock creates a coordinator with an injected clock.
// Tests and the scenario harness use a deterministic clock so timestamps
// (and therefore golden files) are reproducible.
func NewCoordinatorWithClock(st *store.Store, now func() time.Time) *Coordinator {
	return &Coordinator{store: st, now: now}
}

// Bundle is the output of AssignClauseVersions: everything the store needs
// to commit one version atomically.
type Bundle struct {
	Version  int
	Clauses  []contract.ClauseRow
	Metadata contract.VersionMetadata
}

// NextVersion returns the version number the next commit must use:
// current_version + 1. Fails NOT_FOUND for unknown contracts.
func (c *Coordinator) NextVersion(ctx context.Context, contractID string) (int, error) {
	ct, err := c.store.GetContract(ctx, contractID)
	if err != nil {
		return 0, err
	}
	return ct.CurrentVersion + 1, nil
}

// AssignClauseVersions converts a diff into version-stamped clause rows
// plus version metadata.
//
// Validates newVersion == current_version + 1 first; any mismatch fails
// immediately with no state read beyond the contract row. The returned
// bundle contains every clause of the new version frontier, including
// carried-forward unchanged rows; the store knows not to re-insert those.
func (c *Coordinator) AssignClauseVersions(ctx context.Context, d contract.ContractDiff, contractID string, newVersion int) (Bundle, error) {
	ct, err := c.store.GetContract(ctx, contractID)
	if err != nil {
		return Bundle{}, err
	}
	if newVersion != ct.CurrentVersion+1 {
		return Bundle{}, contract.NewVersionConflict(contractID, newVersion, ct.CurrentVersion)
	}

	// One read of the full history; the live frontier is derived in memory.
	history, err := c.store.GetClauseHistory(ctx, contractID)
	if err != nil {
		return Bundle{}, err
	}
	frontier := liveFrontier(history)

	now := c.now()
	clauses := make([]contract.ClauseRow, 0, d.Summary().Total())
	var changed []string

	for _, cmp := range d.Unchanged {
		row, ok := frontier[cmp.ClauseIdentifier]
		if !ok {
			// Non-fatal: the diff references a row we no longer hold.
			slog.Warn("unchanged clause has no persisted row, dropping",
				"contract_id", contractID,
				"clause_identifier", cmp.ClauseIdentifier)
			continue
		}
		clauses = append(clauses, row)
	}

	for _, cmp := range d.Modified {
		row := contract.ClauseRow{
			ClauseID:         contract.NewClauseID(),
			ContractID:       contractID,
			ClauseVersion:    newVersion,
			ClauseIdentifier: cmp.ClauseIdentifier,
			Content:          cmp.NewContent,
			Metadata: map[string]string{
				"previous_content": cmp.OldContent,
				"similarity":       fmt.Sprintf("%.4f", cmp.SimilarityScore),
			},
			CreatedAt: now,
		}
		clauses = append(clauses, row)
		changed = append(changed, row.ClauseID)
	}

	for _, cmp := range d.Added {
		row := contract.ClauseRow{
			ClauseID:         contract.NewClauseID(),
			ContractID:       contractID,
			ClauseVersion:    newVersion,
			ClauseIdentifier: cmp.ClauseIdentifier,
			Content:          cmp.NewContent,
			CreatedAt:        now,
		}
		clauses = append(clauses, row)
		changed = append(changed, row.ClauseID)
	}

	for _, cmp := range d.Deleted {
		row, ok := frontier[cmp.ClauseIdentifier]
		if !ok {
			slog.Warn("deleted clause has no persisted row, dropping",
				"contract_id", contractID,
				"clause_identifier", cmp.ClauseIdentifier)
			continue
		}
		// Reuse the row's identity; the version is not bumped.
		deletedAt := now
		row.IsDeleted = true
		row.DeletedAt = &deletedAt
		clauses = append(clauses, row)
		changed = append(changed, row.ClauseID)
	}

	meta := contract.VersionMetadata{
		ContractID:       contractID,
		Version:          newVersion,
		Timestamp:        now,
		ChangedClauseIDs: changed,
		Summary:          d.Summary(),
	}

	return Bundle{Version: newVersion, Clauses: clauses, Metadata: meta}, nil
}

// liveFrontier maps each clause identifier to its latest non-deleted row.
func liveFrontier(rows []contract.ClauseRow) map[string]contract.ClauseRow {
	frontier := make(map[string]contract.ClauseRow)
	for _, row := range rows {
		if row.IsDeleted {
			continue
		}
		cur, ok := frontier[row.ClauseIdentifier]
		if !ok || row.ClauseVersion > cur.ClauseVersion {
			frontier[row.ClauseIdentifier] = row
		}
	}
	return frontier
}
