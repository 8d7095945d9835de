package differential

import (
	"context"
	"time"

	"github.com/roach88/redline/contract"
	"github.com/roach88/redline/store"
	"github.com/roach88/redline/versioning"
)

// Store orchestrates the version store and coordinator for the engine's
// write and read paths.
type Store struct {
	store   *store.Store
	coord   *versioning.Coordinator
	metrics *metrics
}

// New creates a differential store over the given version store and
// coordinator.
func New(st *store.Store, coord *versioning.Coordinator) *Store {
	return &Store{store: st, coord: coord, metrics: engineMetrics()}
}

// IngestNewContract stores a first-time upload: contract row, initial
// clause rows, and version-1 metadata in one transaction. The contract must
// carry CurrentVersion == 1 and every clause must reference it.
func (d *Store) IngestNewContract(ctx context.Context, c contract.Contract, clauses []contract.ClauseRow) error {
	if err := d.store.IngestContract(ctx, c, clauses); err != nil {
		return err
	}
	d.metrics.ingests.Inc()
	return nil
}

// CommitVersion commits a coordinator bundle as the contract's next
// version. The sequential check runs again inside the store's transaction;
// a SEQUENTIAL_VERSION_VIOLATION from a concurrent writer is retryable by
// recomputing the diff against the fresh current_version.
func (d *Store) CommitVersion(ctx context.Context, contractID string, bundle versioning.Bundle) error {
	start := time.Now()
	err := d.store.CommitVersion(ctx, contractID, bundle.Version, bundle.Clauses, bundle.Metadata)
	if err != nil {
		if contract.IsVersionConflict(err) {
			d.metrics.conflicts.Inc()
		}
		return err
	}
	d.metrics.commits.Inc()
	d.metrics.commitDuration.Observe(time.Since(start).Seconds())
	return nil
}

// GetClauses reads clause rows for a contract. A nil version returns the
// complete row history (the audit view, deleted rows included); a specific
// version returns the reconstructed live-clause projection at that point.
func (d *Store) GetClauses(ctx context.Context, contractID string, version *int) ([]contract.ClauseRow, error) {
	if version == nil {
		return d.store.GetClauseHistory(ctx, contractID)
	}

	snap, err := d.ReconstructVersion(ctx, contractID, *version)
	if err != nil {
		return nil, err
	}
	return snap.Clauses, nil
}

// ReconstructVersion returns the full snapshot payload (clauses plus
// version metadata) live at the given version.
func (d *Store) ReconstructVersion(ctx context.Context, contractID string, version int) (contract.VersionSnapshot, error) {
	snap, err := d.coord.ReconstructVersion(ctx, contractID, version)
	if err != nil {
		return contract.VersionSnapshot{}, err
	}
	d.metrics.reconstructions.Inc()
	return snap, nil
}

// History returns the contract's full version-metadata timeline in
// ascending version order.
func (d *Store) History(ctx context.Context, contractID string) ([]contract.VersionMetadata, error) {
	return d.store.ListVersionHistory(ctx, contractID)
}
