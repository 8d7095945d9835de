package harness

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/roach88/redline/contract"
	"github.com/roach88/redline/diff"
	"github.com/roach88/redline/differential"
	"github.com/roach88/redline/identity"
	"github.com/roach88/redline/internal/testutil"
	"github.com/roach88/redline/store"
	"github.com/roach88/redline/versioning"
)

// scenarioEpoch anchors the stepping clock so every run of a scenario
// produces identical timestamps.
var scenarioEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Result is the outcome of running one scenario.
type Result struct {
	ContractID string

	// Snapshots holds the reconstruction of every version, 1..N, taken
	// after all versions were committed. Snapshots[i] is version i+1.
	Snapshots []contract.VersionSnapshot
}

// Run executes a scenario against a fresh in-memory database.
//
// The first version is ingested; each later version is diffed against the
// stored live clause set (exactly what a caller holding the previous
// version would do), assigned version numbers by the coordinator, and
// committed. Expect clauses are checked against the diff summary. Finally
// every version is reconstructed.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	clock := testutil.NewSteppingClock(scenarioEpoch, time.Minute)
	coord := versioning.NewCoordinatorWithClock(st, clock.Now)
	diffStore := differential.New(st, coord)

	ctx := context.Background()

	contractID, err := ingestFirstVersion(ctx, diffStore, scenario, clock.Now())
	if err != nil {
		return nil, err
	}

	for i, step := range scenario.Versions[1:] {
		if err := commitRevision(ctx, st, coord, diffStore, contractID, step, i+2); err != nil {
			return nil, err
		}
	}

	result := &Result{ContractID: contractID}
	for v := 1; v <= len(scenario.Versions); v++ {
		snap, err := diffStore.ReconstructVersion(ctx, contractID, v)
		if err != nil {
			return nil, fmt.Errorf("reconstruct version %d: %w", v, err)
		}
		result.Snapshots = append(result.Snapshots, snap)
	}
	return result, nil
}

func ingestFirstVersion(ctx context.Context, diffStore *differential.Store, scenario *Scenario, now time.Time) (string, error) {
	contractID := contract.NewContractID()

	c := contract.Contract{
		ID:             contractID,
		Filename:       scenario.Filename,
		ContentHash:    identity.HashBytes(uploadBytes(scenario.Versions[0].Clauses)),
		CurrentVersion: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	identifiers := sortedIdentifiers(scenario.Versions[0].Clauses)
	clauses := make([]contract.ClauseRow, 0, len(identifiers))
	for _, id := range identifiers {
		clauses = append(clauses, contract.ClauseRow{
			ClauseID:         contract.NewClauseID(),
			ContractID:       contractID,
			ClauseVersion:    1,
			ClauseIdentifier: id,
			Content:          scenario.Versions[0].Clauses[id],
			CreatedAt:        now,
		})
	}

	if err := diffStore.IngestNewContract(ctx, c, clauses); err != nil {
		return "", fmt.Errorf("ingest first version: %w", err)
	}
	return contractID, nil
}

func commitRevision(ctx context.Context, st *store.Store, coord *versioning.Coordinator, diffStore *differential.Store, contractID string, step VersionStep, versionNum int) error {
	// The "old" side of the diff is the stored live set, as a caller
	// displaying the previous version would hold it.
	prev, err := liveClauseMap(ctx, coord, st, contractID)
	if err != nil {
		return err
	}

	d := diff.CompareContracts(prev, step.Clauses)
	if err := checkExpect(step.Expect, d.Summary(), versionNum); err != nil {
		return err
	}

	next, err := coord.NextVersion(ctx, contractID)
	if err != nil {
		return err
	}

	bundle, err := coord.AssignClauseVersions(ctx, d, contractID, next)
	if err != nil {
		return fmt.Errorf("assign versions for version %d: %w", versionNum, err)
	}

	if err := diffStore.CommitVersion(ctx, contractID, bundle); err != nil {
		return fmt.Errorf("commit version %d: %w", versionNum, err)
	}
	return nil
}

// liveClauseMap projects the current live clause set to identifier -> text.
func liveClauseMap(ctx context.Context, coord *versioning.Coordinator, st *store.Store, contractID string) (map[string]string, error) {
	c, err := st.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	snap, err := coord.ReconstructVersion(ctx, contractID, c.CurrentVersion)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(snap.Clauses))
	for _, cl := range snap.Clauses {
		m[cl.ClauseIdentifier] = cl.Content
	}
	return m, nil
}

// uploadBytes builds a deterministic byte representation of a clause map,
// standing in for the raw document of a scenario upload.
func uploadBytes(clauses map[string]string) []byte {
	var b strings.Builder
	for _, id := range sortedIdentifiers(clauses) {
		b.WriteString(id)
		b.WriteString("\n")
		b.WriteString(clauses[id])
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func sortedIdentifiers(clauses map[string]string) []string {
	identifiers := make([]string, 0, len(clauses))
	for id := range clauses {
		identifiers = append(identifiers, id)
	}
	sort.Strings(identifiers)
	return identifiers
}
