package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/redline/contract"
)

// Snapshot is the golden-file representation of a scenario run. It contains
// only stable fields: generated row IDs and timestamps are excluded so the
// files never churn.
type Snapshot struct {
	ScenarioName string         `json:"scenario_name"`
	Versions     []VersionState `json:"versions"`
}

// VersionState is the reconstructed state of one version.
type VersionState struct {
	Version int                    `json:"version"`
	Summary contract.ChangeSummary `json:"summary"`
	Clauses []ClauseState          `json:"clauses"`
}

// ClauseState is one live clause in a reconstruction.
type ClauseState struct {
	Identifier    string `json:"identifier"`
	ClauseVersion int    `json:"clause_version"`
	Content       string `json:"content"`
}

// RunWithGolden executes a scenario and compares the reconstruction of
// every version against the golden file testdata/golden/{name}.golden.
//
// Returns error if scenario execution fails; a snapshot mismatch fails the
// test via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	snapshot := Snapshot{ScenarioName: scenario.Name}
	for _, snap := range result.Snapshots {
		state := VersionState{
			Version: snap.Version,
			Summary: snap.Metadata.Summary,
		}
		// SelectLive already sorts by identifier.
		for _, cl := range snap.Clauses {
			state.Clauses = append(state.Clauses, ClauseState{
				Identifier:    cl.ClauseIdentifier,
				ClauseVersion: cl.ClauseVersion,
				Content:       cl.Content,
			})
		}
		snapshot.Versions = append(snapshot.Versions, state)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
