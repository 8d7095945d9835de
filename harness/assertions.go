package harness

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/redline/contract"
)

// checkExpect compares a revision's diff summary against the scenario's
// expect clause. nil expect skips validation.
func checkExpect(want *ExpectedSummary, got contract.ChangeSummary, version int) error {
	if want == nil {
		return nil
	}

	expected := contract.ChangeSummary{
		Modified:  want.Modified,
		Added:     want.Added,
		Deleted:   want.Deleted,
		Unchanged: want.Unchanged,
	}
	if got != expected {
		return fmt.Errorf("version %d summary mismatch: got %+v, want %+v", version, got, expected)
	}
	return nil
}

// AssertLiveClauses verifies that a reconstructed snapshot contains exactly
// the given identifier -> content mapping.
func AssertLiveClauses(t *testing.T, snap contract.VersionSnapshot, want map[string]string) {
	t.Helper()

	got := make(map[string]string, len(snap.Clauses))
	for _, cl := range snap.Clauses {
		got[cl.ClauseIdentifier] = cl.Content
	}
	assert.Equal(t, want, got, "live clauses at version %d", snap.Version)
}
