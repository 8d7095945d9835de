package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/redline/contract"
)

// createTestStore creates a fresh on-disk store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// testTime is a fixed instant so stored timestamps are predictable.
var testTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// createTestContract creates a contract row with minimal required fields.
func createTestContract(id, filename, contentHash string) contract.Contract {
	return contract.Contract{
		ID:             id,
		Filename:       filename,
		ContentHash:    contentHash,
		CurrentVersion: 1,
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
	}
}

// createTestClause creates a version-1 clause row for a contract.
func createTestClause(clauseID, contractID, identifier, content string) contract.ClauseRow {
	return contract.ClauseRow{
		ClauseID:         clauseID,
		ContractID:       contractID,
		ClauseVersion:    1,
		ClauseIdentifier: identifier,
		Content:          content,
		CreatedAt:        testTime,
	}
}

// ingestTestContract ingests a contract with the given clauses and fails the
// test on error.
func ingestTestContract(t *testing.T, s *Store, c contract.Contract, clauses []contract.ClauseRow) {
	t.Helper()
	if err := s.IngestContract(context.Background(), c, clauses); err != nil {
		t.Fatalf("IngestContract() failed: %v", err)
	}
}
