package identity

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/redline/contract"
	"github.com/roach88/redline/store"
)

func newTestResolver(t *testing.T) (*Resolver, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewResolver(st), st
}

func seedContract(t *testing.T, st *store.Store, filename, contentHash string) string {
	t.Helper()
	now := time.Now()
	c := contract.Contract{
		ID:             contract.NewContractID(),
		Filename:       filename,
		ContentHash:    contentHash,
		CurrentVersion: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, st.IngestContract(context.Background(), c, nil))
	return c.ID
}

func TestFindPotentialMatches_EmptyStoreIsNormal(t *testing.T) {
	r, _ := newTestResolver(t)

	matches, err := r.FindPotentialMatches(context.Background(), "deadbeef", "MSA.pdf")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindPotentialMatches_HashMatchShortCircuits(t *testing.T) {
	r, st := newTestResolver(t)

	hash := HashBytes([]byte("the exact same bytes"))
	id := seedContract(t, st, "MSA.pdf", hash)
	// A filename near-duplicate that would match if filenames were consulted.
	seedContract(t, st, "MSA-final.pdf", "otherhash")

	matches, err := r.FindPotentialMatches(context.Background(), hash, "MSA.pdf")
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, id, matches[0].ContractID)
	assert.Equal(t, contract.MatchHash, matches[0].MatchType)
	assert.Equal(t, 1.0, matches[0].SimilarityScore)
}

func TestFindPotentialMatches_AllHashDuplicatesReturned(t *testing.T) {
	r, st := newTestResolver(t)

	hash := HashBytes([]byte("duplicated upload"))
	seedContract(t, st, "a.pdf", hash)
	seedContract(t, st, "b.pdf", hash)

	matches, err := r.FindPotentialMatches(context.Background(), hash, "c.pdf")
	require.NoError(t, err)

	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, contract.MatchHash, m.MatchType)
		assert.Equal(t, 1.0, m.SimilarityScore)
	}
}

func TestFindPotentialMatches_FilenameFallback(t *testing.T) {
	r, st := newTestResolver(t)

	near := seedContract(t, st, "services-agreement-2024.pdf", "hash-a")
	seedContract(t, st, "totally-different.docx", "hash-b")

	matches, err := r.FindPotentialMatches(context.Background(),
		"unseen-hash", "services-agreement-2025.pdf")
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, near, matches[0].ContractID)
	assert.Equal(t, contract.MatchFilename, matches[0].MatchType)
	assert.GreaterOrEqual(t, matches[0].SimilarityScore, FilenameMatchThreshold)
	assert.Less(t, matches[0].SimilarityScore, 1.0)
}

func TestFindPotentialMatches_FilenameMatchesRankedBySimilarity(t *testing.T) {
	r, st := newTestResolver(t)

	exact := seedContract(t, st, "msa.pdf", "hash-a")
	runnerUp := seedContract(t, st, "msa-2.pdf", "hash-b")

	matches, err := r.FindPotentialMatches(context.Background(), "unseen-hash", "MSA.docx")
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, exact, matches[0].ContractID)
	assert.Equal(t, 1.0, matches[0].SimilarityScore)
	assert.Equal(t, runnerUp, matches[1].ContractID)
	assert.Greater(t, matches[0].SimilarityScore, matches[1].SimilarityScore)
}
