package identity

import (
	"context"
	"sort"

	"github.com/roach88/redline/contract"
	"github.com/roach88/redline/store"
)

// FilenameMatchThreshold is the minimum filename similarity for a contract
// to be offered as an update candidate.
const FilenameMatchThreshold = 0.8

// Resolver finds existing contracts an upload may be a revision of.
type Resolver struct {
	store *store.Store
}

// NewResolver creates a resolver backed by the given store.
func NewResolver(st *store.Store) *Resolver {
	return &Resolver{store: st}
}

// FindPotentialMatches returns ranked update candidates for an upload.
//
// Exact content-hash matches short-circuit: when any exist they are all
// returned as hash matches with similarity 1.0 and filenames are never
// compared. Otherwise every known contract is scored by filename
// similarity and those at or above FilenameMatchThreshold are returned.
//
// Ordering: hash matches before filename matches, descending similarity
// within each group. An empty result is normal and carries no error.
func (r *Resolver) FindPotentialMatches(ctx context.Context, contentHash, filename string) ([]contract.ContractMatch, error) {
	byHash, err := r.store.FindContractsByHash(ctx, contentHash)
	if err != nil {
		return nil, err
	}

	if len(byHash) > 0 {
		matches := make([]contract.ContractMatch, 0, len(byHash))
		for _, c := range byHash {
			matches = append(matches, contract.ContractMatch{
				ContractID:      c.ID,
				Filename:        c.Filename,
				MatchType:       contract.MatchHash,
				SimilarityScore: 1.0,
			})
		}
		return matches, nil
	}

	all, err := r.store.ListContracts(ctx)
	if err != nil {
		return nil, err
	}

	var matches []contract.ContractMatch
	for _, c := range all {
		score := FilenameSimilarity(filename, c.Filename)
		if score < FilenameMatchThreshold {
			continue
		}
		matches = append(matches, contract.ContractMatch{
			ContractID:      c.ID,
			Filename:        c.Filename,
			MatchType:       contract.MatchFilename,
			SimilarityScore: score,
		})
	}

	// Stable sort keeps the store's deterministic listing order for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})

	return matches, nil
}
