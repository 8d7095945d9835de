package contract

// ChangeType classifies one clause across a version boundary.
type ChangeType string

const (
	ChangeUnchanged ChangeType = "unchanged"
	ChangeModified  ChangeType = "modified"
	ChangeAdded     ChangeType = "added"
	ChangeDeleted   ChangeType = "deleted"
)

// ClauseComparison is the diff result for one clause identifier.
type ClauseComparison struct {
	ClauseIdentifier string
	ChangeType       ChangeType

	// OldContent is empty for added clauses, NewContent for deleted ones.
	// Presence is encoded by ChangeType, not by emptiness.
	OldContent string
	NewContent string

	// SimilarityScore is in [0,1]. 1.0 means identical after normalization.
	SimilarityScore float64
}

// ContractDiff groups clause comparisons by change type.
type ContractDiff struct {
	Unchanged []ClauseComparison
	Modified  []ClauseComparison
	Added     []ClauseComparison
	Deleted   []ClauseComparison
}

// Add places a comparison into its change-type bucket.
func (d *ContractDiff) Add(c ClauseComparison) {
	switch c.ChangeType {
	case ChangeModified:
		d.Modified = append(d.Modified, c)
	case ChangeAdded:
		d.Added = append(d.Added, c)
	case ChangeDeleted:
		d.Deleted = append(d.Deleted, c)
	default:
		d.Unchanged = append(d.Unchanged, c)
	}
}

// Summary returns the per-category counts.
func (d *ContractDiff) Summary() ChangeSummary {
	return ChangeSummary{
		Modified:  len(d.Modified),
		Added:     len(d.Added),
		Deleted:   len(d.Deleted),
		Unchanged: len(d.Unchanged),
	}
}

// MatchType says how a candidate contract matched an upload.
type MatchType string

const (
	// MatchHash means the uploaded bytes hash to an existing content_hash.
	MatchHash MatchType = "hash"

	// MatchFilename means the filenames are similar above the resolver
	// threshold. Only produced when no hash match exists.
	MatchFilename MatchType = "filename"
)

// ContractMatch is one ranked candidate for "is this an update?".
type ContractMatch struct {
	ContractID      string
	Filename        string
	MatchType       MatchType
	SimilarityScore float64
}
