package contract

import "time"

// Contract is one uploaded document family. Created once on first ingest,
// mutated only by version commits, never deleted.
type Contract struct {
	// ID is the stable contract identity, generated once at ingest.
	ID string

	// Filename is the name the document was uploaded under.
	Filename string

	// ContentHash is the hex SHA-256 digest of the raw uploaded bytes.
	ContentHash string

	// CurrentVersion is the highest version ever committed (>= 1).
	CurrentVersion int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClauseRow is one concrete text snapshot of a logical clause slot.
// The ClauseID identifies this snapshot, not the slot: a modified clause
// gets a fresh ClauseID while its ClauseIdentifier stays stable.
type ClauseRow struct {
	// ClauseID identifies this snapshot. Not stable across versions.
	ClauseID string

	// ContractID is the owning contract.
	ContractID string

	// ClauseVersion is the version in which this row's content became
	// (and, for carried-forward rows, remained) authoritative.
	ClauseVersion int

	// ClauseIdentifier is the logical slot name, stable across versions,
	// e.g. "liability.cap".
	ClauseIdentifier string

	// Content is the clause text.
	Content string

	// Metadata carries opaque auxiliary fields from the upstream analysis,
	// plus audit fields written by the coordinator (e.g. previous_content).
	Metadata map[string]string

	CreatedAt time.Time

	// IsDeleted marks the row as deleted in place. Deletion does not bump
	// ClauseVersion.
	IsDeleted bool
	DeletedAt *time.Time
}

// VersionMetadata records one committed version of a contract.
type VersionMetadata struct {
	ContractID string
	Version    int

	// Timestamp is the commit time of this version. Reconstruction uses it
	// to decide deletion visibility.
	Timestamp time.Time

	// ChangedClauseIDs lists the clause rows touched by this version
	// (modified, added, or marked deleted).
	ChangedClauseIDs []string

	Summary ChangeSummary
}

// ChangeSummary counts clause outcomes for one version.
type ChangeSummary struct {
	Modified  int `json:"modified"`
	Added     int `json:"added"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
}

// Total returns the number of clauses the summary covers.
func (s ChangeSummary) Total() int {
	return s.Modified + s.Added + s.Deleted + s.Unchanged
}

// VersionSnapshot is a reconstructed version payload for read/display
// surfaces: the live clause set as it existed at Version.
type VersionSnapshot struct {
	ContractID string
	Version    int
	Clauses    []ClauseRow
	Metadata   VersionMetadata
}
