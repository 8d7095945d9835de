package contract

import (
	"sort"
	"time"
)

// SelectLive computes the version frontier: the live clause rows that
// together represent full document state at the given version.
//
// For each clause identifier it keeps the row with the maximum
// ClauseVersion <= version (last-writer-wins), then drops rows that were
// deleted as of asOf. asOf must be the target version's own commit
// timestamp, not the current wall clock: a deletion committed by a later
// version carries a later DeletedAt and must stay visible when an earlier
// version is reconstructed.
//
// Pure function of its inputs. Output is sorted by clause identifier.
func SelectLive(rows []ClauseRow, version int, asOf time.Time) []ClauseRow {
	best := make(map[string]ClauseRow)
	for _, row := range rows {
		if row.ClauseVersion > version {
			continue
		}
		cur, ok := best[row.ClauseIdentifier]
		if !ok || row.ClauseVersion > cur.ClauseVersion {
			best[row.ClauseIdentifier] = row
		}
	}

	identifiers := make([]string, 0, len(best))
	for id := range best {
		identifiers = append(identifiers, id)
	}
	sort.Strings(identifiers)

	live := make([]ClauseRow, 0, len(best))
	for _, id := range identifiers {
		row := best[id]
		if deletedAsOf(row, asOf) {
			continue
		}
		live = append(live, row)
	}
	return live
}

// deletedAsOf reports whether the row's deletion had already happened at
// the given instant. A row deleted exactly at asOf counts as deleted: the
// coordinator stamps DeletedAt and the version timestamp from the same
// clock reading.
func deletedAsOf(row ClauseRow, asOf time.Time) bool {
	if !row.IsDeleted || row.DeletedAt == nil {
		return false
	}
	return !row.DeletedAt.After(asOf)
}
