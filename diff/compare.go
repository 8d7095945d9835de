package diff

import (
	"log/slog"
	"sort"

	"github.com/roach88/redline/contract"
)

// CompareClause classifies one clause slot across a version boundary.
// Either side may be nil, meaning the clause is absent in that version.
//
//   - only the new side present: ADDED, similarity 0.0, no text comparison
//   - only the old side present: DELETED, similarity 0.0
//   - both present: UNCHANGED when Similarity >= UnchangedThreshold,
//     otherwise MODIFIED
//   - neither present: anomaly; classified UNCHANGED with similarity 1.0
//     and logged, never failed
func CompareClause(oldText, newText *string, identifier string) contract.ClauseComparison {
	cmp := contract.ClauseComparison{ClauseIdentifier: identifier}

	switch {
	case oldText == nil && newText == nil:
		slog.Warn("clause comparison with neither side present",
			"clause_identifier", identifier)
		cmp.ChangeType = contract.ChangeUnchanged
		cmp.SimilarityScore = 1.0
		return cmp

	case oldText == nil:
		cmp.ChangeType = contract.ChangeAdded
		cmp.NewContent = *newText
		cmp.SimilarityScore = 0.0
		return cmp

	case newText == nil:
		cmp.ChangeType = contract.ChangeDeleted
		cmp.OldContent = *oldText
		cmp.SimilarityScore = 0.0
		return cmp
	}

	cmp.OldContent = *oldText
	cmp.NewContent = *newText
	cmp.SimilarityScore = Similarity(*oldText, *newText)

	if cmp.SimilarityScore >= UnchangedThreshold {
		cmp.ChangeType = contract.ChangeUnchanged
	} else {
		cmp.ChangeType = contract.ChangeModified
	}
	return cmp
}

// CompareContracts classifies every clause in the union of both mappings
// and returns the aggregate diff.
//
// Iteration order is the sorted union of identifiers, so the result is
// deterministic for a given pair of inputs. A failure comparing one clause
// is recovered and logged, and that clause is skipped; the remaining
// clauses still produce a complete diff.
func CompareContracts(oldClauses, newClauses map[string]string) contract.ContractDiff {
	identifiers := unionIdentifiers(oldClauses, newClauses)

	var d contract.ContractDiff
	for _, id := range identifiers {
		cmp, ok := compareOne(oldClauses, newClauses, id)
		if !ok {
			continue
		}
		d.Add(cmp)
	}
	return d
}

// compareOne compares a single identifier, converting a panic into a
// logged skip so one malformed clause cannot poison the aggregate.
func compareOne(oldClauses, newClauses map[string]string, identifier string) (cmp contract.ClauseComparison, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("clause comparison failed, skipping clause",
				"clause_identifier", identifier,
				"panic", r)
			ok = false
		}
	}()

	var oldText, newText *string
	if text, present := oldClauses[identifier]; present {
		oldText = &text
	}
	if text, present := newClauses[identifier]; present {
		newText = &text
	}

	return CompareClause(oldText, newText, identifier), true
}

func unionIdentifiers(oldClauses, newClauses map[string]string) []string {
	seen := make(map[string]struct{}, len(oldClauses)+len(newClauses))
	for id := range oldClauses {
		seen[id] = struct{}{}
	}
	for id := range newClauses {
		seen[id] = struct{}{}
	}

	identifiers := make([]string, 0, len(seen))
	for id := range seen {
		identifiers = append(identifiers, id)
	}
	sort.Strings(identifiers)
	return identifiers
}
