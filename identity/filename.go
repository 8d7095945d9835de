package identity

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/redline/diff"
)

// NormalizeFilename canonicalizes a filename for similarity comparison:
// Unicode NFC, case fold, extension stripped, whitespace trimmed.
func NormalizeFilename(name string) string {
	name = norm.NFC.String(name)
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimSpace(name)
}

// FilenameSimilarity scores two filenames in [0,1] using a normalized edit
// distance over the normalized names: 1 - distance/max(len(a), len(b)).
//
// Inputs that are empty after normalization score 0.0; identical normalized
// names score 1.0.
func FilenameSimilarity(a, b string) float64 {
	na := NormalizeFilename(a)
	nb := NormalizeFilename(b)

	if na == "" || nb == "" {
		return 0.0
	}
	if na == nb {
		return 1.0
	}

	ra := []rune(na)
	rb := []rune(nb)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	score := 1.0 - float64(diff.Levenshtein(na, nb))/float64(maxLen)
	if score < 0 {
		return 0.0
	}
	if score > 1 {
		return 1.0
	}
	return score
}
