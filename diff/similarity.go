package diff

// UnchangedThreshold is the similarity at or above which two clause texts
// are classified as unchanged. Tuned so edits limited to case and
// whitespace always land at 1.0 (normalization removes them) while small
// wording tweaks still register as modifications.
const UnchangedThreshold = 0.95

// Similarity returns an edit-distance ratio in [0,1] computed on
// normalized text.
//
// Edge cases are explicit rather than falling out of the ratio:
// both-empty is 1.0, exactly-one-empty is 0.0. The ratio is never
// evaluated with a zero denominator.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)

	switch {
	case na == "" && nb == "":
		return 1.0
	case na == "" || nb == "":
		return 0.0
	case na == nb:
		return 1.0
	}

	ra := []rune(na)
	rb := []rune(nb)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	score := 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
	if score < 0 {
		return 0.0
	}
	if score > 1 {
		return 1.0
	}
	return score
}

// Levenshtein returns the edit distance between a and b in runes.
// Exported for the identity resolver's filename similarity.
func Levenshtein(a, b string) int {
	return levenshtein([]rune(a), []rune(b))
}

// levenshtein computes edit distance with the two-row dynamic programming
// formulation: O(len(a)*len(b)) time, O(min) memory.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep the shorter string on the row axis to bound memory.
	if len(b) < len(a) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		cur[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[i] = min3(
				prev[i]+1,      // deletion
				cur[i-1]+1,     // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}

	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
