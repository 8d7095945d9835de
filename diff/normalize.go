package diff

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes clause text for comparison: Unicode NFC so
// visually identical sequences compare equal, case fold, whitespace runs
// collapsed to a single space, ends trimmed.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	return strings.Join(strings.Fields(text), " ")
}
