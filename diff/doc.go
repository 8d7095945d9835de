// Package diff compares two clause-identifier -> text mappings and
// classifies every clause as unchanged, modified, added, or deleted.
//
// The engine is pure, synchronous, and I/O-free: comparisons for different
// contracts may run in parallel with no shared state.
//
// Classification is similarity-based, not equality-based. Text is
// normalized (Unicode NFC, case fold, whitespace collapse) before a
// Levenshtein ratio is computed; clauses scoring at or above
// UnchangedThreshold count as unchanged, so cosmetic edits do not produce
// new clause rows downstream.
//
// CompareContracts iterates the sorted union of identifiers from both
// mappings so results are reproducible, and tolerates a single malformed
// clause: a per-clause failure is logged and skipped rather than failing
// the whole comparison.
package diff
