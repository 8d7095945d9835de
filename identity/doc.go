// Package identity answers "is this upload a new contract or a candidate
// update of one we already know?".
//
// Identity has two signals, checked in strict order:
//
//  1. Content hash: a streaming SHA-256 of the raw bytes. Any contract with
//     the same hash is returned as a hash match with similarity 1.0 and
//     filename comparison is skipped entirely.
//  2. Filename similarity: only consulted when no hash match exists. Names
//     are normalized (NFC, case fold, extension stripped, trimmed) and
//     scored with a normalized edit distance; candidates at or above
//     FilenameMatchThreshold are returned as filename matches.
//
// An empty candidate set is a normal result, not an error: it means the
// upload should be ingested as a new contract.
package identity
