// Package harness provides a scenario-driven conformance framework for the
// versioning engine.
//
// A scenario is a YAML file describing successive uploads of one contract:
// the initial clause map and each revision's clause map, optionally with
// the expected change summary per revision. The harness runs the scenario
// against a fresh in-memory store using the real diff engine, coordinator,
// and differential store, then reconstructs every version.
//
// Determinism: each run uses a stepping clock, and golden snapshots contain
// only clause identifiers, versions, content, and summaries - never
// generated row IDs - so golden files are stable across runs.
//
// Golden files live under testdata/golden/{scenario}.golden and are
// regenerated with:
//
//	go test ./harness -update
package harness
