package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: one contract uploaded as a
// sequence of versions.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Filename is the upload filename for the initial ingest.
	Filename string `yaml:"filename"`

	// Versions holds the clause map of every version in order. The first
	// entry is the initial ingest; each later entry is committed as the
	// next version after diffing against the stored live set.
	Versions []VersionStep `yaml:"versions"`
}

// VersionStep is one uploaded revision.
type VersionStep struct {
	// Clauses maps clause identifiers to clause text.
	Clauses map[string]string `yaml:"clauses"`

	// Expect optionally pins the change summary the diff must produce.
	// Never set on the first version (the ingest has no diff).
	Expect *ExpectedSummary `yaml:"expect,omitempty"`
}

// ExpectedSummary is the expected per-category clause count for one
// revision. Omitted fields default to zero.
type ExpectedSummary struct {
	Modified  int `yaml:"modified"`
	Added     int `yaml:"added"`
	Deleted   int `yaml:"deleted"`
	Unchanged int `yaml:"unchanged"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarios loads every *.yaml scenario in a directory, sorted by
// filename for deterministic test ordering.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob scenarios in %s: %w", dir, err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.Filename == "" {
		return fmt.Errorf("scenario filename is required")
	}
	if len(s.Versions) == 0 {
		return fmt.Errorf("scenario needs at least one version")
	}
	if s.Versions[0].Expect != nil {
		return fmt.Errorf("the initial version cannot carry an expect clause")
	}
	for i, v := range s.Versions {
		if len(v.Clauses) == 0 {
			return fmt.Errorf("version %d has no clauses", i+1)
		}
	}
	return nil
}
