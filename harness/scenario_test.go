package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ParsesYAML(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/basic_revision.yaml")
	require.NoError(t, err)

	assert.Equal(t, "basic_revision", s.Name)
	assert.Equal(t, "MSA.pdf", s.Filename)
	require.Len(t, s.Versions, 2)
	assert.Len(t, s.Versions[0].Clauses, 3)
	assert.Nil(t, s.Versions[0].Expect)

	require.NotNil(t, s.Versions[1].Expect)
	assert.Equal(t, 1, s.Versions[1].Expect.Modified)
	assert.Equal(t, 1, s.Versions[1].Expect.Added)
	assert.Equal(t, 1, s.Versions[1].Expect.Deleted)
	assert.Equal(t, 1, s.Versions[1].Expect.Unchanged)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestLoadScenario_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing name",
			yaml: "filename: a.pdf\nversions:\n  - clauses:\n      x: \"y\"\n",
		},
		{
			name: "missing filename",
			yaml: "name: s\nversions:\n  - clauses:\n      x: \"y\"\n",
		},
		{
			name: "no versions",
			yaml: "name: s\nfilename: a.pdf\nversions: []\n",
		},
		{
			name: "empty clause map",
			yaml: "name: s\nfilename: a.pdf\nversions:\n  - clauses: {}\n",
		},
		{
			name: "expect on first version",
			yaml: "name: s\nfilename: a.pdf\nversions:\n  - clauses:\n      x: \"y\"\n    expect:\n      added: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scenario.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := LoadScenario(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadScenarios_SortedAndComplete(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	assert.Equal(t, "basic_revision", scenarios[0].Name)
	assert.Equal(t, "cosmetic_noise", scenarios[1].Name)
	assert.Equal(t, "delete_and_readd", scenarios[2].Name)
}
