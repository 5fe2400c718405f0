package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarios_Golden runs every scenario under testdata/scenarios and
// compares its trace against the matching golden file.
func TestScenarios_Golden(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario fixtures found")

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}
