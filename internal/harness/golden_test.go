package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Numbers(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "numbers.yaml"))
	require.NoError(t, err)

	// Regenerate with:
	//   go test ./internal/harness -run TestRunWithGolden_Numbers -update
	require.NoError(t, RunWithGolden(t, scenario))
}

func TestRunWithGolden_Deterministic(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "numbers.yaml"))
	require.NoError(t, err)

	// Running twice yields identical traces, which is what makes the golden
	// file stable.
	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)
	require.Equal(t, first.Trace, second.Trace)

	require.NoError(t, AssertGolden(t, scenario.Name, second))
}
