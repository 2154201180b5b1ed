package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ghost/internal/audit"
	"github.com/roach88/ghost/internal/testutil"
)

// executeRoot runs the root command with args and returns stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func copyScenarios(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range []string{"numbers.yaml", "text.yaml", filepath.Join("golden", "numbers.golden")} {
		data, err := os.ReadFile(filepath.Join("testdata", "scenarios", rel))
		require.NoError(t, err)
		dst := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))
		require.NoError(t, os.WriteFile(dst, data, 0644))
	}
	return dir
}

func TestCheckCommandMissingArgs(t *testing.T) {
	_, err := executeRoot(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestCheckCommandNonExistentPath(t *testing.T) {
	_, err := executeRoot(t, "check", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario path not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckCommandEmptyDir(t *testing.T) {
	out, err := executeRoot(t, "check", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestCheckCommandEmptyDirJSON(t *testing.T) {
	out, err := executeRoot(t, "check", t.TempDir(), "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, resp.Data.Total)
}

func TestCheckCommandTestdata(t *testing.T) {
	out, err := executeRoot(t, "check", filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	assert.Contains(t, out, "✓ numbers (7 events)")
	assert.Contains(t, out, "✓ text (7 events)")
	assert.Contains(t, out, "2 passed, 0 failed, 2 total")
}

func TestCheckCommandFilter(t *testing.T) {
	out, err := executeRoot(t, "check", filepath.Join("testdata", "scenarios"), "--filter", "num*")
	require.NoError(t, err)
	assert.Contains(t, out, "numbers")
	assert.NotContains(t, out, "✓ text")
	assert.Contains(t, out, "1 total")
}

func TestCheckCommandInvalidFilter(t *testing.T) {
	_, err := executeRoot(t, "check", filepath.Join("testdata", "scenarios"), "--filter", "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestCheckCommandFailingScenario(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(`
name: bad
description: "expects the wrong outcome"
cases:
  - {name: minus, value: -1, property: positive, expect: certified}
`), 0644))

	out, err := executeRoot(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ bad")
	assert.Contains(t, out, "Case failed: minus")
	assert.Contains(t, out, "0 passed, 1 failed, 1 total")
}

func TestCheckCommandLoadError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [\n"), 0644))

	out, err := executeRoot(t, "check", dir, "--format", "json")
	require.Error(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.Equal(t, "broken.yaml", resp.Data.Scenarios[0].Name)
	assert.Contains(t, resp.Data.Scenarios[0].Errors[0], CodeScenarioLoad)
}

func TestCheckCommandGoldenMismatch(t *testing.T) {
	dir := copyScenarios(t)
	golden := filepath.Join(dir, "golden", "numbers.golden")
	require.NoError(t, os.WriteFile(golden, []byte("{}\n"), 0644))

	out, err := executeRoot(t, "check", filepath.Join(dir, "numbers.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "trace does not match golden file")
}

func TestCheckCommandUpdate(t *testing.T) {
	dir := copyScenarios(t)
	golden := filepath.Join(dir, "golden", "numbers.golden")
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	require.NoError(t, os.Remove(golden))

	out, err := executeRoot(t, "check", filepath.Join(dir, "numbers.yaml"), "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "golden updated")

	got, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestCheckCommandStoresRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCheckCommand(rootOpts)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "scenarios"), "--db", dbPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "14 audit records stored")

	st, err := audit.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.Runs(t.Context())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Contains(t, runs, "test-run-numbers")
}

func TestCheckCommandRunIDOverride(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	opts := &CheckOptions{
		RootOptions: &RootOptions{Format: "json"},
		Store:       StoreOptions{Database: dbPath, Driver: audit.DriverSQLite},
		RunIDs:      testutil.NewFixedRunIDGenerator("fixed"),
	}
	cmd := NewCheckCommand(opts.RootOptions)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	require.NoError(t, runCheck(opts, []string{filepath.Join("testdata", "scenarios", "text.yaml")}, cmd))

	var resp struct {
		Data CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Data.Scenarios, 1)
	assert.Equal(t, "fixed", resp.Data.Scenarios[0].RunID)
	assert.Equal(t, 7, resp.Data.Stored)
}

func TestCheckCommandBadDriver(t *testing.T) {
	_, err := executeRoot(t, "check", filepath.Join("testdata", "scenarios"), "--db", "x", "--driver", "oracle")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to open audit store")
}

func TestFindScenarioFiles_SkipsGolden(t *testing.T) {
	files, err := findScenarioFiles(filepath.Join("testdata", "scenarios"), "")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	single, err := findScenarioFiles(filepath.Join("testdata", "scenarios", "text.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("testdata", "scenarios", "text.yaml")}, single)
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "golden", "b.golden"), goldenFilePath(filepath.Join("a", "b.yaml")))
}

func TestCheckCommandVerboseJSONKeepsStdoutClean(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--format", "json", "--verbose", "check", filepath.Join("testdata", "scenarios", "numbers.yaml")})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotContains(t, stdout.String(), "checking numbers")

	assert.Contains(t, stderr.String(), "checking numbers (7 cases)")
	assert.Contains(t, stderr.String(), "numbers: run test-run-numbers,")
}

func TestCheckCommandVerboseText(t *testing.T) {
	out, err := executeRoot(t, "--verbose", "check", filepath.Join("testdata", "scenarios", "numbers.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "checking numbers (7 cases)")
	assert.Contains(t, out, "✓ numbers")

	quiet, err := executeRoot(t, "check", filepath.Join("testdata", "scenarios", "numbers.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, quiet, "checking numbers")
}
