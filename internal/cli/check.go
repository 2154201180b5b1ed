package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ghost/internal/audit"
	"github.com/roach88/ghost/internal/harness"
	"github.com/roach88/ghost/internal/testutil"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Store  StoreOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, scenarios with a run_id use it and others get a UUIDv7.
	RunIDs audit.RunIDGenerator
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	RunID  string   `json:"run_id,omitempty"`
	Pass   bool     `json:"pass"`
	Events int      `json:"events"`
	Errors []string `json:"errors,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
	Stored    int              `json:"stored,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <scenario-file-or-dir>...",
		Short: "Run certification scenarios",
		Long: `Run certification scenarios and compare every case's audit outcome
with its expectation.

A scenario with a golden file (golden/<name>.golden next to the scenario
file) must also reproduce that trace exactly. With --db the audit records
of every scenario are written to an audit store.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, audit store errors, etc.)

Examples:
  ghost check ./scenarios
  ghost check ./scenarios/numbers.yaml --update
  ghost check ./scenarios --filter "num*" --db ./audit.db
  ghost check ./scenarios --driver mysql --db "user:pw@tcp(localhost:3306)/ghost"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")
	opts.Store.addFlags(cmd)

	return cmd
}

func runCheck(opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	var scenarioFiles []string
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return NewExitError(ExitCommandError, fmt.Sprintf("scenario path not found: %s", p))
		}
		files, err := findScenarioFiles(p, opts.Filter)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to find scenarios", err)
		}
		scenarioFiles = append(scenarioFiles, files...)
	}

	var st *audit.Store
	if opts.Store.Database != "" {
		var err error
		if st, err = opts.Store.open(); err != nil {
			return err
		}
		defer st.Close()
	}

	result := CheckResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarioFiles)),
		Total:     len(scenarioFiles),
	}

	if len(scenarioFiles) == 0 {
		if opts.Format == "json" {
			return outputCheck(opts, cmd, result)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	ctx := commandContext(cmd)

	for _, scenarioFile := range scenarioFiles {
		scenResult, records := checkScenario(scenarioFile, opts, cmd)

		if st != nil && len(records) > 0 {
			if err := st.Write(ctx, records...); err != nil {
				return WrapExitError(ExitCommandError, "failed to write audit records", err)
			}
			result.Stored += len(records)
		}

		result.Scenarios = append(result.Scenarios, scenResult)
		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	return outputCheck(opts, cmd, result)
}

// findScenarioFiles returns path itself when it is a file, or every YAML
// scenario file below it when it is a directory. Files inside golden/
// directories are skipped.
func findScenarioFiles(path string, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != path && d.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		// Only process .yaml and .yml files
		ext := filepath.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(p), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, p)
		return nil
	})

	return files, err
}

// checkScenario executes a single scenario. It returns the scenario result
// and the audit records to persist.
func checkScenario(scenarioFile string, opts *CheckOptions, cmd *cobra.Command) (ScenarioResult, []audit.Record) {
	out := newFormatter(opts.RootOptions, cmd)
	w := out.Writer
	text := opts.Format != "json"

	fail := func(name string, errs ...string) ScenarioResult {
		if text {
			fmt.Fprintf(w, "✗ %s\n", name)
			for _, e := range errs {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
		return ScenarioResult{Name: name, Pass: false, Errors: errs}
	}

	scenario, err := harness.LoadScenario(scenarioFile)
	if err != nil {
		return fail(filepath.Base(scenarioFile), fmt.Sprintf("[%s] load error: %v", CodeScenarioLoad, err)), nil
	}

	runOpts := harness.Options{RunIDs: opts.RunIDs, Auditor: audit.NewSlogAuditor(nil)}
	if runOpts.RunIDs == nil {
		if scenario.RunID != "" {
			runOpts.RunIDs = testutil.NewFixedRunIDGenerator(scenario.RunID)
		} else {
			runOpts.RunIDs = audit.UUIDv7Generator{}
		}
	}

	slog.Debug("checking scenario", "file", scenarioFile, "scenario", scenario.Name)
	out.VerboseLog("checking %s (%d cases)", scenario.Name, len(scenario.Cases))
	result, err := harness.RunWithOptions(scenario, runOpts)
	if err != nil {
		return fail(scenario.Name, fmt.Sprintf("[%s] execution error: %v", CodeScenarioRun, err)), nil
	}

	var runID string
	if len(result.Records) > 0 {
		runID = result.Records[0].RunID
	}
	out.VerboseLog("%s: run %s, %d events", scenario.Name, runID, len(result.Trace))
	sr := ScenarioResult{Name: scenario.Name, RunID: runID, Events: len(result.Trace)}

	goldenPath := goldenFilePath(scenarioFile)
	if opts.Update {
		if err := updateGoldenFile(scenario.Name, result, goldenPath); err != nil {
			return fail(scenario.Name, fmt.Sprintf("golden update error: %v", err)), result.Records
		}
		if text {
			fmt.Fprintf(w, "✓ %s (golden updated)\n", scenario.Name)
		}
		sr.Pass = true
		return sr, result.Records
	}

	errs := result.Errors
	if _, err := os.Stat(goldenPath); err == nil {
		match, err := compareWithGolden(scenario.Name, result, goldenPath)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("golden comparison error: %v", err))
		case !match:
			errs = append(errs, "trace does not match golden file (run with --update to regenerate)")
		}
	}

	if len(errs) > 0 {
		failed := fail(scenario.Name, errs...)
		failed.RunID, failed.Events = sr.RunID, sr.Events
		return failed, result.Records
	}

	if text {
		fmt.Fprintf(w, "✓ %s (%d events)\n", scenario.Name, sr.Events)
	}
	sr.Pass = true
	return sr, result.Records
}

// goldenFilePath returns the path to the golden file for a scenario.
func goldenFilePath(scenarioFile string) string {
	dir := filepath.Dir(scenarioFile)
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// updateGoldenFile writes the current trace as the golden file.
func updateGoldenFile(name string, result *harness.Result, goldenPath string) error {
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}

	data, err := harness.Snapshot(name, result)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}

	if err := os.WriteFile(goldenPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// compareWithGolden compares the result trace against the golden file.
func compareWithGolden(name string, result *harness.Result, goldenPath string) (bool, error) {
	goldenData, err := os.ReadFile(goldenPath)
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}

	currentData, err := harness.Snapshot(name, result)
	if err != nil {
		return false, fmt.Errorf("failed to marshal current trace: %w", err)
	}

	return bytes.Equal(goldenData, currentData), nil
}

// outputCheck writes the summary and maps failures to ExitFailure.
func outputCheck(opts *CheckOptions, cmd *cobra.Command, result CheckResult) error {
	if opts.Format == "json" {
		status := "ok"
		if result.Failed > 0 {
			status = "error"
		}
		if err := newFormatter(opts.RootOptions, cmd).Encode(CLIResponse{Status: status, Data: result}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
		if result.Stored > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d audit records stored\n", result.Stored)
		}
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}
