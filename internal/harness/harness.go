package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/ghost/internal/audit"
	"github.com/roach88/ghost/internal/testutil"
	"github.com/roach88/ghost/proof"
)

// Options configures a scenario execution.
type Options struct {
	// RunIDs issues the audit run ID. Defaults to a fixed generator seeded
	// with the scenario's run_id.
	RunIDs audit.RunIDGenerator

	// Clock issues record sequence numbers. Defaults to a fresh
	// deterministic clock.
	Clock audit.Clock

	// Auditor, when set, also receives every audit event.
	Auditor proof.Auditor

	// Logger receives progress messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// Run executes a scenario with deterministic run ID and clock.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithOptions(scenario, Options{})
}

// RunWithOptions executes a scenario and returns the result.
//
// The process-wide auditor is replaced for the duration of the run, so
// scenarios must not run concurrently with each other or with other
// certification code.
//
// Execution flow:
// 1. Resolve every case to a catalog property or compiled CUE constraint
// 2. Install an audit log (plus opts.Auditor) as the auditor
// 3. Certify or assume each case in its own brand scope
// 4. Compare each case's audit outcome with its expectation
func RunWithOptions(scenario *Scenario, opts Options) (*Result, error) {
	if opts.RunIDs == nil {
		opts.RunIDs = testutil.NewFixedRunIDGenerator(scenario.RunID)
	}
	if opts.Clock == nil {
		opts.Clock = testutil.NewDeterministicClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	// Resolve before running anything so a bad constraint fails the whole
	// scenario rather than leaving a partial audit trail.
	resolved := make([]property, len(scenario.Cases))
	for i, c := range scenario.Cases {
		p, err := resolve(c)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		resolved[i] = p
	}

	log := audit.NewLog(opts.RunIDs.Generate(), opts.Clock)
	restore := proof.SetAuditor(audit.Multi(log, opts.Auditor))
	defer restore()

	opts.Logger.Debug("running scenario",
		"scenario", scenario.Name,
		"run_id", log.RunID(),
		"cases", len(scenario.Cases))

	result := NewResult()
	for i, c := range scenario.Cases {
		before := log.Len()

		var err error
		if c.Assume {
			err = resolved[i].assume(c.Value)
		} else {
			err = resolved[i].certify(c.Value)
		}

		recs := log.Records()[before:]
		var errText string
		if err != nil {
			errText = err.Error()
		}
		result.AddTrace(c.Name, errText, recs)

		if aerr := checkCase(c, result.Trace[len(result.Trace)-len(recs):], err); aerr != nil {
			result.AddError(aerr.Error())
		}
	}

	opts.Logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"events", len(result.Trace))

	return result, nil
}

// resolve maps a case to the property that certifies it.
func resolve(c Case) (property, error) {
	if c.Constraint != "" {
		return constraintProperty(c.Constraint)
	}
	p, ok := catalog[c.Property]
	if !ok {
		return property{}, fmt.Errorf("unknown property %q", c.Property)
	}
	return p, nil
}
