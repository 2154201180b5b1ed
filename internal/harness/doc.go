// Package harness runs certification scenarios against the proof library.
//
// A scenario lists values together with the property each value should be
// certified for and the audit outcome the certification is expected to
// produce. The harness brands every value in its own scope, certifies it,
// collects the audit trail and compares each case's outcome with the
// expectation.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	run_id: "test-run-0001"          # optional, fixed for golden traces
//	cases:
//	  - name: zero_is_non_negative
//	    value: 0
//	    property: non-negative
//	    expect: certified
//	  - name: percentage
//	    value: 140
//	    constraint: ">=0 & <=100"
//	    expect: rejected
//	    error: "out of bound"
//	  - name: trusted_input
//	    value: "abc"
//	    property: nfc
//	    assume: true
//	    expect: assumed
//
// Each case names exactly one of property (from the catalog, see
// Properties) or constraint (a CUE expression). Expect is one of
// certified, rejected or assumed.
//
// # Deterministic Testing
//
// All scenarios execute with a deterministic clock and a fixed run ID so
// that traces are reproducible and can be compared against golden files:
//
//   - Fixed run IDs (from scenario.run_id, or "test-run-default")
//   - Deterministic logical clock (testutil.DeterministicClock)
//
// Brand IDs and caller locations depend on process history and are kept
// out of traces.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/numbers.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
