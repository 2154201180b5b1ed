package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when a case does not produce its expected
// outcome. It includes the case's trace to help debug the failure.
type AssertionError struct {
	Case     string       // Case name
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Events the case produced
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Case failed: %s\n", e.Case)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nCase trace:\n")
		for _, event := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] %s %s %s\n", event.Seq, event.Property, event.Outcome, event.Detail)
		}
	}

	return buf.String()
}

// checkCase compares what a case produced with what it expected.
// events are the trace events of this case only; err is the error returned
// by certification, if any.
func checkCase(c Case, events []TraceEvent, err error) error {
	if len(events) == 0 {
		actual := "no audit event"
		if err != nil {
			actual = fmt.Sprintf("no audit event (%v)", err)
		}
		return &AssertionError{Case: c.Name, Expected: string(c.Expect), Actual: actual}
	}

	last := events[len(events)-1]
	if last.Outcome != string(c.Expect) {
		return &AssertionError{
			Case:     c.Name,
			Expected: string(c.Expect),
			Actual:   last.Outcome,
			Trace:    events,
		}
	}

	if c.Error != "" {
		if err == nil {
			return &AssertionError{
				Case:     c.Name,
				Expected: fmt.Sprintf("error containing %q", c.Error),
				Actual:   "no error",
				Trace:    events,
			}
		}
		if !strings.Contains(err.Error(), c.Error) {
			return &AssertionError{
				Case:     c.Name,
				Expected: fmt.Sprintf("error containing %q", c.Error),
				Actual:   err.Error(),
				Trace:    events,
			}
		}
	}

	return nil
}
