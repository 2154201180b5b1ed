package harness

import "github.com/roach88/ghost/internal/audit"

// TraceEvent is one audit event attributed to a scenario case.
//
// Brand IDs and callers are omitted: they depend on process history and
// would make traces non-deterministic.
type TraceEvent struct {
	Case     string `json:"case"`
	Property string `json:"property"`
	Outcome  string `json:"outcome"`
	Detail   string `json:"detail"`
	Error    string `json:"error,omitempty"`
	Seq      int64  `json:"seq"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success.
	// True if every case produced its expected outcome.
	Pass bool `json:"pass"`

	// Trace contains the audit events of all cases in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Records holds the raw audit records, for persisting to an audit store.
	Records []audit.Record `json:"-"`
}

// NewResult creates a new passing result.
// Used as the starting point for execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends the audit records produced by one case.
func (r *Result) AddTrace(caseName, errText string, recs []audit.Record) {
	for _, rec := range recs {
		r.Trace = append(r.Trace, TraceEvent{
			Case:     caseName,
			Property: rec.Property,
			Outcome:  string(rec.Outcome),
			Detail:   rec.Detail,
			Error:    errText,
			Seq:      rec.Seq,
		})
	}
	r.Records = append(r.Records, recs...)
}
