package audit

import (
	"sync"

	"github.com/roach88/ghost/proof"
)

// Record is one audit event as stored.
type Record struct {
	ID       int64         `json:"id,omitempty"` // Store row ID, 0 before Write
	RunID    string        `json:"run_id"`
	Seq      int64         `json:"seq"` // Logical clock, unique per run
	Brand    uint64        `json:"brand"`
	Property string        `json:"property"`
	Outcome  proof.Outcome `json:"outcome"`
	Detail   string        `json:"detail"`
	Caller   string        `json:"caller"`
}

// Log is an in-memory proof.Auditor.
//
// Thread-safety: Log is safe for concurrent use. Sequence numbers reflect
// the order in which events were received.
type Log struct {
	mu      sync.Mutex
	runID   string
	clock   Clock
	records []Record
}

// NewLog creates a Log for runID. A nil clock uses a fresh LogicalClock.
func NewLog(runID string, clock Clock) *Log {
	if clock == nil {
		clock = NewLogicalClock()
	}
	return &Log{runID: runID, clock: clock}
}

// Audit implements proof.Auditor.
func (l *Log) Audit(e proof.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{
		RunID:    l.runID,
		Seq:      l.clock.Next(),
		Brand:    uint64(e.Brand),
		Property: e.Property,
		Outcome:  e.Outcome,
		Detail:   e.Detail,
		Caller:   e.Caller,
	})
}

// Records returns a copy of the collected records in sequence order.
func (l *Log) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of collected records.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// RunID returns the run this log collects for.
func (l *Log) RunID() string {
	return l.runID
}

// Multi returns an auditor forwarding every event to each of auditors in
// order. Nil auditors are skipped.
func Multi(auditors ...proof.Auditor) proof.Auditor {
	var live []proof.Auditor
	for _, a := range auditors {
		if a != nil {
			live = append(live, a)
		}
	}
	return proof.AuditorFunc(func(e proof.Event) {
		for _, a := range live {
			a.Audit(e)
		}
	})
}
