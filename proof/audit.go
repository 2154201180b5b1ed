package proof

import (
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/roach88/ghost/named"
)

// Outcome is the result of one audit point.
type Outcome string

const (
	// OutcomeCertified: a predicate ran and held; evidence was minted.
	OutcomeCertified Outcome = "certified"

	// OutcomeRejected: a predicate ran and failed, or the brand could not
	// mint evidence.
	OutcomeRejected Outcome = "rejected"

	// OutcomeAssumed: evidence was minted without a check.
	OutcomeAssumed Outcome = "assumed"
)

// Event describes one pass through an audit point.
type Event struct {
	Brand    named.ID
	Property string
	Outcome  Outcome
	Detail   string

	// Caller is "file.go:line" of the first frame outside this package.
	Caller string
}

// Auditor receives an Event for every Certify, Check and Assume call.
// Implementations must be safe for concurrent use.
type Auditor interface {
	Audit(Event)
}

// AuditorFunc adapts a function to Auditor.
type AuditorFunc func(Event)

// Audit calls f(e).
func (f AuditorFunc) Audit(e Event) { f(e) }

type auditorBox struct{ a Auditor }

var auditor atomic.Pointer[auditorBox]

// SetAuditor installs a as the process-wide auditor and returns a function
// restoring the previous one. A nil a restores the default, which logs each
// event through slog at debug level.
func SetAuditor(a Auditor) (restore func()) {
	var next *auditorBox
	if a != nil {
		next = &auditorBox{a: a}
	}
	prev := auditor.Swap(next)
	return func() { auditor.Store(prev) }
}

func emit(e Event) {
	e.Caller = callerOutside()
	if box := auditor.Load(); box != nil {
		box.a.Audit(e)
		return
	}
	slog.Debug("proof "+string(e.Outcome),
		"brand", e.Brand.String(),
		"property", e.Property,
		"detail", e.Detail,
		"caller", e.Caller,
	)
}

const pkgPrefix = "github.com/roach88/ghost/proof."

// callerOutside returns "file.go:line" for the nearest frame whose function
// does not belong to this package.
func callerOutside() string {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, pkgPrefix) {
			return filepath.Base(f.File) + ":" + strconv.Itoa(f.Line)
		}
		if !more {
			return "unknown"
		}
	}
}
