package testutil

import (
	"testing"

	"github.com/roach88/ghost/internal/audit"
	"github.com/roach88/ghost/proof"
)

// CaptureAudit installs an audit.Log as the process-wide auditor for the
// duration of the test and returns it. The log uses a DeterministicClock,
// so the first captured record has seq 1.
//
// Tests using CaptureAudit must not call t.Parallel: the auditor is global.
func CaptureAudit(t testing.TB) *audit.Log {
	t.Helper()
	log := audit.NewLog(NewFixedRunIDGenerator("").Generate(), NewDeterministicClock())
	restore := proof.SetAuditor(log)
	t.Cleanup(restore)
	return log
}
