package testutil_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ghost/internal/audit"
	"github.com/roach88/ghost/internal/harness"
	"github.com/roach88/ghost/internal/testutil"
)

const resetScenario = `
name: reset
run_id: "reset-run"
cases:
  - name: zero
    value: 0
    property: non-negative
    expect: certified
  - name: negative
    value: -1
    property: non-negative
    expect: rejected
`

func seqs(result *harness.Result) []int64 {
	out := make([]int64, 0, len(result.Trace))
	for _, e := range result.Trace {
		out = append(out, e.Seq)
	}
	return out
}

func TestDeterministicClock_IsAuditClock(t *testing.T) {
	var clock audit.Clock = testutil.NewDeterministicClock()
	assert.Equal(t, int64(1), clock.Next())
	assert.Equal(t, int64(2), clock.Next())
}

func TestDeterministicClock_CurrentTracksNext(t *testing.T) {
	clock := testutil.NewDeterministicClock()
	assert.Zero(t, clock.Current())

	clock.Next()
	clock.Next()
	assert.Equal(t, int64(2), clock.Current())
}

func TestDeterministicClock_ResetReplaysScenarioSeqs(t *testing.T) {
	scenario, err := harness.ParseScenario([]byte(resetScenario))
	require.NoError(t, err)

	clock := testutil.NewDeterministicClock()
	opts := harness.Options{Clock: clock}

	first, err := harness.RunWithOptions(scenario, opts)
	require.NoError(t, err)
	require.NotEmpty(t, first.Trace)
	assert.Equal(t, int64(len(first.Records)), clock.Current())

	second, err := harness.RunWithOptions(scenario, opts)
	require.NoError(t, err)
	assert.NotEqual(t, seqs(first), seqs(second))

	clock.Reset()
	third, err := harness.RunWithOptions(scenario, opts)
	require.NoError(t, err)
	assert.Equal(t, seqs(first), seqs(third))
	assert.Equal(t, first.Trace, third.Trace)
}

func TestDeterministicClock_ConcurrentNextUnique(t *testing.T) {
	clock := testutil.NewDeterministicClock()
	const workers, perWorker = 32, 64

	var (
		mu   sync.Mutex
		seen = make(map[int64]bool, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				v := clock.Next()
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker), clock.Current())
}
