package proof_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ghost/named"
	"github.com/roach88/ghost/proof"
)

type positive struct{}

func (positive) Describe() string { return "positive" }

type collector struct {
	mu     sync.Mutex
	events []proof.Event
}

func (c *collector) Audit(e proof.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func TestAuditor_ReceivesEveryAuditPoint(t *testing.T) {
	c := &collector{}
	restore := proof.SetAuditor(c)
	defer restore()

	var id named.ID
	named.WithBrand(-2, func(n named.Named[named.Anon, int]) struct{} {
		id = n.ID()
		_, err := proof.Certify[positive](n, func(v int) bool { return v > 0 })
		require.Error(t, err)
		proof.Assume[positive](n)
		return struct{}{}
	})
	named.WithBrand(2, func(n named.Named[named.Anon, int]) struct{} {
		_, err := proof.Certify[positive](n, func(v int) bool { return v > 0 })
		require.NoError(t, err)
		return struct{}{}
	})

	require.Len(t, c.events, 3)

	assert.Equal(t, id, c.events[0].Brand)
	assert.Equal(t, "positive", c.events[0].Property)
	assert.Equal(t, proof.OutcomeRejected, c.events[0].Outcome)
	assert.Equal(t, "-2", c.events[0].Detail)

	assert.Equal(t, proof.OutcomeAssumed, c.events[1].Outcome)
	assert.Equal(t, proof.OutcomeCertified, c.events[2].Outcome)
	assert.Equal(t, "2", c.events[2].Detail)

	for _, e := range c.events {
		assert.True(t, strings.HasPrefix(e.Caller, "audit_test.go:"), "caller %q", e.Caller)
	}
}

func TestAuditor_ClosedBrandIsRejected(t *testing.T) {
	c := &collector{}
	defer proof.SetAuditor(c)()

	var escaped named.Named[named.Anon, int]
	named.WithBrand(1, func(n named.Named[named.Anon, int]) struct{} {
		escaped = n
		return struct{}{}
	})
	_, err := proof.Certify[positive](escaped, func(int) bool { return true })
	require.Error(t, err)

	require.Len(t, c.events, 1)
	assert.Equal(t, proof.OutcomeRejected, c.events[0].Outcome)
	assert.Contains(t, c.events[0].Detail, string(proof.FaultClosed))
}

func TestAuditor_ImplicationWithoutDerivationCertifiesNothing(t *testing.T) {
	c := &collector{}
	defer proof.SetAuditor(c)()

	named.WithBrand(-5, func(n named.Named[named.Anon, int]) struct{} {
		unfounded := func(proof.Proof[named.Anon, proof.True]) proof.Proof[named.Anon, positive] {
			return proof.Proof[named.Anon, positive]{}
		}
		imp := proof.ImplIntro(n, unfounded)
		assert.True(t, proof.IsFault(proof.Require(n, imp), proof.FaultForged))
		assert.Panics(t, func() { _ = proof.ModusPonens(imp, proof.TrueIntro(n)) })
		return struct{}{}
	})

	assert.Empty(t, c.events)
}

func TestSetAuditor_Restore(t *testing.T) {
	first := &collector{}
	second := &collector{}

	restoreFirst := proof.SetAuditor(first)
	restoreSecond := proof.SetAuditor(second)

	named.WithBrand(1, func(n named.Named[named.Anon, int]) proof.Proof[named.Anon, positive] {
		return proof.Assume[positive](n)
	})
	restoreSecond()
	named.WithBrand(1, func(n named.Named[named.Anon, int]) proof.Proof[named.Anon, positive] {
		return proof.Assume[positive](n)
	})
	restoreFirst()

	assert.Len(t, second.events, 1)
	assert.Len(t, first.events, 1)
}

func TestAuditorFunc(t *testing.T) {
	var got proof.Event
	defer proof.SetAuditor(proof.AuditorFunc(func(e proof.Event) { got = e }))()

	named.WithBrand(9, func(n named.Named[named.Anon, int]) struct{} {
		proof.Assume[positive](n)
		return struct{}{}
	})
	assert.Equal(t, proof.OutcomeAssumed, got.Outcome)
	assert.Equal(t, "9", got.Detail)
}
