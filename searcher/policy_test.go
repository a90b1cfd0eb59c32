package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCB(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB(1.0, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCBEvaluate(t *testing.T) {
	t.Run("computing UCB value", func(t *testing.T) {
		policy := newUCB(1.0, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + scale*sqrt(2*ln(N)/n)")
	})

	t.Run("zero scale is pure exploitation", func(t *testing.T) {
		policy := newUCB(0, 100)

		require.Equal(t, -3.5, policy.evaluate(-35, 10), "Should return the mean reward")
	})

	t.Run("single parent visit has no exploration bonus", func(t *testing.T) {
		policy := newUCB(1.0, 1)

		require.Equal(t, 2.0, policy.evaluate(4, 2), "ln(1) should cancel the bonus")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCB(1.0, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		// More parent visits -> higher exploration
		policy1 := newUCB(1.0, 100)
		policy2 := newUCB(1.0, 1000)

		score1 := policy1.evaluate(5.0, 10)
		score2 := policy2.evaluate(5.0, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		// More child visits -> lower exploration
		policy := newUCB(1.0, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(5.0, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCB(1.0, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(10.0, 10)

		require.Greater(t, score2, score1,
			"More rewards should increase exploitation term")
	})
}
